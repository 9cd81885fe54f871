// Package validation holds the input gates applied before anything reaches
// the workout store. Every function is total: bad input yields ok=false,
// never a panic or an error.
package validation

import (
	"math"
	"strconv"
	"strings"
)

const (
	MaxWeight  = 1000.0
	MaxReps    = 1000
	MaxRIR     = 10
	MaxNameLen = 100
)

// ValidateWeight parses a weight in kg and rounds it to 2 decimal places.
// Valid range is [0, 1000].
func ValidateWeight(input string) (float64, bool) {
	num, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, false
	}
	return ValidateWeightValue(num)
}

// ValidateWeightValue validates an already-parsed weight.
func ValidateWeightValue(num float64) (float64, bool) {
	if math.IsNaN(num) || num < 0 || num > MaxWeight {
		return 0, false
	}
	return math.Round(num*100) / 100, true
}

// ValidateReps parses a rep count. Valid range is [1, 1000].
func ValidateReps(input string) (int, bool) {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	return ValidateRepsValue(num)
}

// ValidateRepsValue validates an already-parsed rep count.
func ValidateRepsValue(num int) (int, bool) {
	if num < 1 || num > MaxReps {
		return 0, false
	}
	return num, true
}

// ValidateRIR parses a Reps-in-Reserve value. Valid range is [0, 10].
func ValidateRIR(input string) (int, bool) {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	return ValidateRIRValue(num)
}

// ValidateRIRValue validates an already-parsed RIR value.
func ValidateRIRValue(num int) (int, bool) {
	if num < 0 || num > MaxRIR {
		return 0, false
	}
	return num, true
}

// ValidateExerciseName trims the name and rejects empty or over-long results.
func ValidateExerciseName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > MaxNameLen {
		return "", false
	}
	return trimmed, true
}
