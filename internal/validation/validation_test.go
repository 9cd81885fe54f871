package validation

import "testing"

func TestValidateWeight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain integer", "100", 100, true},
		{"zero is allowed", "0", 0, true},
		{"rounds to 2 decimals", "82.5678", 82.57, true},
		{"upper bound inclusive", "1000", 1000, true},
		{"over upper bound", "1000.01", 0, false},
		{"negative", "-5", 0, false},
		{"not a number", "heavy", 0, false},
		{"empty", "", 0, false},
		{"NaN literal", "NaN", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateWeight(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValidateWeight(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidateReps(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"normal", "8", 8, true},
		{"lower bound", "1", 1, true},
		{"zero reps invalid", "0", 0, false},
		{"upper bound", "1000", 1000, true},
		{"over upper bound", "1001", 0, false},
		{"negative", "-3", 0, false},
		{"float rejected", "5.5", 0, false},
		{"not a number", "x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateReps(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValidateReps(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidateRIR(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"zero allowed", "0", 0, true},
		{"mid range", "4", 4, true},
		{"upper bound", "10", 10, true},
		{"over upper bound", "11", 0, false},
		{"negative", "-1", 0, false},
		{"not a number", "two", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateRIR(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValidateRIR(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidateExerciseName(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain name", "Bench Press", "Bench Press", true},
		{"trims whitespace", "  Squats  ", "Squats", true},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
		{"max length 100", string(long[:100]), string(long[:100]), true},
		{"over max length", string(long), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateExerciseName(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ValidateExerciseName(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
