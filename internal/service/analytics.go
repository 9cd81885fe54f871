package service

import (
	"math"

	"github.com/mansoorceksport/gymlogger/internal/domain"
)

// Estimate1RM extrapolates a one-rep max from a submaximal set using an
// Epley-style formula, treating reps+rir as potential reps to failure:
//
//	1RM = weight * (1 + (reps+rir)/30)
//
// rounded to 2 decimals. Returns 0 for non-positive weight or reps.
// Monotonically increasing in weight, reps and rir.
func Estimate1RM(weight float64, reps int, rir int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return math.Round(weight*(1+float64(reps+rir)/30)*100) / 100
}

// DailyProgress computes the day's completion percentage from logged sets
// versus planned sets. An exercise without a target counts its logged sets
// as the plan. A day with exercises but no plan at all reads as 10%, just
// enough to show something happened.
func DailyProgress(workout *domain.Workout) int {
	if workout == nil || len(workout.Exercises) == 0 {
		return 0
	}

	totalPlanned := 0
	totalCompleted := 0
	for _, ex := range workout.Exercises {
		planned := ex.TargetSets
		if planned == 0 {
			planned = len(ex.Sets)
		}
		totalPlanned += planned
		totalCompleted += len(ex.Sets)
	}

	if totalPlanned == 0 {
		return 10
	}

	percentage := int(math.Round(float64(totalCompleted) / float64(totalPlanned) * 100))
	if percentage > 100 {
		percentage = 100
	}
	return percentage
}
