package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/oklog/ulid/v2"
)

// HistoryService answers cross-day queries. Cross-session identity for an
// exercise is its name string, matched exactly; per-day exercise IDs are
// never compared across days.
type HistoryService struct {
	repo domain.WorkoutRepository
}

func NewHistoryService(repo domain.WorkoutRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// NewULID mints a client-side opaque exercise id. Ids are only unique
// within one day's workout; they are never reused across days.
func NewULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// AllSetsForExercise flattens every set ever logged under the exercise name,
// paired with its workout date, most recent date first. Exact string match
// only: no case-folding, no fuzzy match.
func (s *HistoryService) AllSetsForExercise(ctx context.Context, name string) ([]domain.DatedSet, error) {
	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	allSets := []domain.DatedSet{}
	// ListWorkouts is already date-descending, so appending preserves order.
	for _, workout := range workouts {
		for _, ex := range workout.Exercises {
			if ex.Name != name {
				continue
			}
			for _, set := range ex.Sets {
				allSets = append(allSets, domain.DatedSet{Date: workout.Date, Set: set})
			}
		}
	}
	return allSets, nil
}

// CheckPR reports whether a prospective set would be a personal record for
// the exercise name. The best historical performance is tracked under a
// strict lexicographic ordering: higher weight wins, then higher reps, then
// higher RIR (absent RIR counts as 0). With no history the first set is
// unconditionally a PR.
//
// The resulting flag is stored on the set at creation time and never
// recomputed, so deleting an old record-holder leaves later flags stale.
func (s *HistoryService) CheckPR(ctx context.Context, name string, weight float64, reps int, rir int) (bool, error) {
	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return false, err
	}

	var bestWeight float64
	var bestReps, bestRIR int
	hasHistory := false

	for _, workout := range workouts {
		for _, ex := range workout.Exercises {
			if ex.Name != name {
				continue
			}
			for _, set := range ex.Sets {
				hasHistory = true
				setRIR := 0
				if set.RIR != nil {
					setRIR = *set.RIR
				}

				if set.Weight > bestWeight {
					bestWeight = set.Weight
					bestReps = set.Reps
					bestRIR = setRIR
				} else if set.Weight == bestWeight && set.Reps > bestReps {
					bestReps = set.Reps
					bestRIR = setRIR
				} else if set.Weight == bestWeight && set.Reps == bestReps && setRIR > bestRIR {
					bestRIR = setRIR
				}
			}
		}
	}

	if !hasHistory {
		return true, nil
	}

	if weight > bestWeight {
		return true, nil
	}
	if weight == bestWeight && reps > bestReps {
		return true, nil
	}
	if weight == bestWeight && reps == bestReps && rir > bestRIR {
		return true, nil
	}
	return false, nil
}

// LastWorkout returns the most recent workout strictly before the given
// date, or nil when no earlier workout exists.
func (s *HistoryService) LastWorkout(ctx context.Context, beforeDate string) (*domain.Workout, error) {
	dates, err := s.repo.ListDates(ctx)
	if err != nil {
		return nil, err
	}

	// Lexical comparison is chronological for the fixed-width format.
	best := ""
	for _, date := range dates {
		if date < beforeDate && date > best {
			best = date
		}
	}
	if best == "" {
		return nil, nil
	}
	return s.repo.Load(ctx, best), nil
}

// CopyWorkout duplicates the source day's workout into the target day as a
// full replacement. Copied exercises get fresh IDs since each day's
// exercises are independent entities, and copied sets drop their PR flags:
// they are untested templates, not verified records.
func (s *HistoryService) CopyWorkout(ctx context.Context, sourceDate, targetDate string) error {
	source := s.repo.Load(ctx, sourceDate)
	if source == nil {
		return fmt.Errorf("%w for %s", domain.ErrWorkoutNotFound, sourceDate)
	}

	copied := make([]domain.Exercise, 0, len(source.Exercises))
	for _, ex := range source.Exercises {
		dup := ex
		dup.ID = NewULID()
		dup.Sets = make([]domain.Set, len(ex.Sets))
		for i, set := range ex.Sets {
			set.IsPR = false
			if set.RIR != nil {
				rir := *set.RIR
				set.RIR = &rir
			}
			dup.Sets[i] = set
		}
		copied = append(copied, dup)
	}

	return s.repo.Save(ctx, &domain.Workout{
		Date:      targetDate,
		Exercises: copied,
	})
}
