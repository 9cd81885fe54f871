package domain

import (
	"context"
	"errors"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidDate     = errors.New("invalid date format")
)

// WorkoutKeyPrefix namespaces per-day workout records in the key-value store.
// Full key format: "workout:YYYY-MM-DD".
const WorkoutKeyPrefix = "workout:"

// CustomExercisesKey holds the user's custom exercise library as a JSON array.
const CustomExercisesKey = "settings:custom_exercises"

// Exercise categories used by the seeded catalog. The field itself is
// free-form; callers may store any label.
const (
	CategoryChest     = "Chest"
	CategoryBack      = "Back"
	CategoryLegs      = "Legs"
	CategoryShoulders = "Shoulders"
	CategoryArms      = "Arms"
	CategoryCore      = "Core"
	CategoryCardio    = "Cardio"
	CategoryOther     = "Other"
)

// Set is one performed effort. IsPR is computed once when the set is logged
// and never recomputed afterwards, so deleting an older record-holding set
// leaves later flags untouched.
type Set struct {
	Weight float64 `json:"weight"` // kg
	Reps   int     `json:"reps"`
	RIR    *int    `json:"rir,omitempty"` // Reps in Reserve, 0-10
	IsPR   bool    `json:"isPR,omitempty"`
}

// Exercise is one exercise instance inside a single day's workout.
// ID is only unique within that day; cross-day identity is the Name string.
type Exercise struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Sets       []Set  `json:"sets"`
	Notes      string `json:"notes,omitempty"`
	TargetSets int    `json:"targetSets,omitempty"` // planned sets for progress tracking
}

// Workout is the aggregate root for one calendar day, keyed by its date.
type Workout struct {
	Date      string     `json:"date"` // YYYY-MM-DD
	Exercises []Exercise `json:"exercises"`
}

// DatedSet pairs a set with the date of the workout it belongs to.
type DatedSet struct {
	Date string `json:"date"`
	Set  Set    `json:"set"`
}

// WorkoutRepository is the per-date workout store.
type WorkoutRepository interface {
	// Load returns the workout for a date, or nil when none exists.
	// It fails closed: missing keys, unreadable records and structurally
	// invalid records all read as "no workout".
	Load(ctx context.Context, date string) *Workout
	// Save validates the date and fully replaces the stored record for it.
	Save(ctx context.Context, workout *Workout) error
	// SaveExercise replaces the exercise with the same ID, or appends it.
	SaveExercise(ctx context.Context, date string, exercise Exercise) error
	// RemoveExercise filters out the exercise by ID. Succeeds when the day
	// has no workout.
	RemoveExercise(ctx context.Context, date string, exerciseID string) error
	// ListDates enumerates all stored workout dates, in no particular order.
	ListDates(ctx context.Context) ([]string, error)
	// ListWorkouts loads every stored workout, most recent date first,
	// skipping days that fail to load.
	ListWorkouts(ctx context.Context) ([]*Workout, error)
	// CustomExercises returns the user's custom exercise library.
	CustomExercises(ctx context.Context) ([]Exercise, error)
	// SaveCustomExercise appends to the library unless an entry with the
	// same name (case-insensitive) already exists.
	SaveCustomExercise(ctx context.Context, exercise Exercise) error
}
