package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/mansoorceksport/gymlogger/internal/dateutil"
	"github.com/mansoorceksport/gymlogger/internal/domain"
)

// KVWorkoutRepository implements domain.WorkoutRepository over an injected
// key-value substrate, one record per calendar day.
//
// The store follows a merge-don't-clobber discipline: reads fail closed so a
// single corrupt day never blocks the rest of the app, and the only loud
// failure is a malformed date passed to Save, which indicates a programming
// error rather than user data corruption.
type KVWorkoutRepository struct {
	kv domain.KeyValueStore
}

// NewKVWorkoutRepository creates a workout repository over the given substrate.
func NewKVWorkoutRepository(kv domain.KeyValueStore) *KVWorkoutRepository {
	return &KVWorkoutRepository{kv: kv}
}

// workoutKey derives the storage key for a date, rejecting malformed dates.
func workoutKey(date string) (string, error) {
	if !dateutil.IsValidDateString(date) {
		return "", fmt.Errorf("%w: %s, expected YYYY-MM-DD", domain.ErrInvalidDate, date)
	}
	return domain.WorkoutKeyPrefix + date, nil
}

// Load returns the workout for a date, or nil when none exists. Corrupt or
// structurally invalid records read as absent.
func (r *KVWorkoutRepository) Load(ctx context.Context, date string) *domain.Workout {
	key, err := workoutKey(date)
	if err != nil {
		return nil
	}

	data, err := r.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("Error loading workout for %s: %v", date, err)
		}
		return nil
	}

	var workout domain.Workout
	if err := json.Unmarshal(data, &workout); err != nil {
		log.Printf("Invalid workout data for %s, returning nil: %v", date, err)
		return nil
	}

	// Structural check: a record without a date or exercises list is corrupt.
	if workout.Date == "" || workout.Exercises == nil {
		log.Printf("Invalid workout data for %s, returning nil", date)
		return nil
	}

	return &workout
}

// Save fully replaces the stored record for the workout's date. The caller
// must include every exercise it wants kept; the only merging performed is
// defaulting of missing fields.
func (r *KVWorkoutRepository) Save(ctx context.Context, workout *domain.Workout) error {
	key, err := workoutKey(workout.Date)
	if err != nil {
		return err
	}

	merged := domain.Workout{
		Date:      workout.Date,
		Exercises: workout.Exercises,
	}
	if merged.Exercises == nil {
		merged.Exercises = []domain.Exercise{}
	}

	data, err := json.Marshal(&merged)
	if err != nil {
		return fmt.Errorf("failed to marshal workout for %s: %w", workout.Date, err)
	}

	if err := r.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save workout for %s: %w", workout.Date, err)
	}
	return nil
}

// SaveExercise creates or updates one exercise in the day's workout,
// lazily materializing an empty workout for an unseen date.
func (r *KVWorkoutRepository) SaveExercise(ctx context.Context, date string, exercise domain.Exercise) error {
	workout := r.Load(ctx, date)
	if workout == nil {
		workout = &domain.Workout{Date: date, Exercises: []domain.Exercise{}}
	}

	replaced := false
	for i := range workout.Exercises {
		if workout.Exercises[i].ID == exercise.ID {
			workout.Exercises[i] = exercise
			replaced = true
			break
		}
	}
	if !replaced {
		workout.Exercises = append(workout.Exercises, exercise)
	}

	return r.Save(ctx, workout)
}

// RemoveExercise filters out the exercise by ID. A day with no workout is a
// no-op success.
func (r *KVWorkoutRepository) RemoveExercise(ctx context.Context, date string, exerciseID string) error {
	workout := r.Load(ctx, date)
	if workout == nil {
		return nil
	}

	kept := workout.Exercises[:0]
	for _, ex := range workout.Exercises {
		if ex.ID != exerciseID {
			kept = append(kept, ex)
		}
	}
	workout.Exercises = kept

	return r.Save(ctx, workout)
}

// ListDates enumerates all stored workout dates with no ordering guarantee.
func (r *KVWorkoutRepository) ListDates(ctx context.Context) ([]string, error) {
	keys, err := r.kv.Keys(ctx, domain.WorkoutKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list workout keys: %w", err)
	}

	dates := make([]string, 0, len(keys))
	for _, key := range keys {
		dates = append(dates, strings.TrimPrefix(key, domain.WorkoutKeyPrefix))
	}
	return dates, nil
}

// ListWorkouts loads every stored workout, most recent first, skipping
// days that fail to load. Lexical descending order is chronological because
// the canonical format is zero-padded and fixed-width.
func (r *KVWorkoutRepository) ListWorkouts(ctx context.Context) ([]*domain.Workout, error) {
	dates, err := r.ListDates(ctx)
	if err != nil {
		return nil, err
	}

	workouts := make([]*domain.Workout, 0, len(dates))
	for _, date := range dates {
		if workout := r.Load(ctx, date); workout != nil {
			workouts = append(workouts, workout)
		}
	}

	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date > workouts[j].Date
	})
	return workouts, nil
}

// CustomExercises returns the user's custom exercise library. A missing key
// reads as an empty library.
func (r *KVWorkoutRepository) CustomExercises(ctx context.Context) ([]domain.Exercise, error) {
	data, err := r.kv.Get(ctx, domain.CustomExercisesKey)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return []domain.Exercise{}, nil
		}
		return nil, fmt.Errorf("failed to load custom exercises: %w", err)
	}

	var exercises []domain.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		log.Printf("Invalid custom exercise data, returning empty library: %v", err)
		return []domain.Exercise{}, nil
	}
	return exercises, nil
}

// SaveCustomExercise appends to the library unless an entry with the same
// name already exists (case-insensitive).
func (r *KVWorkoutRepository) SaveCustomExercise(ctx context.Context, exercise domain.Exercise) error {
	current, err := r.CustomExercises(ctx)
	if err != nil {
		return err
	}

	for _, ex := range current {
		if strings.EqualFold(ex.Name, exercise.Name) {
			return nil
		}
	}

	updated := append(current, exercise)
	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal custom exercises: %w", err)
	}

	if err := r.kv.Set(ctx, domain.CustomExercisesKey, data); err != nil {
		return fmt.Errorf("failed to save custom exercises: %w", err)
	}
	return nil
}
