package service

import (
	"context"
	"testing"

	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/mansoorceksport/gymlogger/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func newHistoryFixture(t *testing.T) (*HistoryService, *repository.KVWorkoutRepository) {
	t.Helper()
	repo := repository.NewKVWorkoutRepository(repository.NewMemoryKVStore())
	return NewHistoryService(repo), repo
}

func seedWorkout(t *testing.T, repo *repository.KVWorkoutRepository, date string, exercises ...domain.Exercise) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), &domain.Workout{Date: date, Exercises: exercises}))
}

func TestAllSetsForExercise(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	seedWorkout(t, repo, "2024-03-01",
		domain.Exercise{ID: "a", Name: "Bench Press", Sets: []domain.Set{{Weight: 95, Reps: 5}}},
		domain.Exercise{ID: "b", Name: "Squats", Sets: []domain.Set{{Weight: 130, Reps: 5}}},
	)
	seedWorkout(t, repo, "2024-03-10",
		domain.Exercise{ID: "c", Name: "Bench Press", Sets: []domain.Set{{Weight: 100, Reps: 5}, {Weight: 100, Reps: 4}}},
	)

	sets, err := svc.AllSetsForExercise(ctx, "Bench Press")
	require.NoError(t, err)
	require.Len(t, sets, 3)
	// Most recent date first, then set order within the day.
	assert.Equal(t, "2024-03-10", sets[0].Date)
	assert.Equal(t, 5, sets[0].Set.Reps)
	assert.Equal(t, "2024-03-10", sets[1].Date)
	assert.Equal(t, 4, sets[1].Set.Reps)
	assert.Equal(t, "2024-03-01", sets[2].Date)

	// Exact match only: no case folding.
	sets, err = svc.AllSetsForExercise(ctx, "bench press")
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestCheckPR(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	// No history: unconditionally a PR.
	isPR, err := svc.CheckPR(ctx, "Bench Press", 100, 5, 2)
	require.NoError(t, err)
	assert.True(t, isPR)

	seedWorkout(t, repo, "2024-03-01",
		domain.Exercise{ID: "a", Name: "Bench Press", Sets: []domain.Set{
			{Weight: 100, Reps: 5, RIR: intPtr(2)},
			{Weight: 90, Reps: 10},
		}},
	)

	tests := []struct {
		name   string
		weight float64
		reps   int
		rir    int
		want   bool
	}{
		{"heavier weight wins", 102.5, 1, 0, true},
		{"lighter weight loses despite reps", 95, 20, 5, false},
		{"equal tuple is not a PR", 100, 5, 2, false},
		{"lower rir on tied weight and reps", 100, 5, 1, false},
		{"more reps on tied weight", 100, 6, 0, true},
		{"higher rir on tied weight and reps", 100, 5, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isPR, err := svc.CheckPR(ctx, "Bench Press", tt.weight, tt.reps, tt.rir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, isPR)
		})
	}
}

func TestCheckPRTreatsAbsentRIRAsZero(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	seedWorkout(t, repo, "2024-03-01",
		domain.Exercise{ID: "a", Name: "Squats", Sets: []domain.Set{{Weight: 140, Reps: 5}}},
	)

	isPR, err := svc.CheckPR(ctx, "Squats", 140, 5, 1)
	require.NoError(t, err)
	assert.True(t, isPR, "rir 1 beats historical set with no rir")
}

func TestLastWorkout(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	seedWorkout(t, repo, "2024-03-01")
	seedWorkout(t, repo, "2024-03-08")
	seedWorkout(t, repo, "2024-03-15")

	last, err := svc.LastWorkout(ctx, "2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "2024-03-08", last.Date)

	// Strictly before: the date itself does not count.
	last, err = svc.LastWorkout(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestCopyWorkout(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	seedWorkout(t, repo, "2024-01-01",
		domain.Exercise{ID: "src-1", Name: "Bench Press", Category: domain.CategoryChest, Sets: []domain.Set{
			{Weight: 100, Reps: 5, RIR: intPtr(2), IsPR: true},
			{Weight: 100, Reps: 4},
		}},
		domain.Exercise{ID: "src-2", Name: "Dips", Sets: []domain.Set{
			{Weight: 20, Reps: 10, IsPR: true},
		}},
	)

	require.NoError(t, svc.CopyWorkout(ctx, "2024-01-01", "2024-01-02"))

	target := repo.Load(ctx, "2024-01-02")
	require.NotNil(t, target)
	require.Len(t, target.Exercises, 2)

	seenIDs := map[string]bool{"src-1": true, "src-2": true}
	for i, ex := range target.Exercises {
		assert.False(t, seenIDs[ex.ID], "copied exercise must not reuse a source id")
		seenIDs[ex.ID] = true
		for _, set := range ex.Sets {
			assert.False(t, set.IsPR, "copied sets are templates, not verified records")
		}
		// Everything but id and PR flags carries over.
		assert.Equal(t, []string{"Bench Press", "Dips"}[i], ex.Name)
	}
	require.Len(t, target.Exercises[0].Sets, 2)
	assert.Equal(t, 100.0, target.Exercises[0].Sets[0].Weight)
	require.NotNil(t, target.Exercises[0].Sets[0].RIR)
	assert.Equal(t, 2, *target.Exercises[0].Sets[0].RIR)

	// Source is untouched, PR flags included.
	source := repo.Load(ctx, "2024-01-01")
	require.NotNil(t, source)
	assert.True(t, source.Exercises[0].Sets[0].IsPR)
}

func TestCopyWorkoutMissingSource(t *testing.T) {
	svc, _ := newHistoryFixture(t)
	err := svc.CopyWorkout(context.Background(), "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestCopyWorkoutReplacesTarget(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	seedWorkout(t, repo, "2024-01-01",
		domain.Exercise{ID: "src-1", Name: "Bench Press", Sets: []domain.Set{{Weight: 100, Reps: 5}}},
	)
	seedWorkout(t, repo, "2024-01-02",
		domain.Exercise{ID: "old-1", Name: "Squats", Sets: []domain.Set{{Weight: 140, Reps: 5}}},
	)

	require.NoError(t, svc.CopyWorkout(ctx, "2024-01-01", "2024-01-02"))

	target := repo.Load(ctx, "2024-01-02")
	require.NotNil(t, target)
	// Full replacement: the pre-existing target exercises are gone.
	require.Len(t, target.Exercises, 1)
	assert.Equal(t, "Bench Press", target.Exercises[0].Name)
}
