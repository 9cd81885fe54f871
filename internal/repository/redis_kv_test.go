package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisKVStore {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisKVStore(client)
}

func TestRedisKVStoreGetSet(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "workout:2024-03-15")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "workout:2024-03-15", []byte(`{"date":"2024-03-15","exercises":[]}`)))

	data, err := store.Get(ctx, "workout:2024-03-15")
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-15","exercises":[]}`, string(data))
}

func TestRedisKVStoreKeys(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "workout:2024-03-15", []byte("{}")))
	require.NoError(t, store.Set(ctx, "workout:2024-03-16", []byte("{}")))
	require.NoError(t, store.Set(ctx, "settings:custom_exercises", []byte("[]")))

	keys, err := store.Keys(ctx, "workout:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"workout:2024-03-15", "workout:2024-03-16"}, keys)
}

func TestWorkoutRepositoryOverRedis(t *testing.T) {
	repo := NewKVWorkoutRepository(newTestRedis(t))
	ctx := context.Background()

	workout := &domain.Workout{
		Date: "2024-03-15",
		Exercises: []domain.Exercise{
			{ID: "ex-1", Name: "Deadlifts", Sets: []domain.Set{{Weight: 180, Reps: 3}}},
		},
	}
	require.NoError(t, repo.Save(ctx, workout))

	loaded := repo.Load(ctx, "2024-03-15")
	require.NotNil(t, loaded)
	assert.Equal(t, workout, loaded)

	dates, err := repo.ListDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-15"}, dates)
}
