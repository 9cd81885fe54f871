package repository

import (
	"context"
	"fmt"

	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// RedisKVStore implements domain.KeyValueStore on top of Redis.
type RedisKVStore struct {
	client *redis.Client
}

// NewRedisKVStore creates a new Redis-backed key-value store.
func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

// Get retrieves the value for a key with OTel tracing.
// Returns domain.ErrKeyNotFound for absent keys.
func (r *RedisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get")
	span.SetAttributes(attribute.String("kv.key", key))
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("kv.result", "miss"))
			return nil, domain.ErrKeyNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("kv.result", "hit"))
	return data, nil
}

// Set stores a value with OTel tracing. Workout records live until the user
// removes them, so no TTL is applied.
func (r *RedisKVStore) Set(ctx context.Context, key string, value []byte) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set")
	span.SetAttributes(
		attribute.String("kv.key", key),
		attribute.Int("kv.value_bytes", len(value)),
	)
	defer span.End()

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// Keys returns all keys matching the glob pattern (use sparingly - O(N)).
func (r *RedisKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Keys")
	span.SetAttributes(attribute.String("kv.pattern", pattern))
	defer span.End()

	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("redis keys error: %w", err)
	}

	span.SetAttributes(attribute.Int("kv.matched_keys", len(keys)))
	return keys, nil
}
