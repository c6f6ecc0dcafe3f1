package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMirrorStore keeps JSON snapshots of platform state for optimistic
// updates. Entries expire after ttl so a diverged mirror heals on its own.
type RedisMirrorStore[T any] struct {
	client *redis.Client
	prefix string        // e.g. "arena:mirror:languages:"
	ttl    time.Duration // zero keeps entries forever
}

func NewRedisMirrorStore[T any](client *redis.Client, prefix string, ttl time.Duration) *RedisMirrorStore[T] {
	return &RedisMirrorStore[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisMirrorStore[T]) Load(ctx context.Context, key string) (T, bool, error) {
	var value T

	data, err := s.client.Get(ctx, s.buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("failed to read mirror from redis: %w", err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("failed to unmarshal mirror: %w", err)
	}
	return value, true, nil
}

func (s *RedisMirrorStore[T]) Save(ctx context.Context, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal mirror: %w", err)
	}
	if err := s.client.Set(ctx, s.buildKey(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store mirror in redis: %w", err)
	}
	return nil
}

func (s *RedisMirrorStore[T]) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.buildKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete mirror from redis: %w", err)
	}
	return nil
}

func (s *RedisMirrorStore[T]) buildKey(key string) string {
	return s.prefix + key
}
