package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codearena/arena-admin/internal/domain/session"
	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
)

// RedisSessionStore keeps staff sessions, expiring each at its ExpiresAt.
type RedisSessionStore struct {
	client *redis.Client
	prefix string // e.g. "arena:session:"
}

func NewRedisSessionStore(client *redis.Client, prefix string) session.Repository {
	return &RedisSessionStore{client: client, prefix: prefix}
}

func (s *RedisSessionStore) Create(ctx context.Context, sess *session.Session) error {
	return s.write(ctx, sess)
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	data, err := s.client.Get(ctx, s.buildKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to read session from redis: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if sess.IsExpired() {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return &sess, nil
}

// Touch records activity without extending the session.
func (s *RedisSessionStore) Touch(ctx context.Context, sess *session.Session) error {
	sess.UpdateActivity()
	return s.write(ctx, sess)
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.buildKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) write(ctx context.Context, sess *session.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", sess.ID)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.buildKey(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) buildKey(id string) string {
	return s.prefix + id
}
