package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisRateLimiter struct {
	client *redis.Client
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, prefix string) RateLimiter {
	return &RedisRateLimiter{client: client, prefix: prefix}
}

// allowScript increments the window counter and sets its expiry in one step.
// A counter found without a TTL gets one, so a key can never outlive its window.
var allowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// Allow counts a hit in the current fixed window.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	// a counter that was incremented must also get its expiry, even if the caller went away
	vals, err := allowScript.Run(context.WithoutCancel(ctx), l.client, []string{l.getKey(key)}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("failed to increment counter: %w", err)
	}
	if len(vals) != 2 {
		return Result{}, fmt.Errorf("unexpected rate limit reply %v", vals)
	}
	count, ttl := vals[0], time.Duration(vals[1])*time.Millisecond

	res := Result{
		Allowed:   count <= int64(limit),
		Remaining: max(0, limit-int(count)),
	}
	if !res.Allowed {
		if ttl <= 0 {
			ttl = window
		}
		res.RetryAfter = ttl
	}
	return res, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return l.prefix + identifier
}
