package adapters

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/usecase"
)

const throttleKeyPrefix = "login_failures:"

// loginThrottle counts failed logins per key in Redis. Best effort throughout:
// a nil client or an unavailable Redis disables throttling rather than
// blocking logins.
type loginThrottle struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

var _ usecase.LoginThrottle = (*loginThrottle)(nil)

// NewLoginThrottle creates a throttle allowing limit failures per window.
// rdb may be nil, in which case every check passes.
func NewLoginThrottle(rdb *redis.Client, limit int, window time.Duration) *loginThrottle {
	return &loginThrottle{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

func throttleKey(key string) string {
	return throttleKeyPrefix + key
}

// TooManyFailures reports whether the key has used up its failure budget.
func (t *loginThrottle) TooManyFailures(ctx context.Context, key string) bool {
	if t.rdb == nil || t.limit <= 0 {
		return false
	}
	n, err := t.rdb.Get(ctx, throttleKey(key)).Int()
	if err != nil {
		// Includes redis.Nil (no failures recorded) and backend errors.
		return false
	}
	return n >= t.limit
}

// RecordFailure counts one failed attempt, starting the expiry window on the
// first failure.
func (t *loginThrottle) RecordFailure(ctx context.Context, key string) {
	if t.rdb == nil {
		return
	}
	n, err := t.rdb.Incr(ctx, throttleKey(key)).Result()
	if err != nil {
		return
	}
	if n == 1 {
		_ = t.rdb.Expire(ctx, throttleKey(key), t.window).Err()
	}
}

// Reset clears the failure count after a successful login.
func (t *loginThrottle) Reset(ctx context.Context, key string) {
	if t.rdb == nil {
		return
	}
	_ = t.rdb.Del(ctx, throttleKey(key)).Err()
}
