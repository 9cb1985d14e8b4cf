package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestLoginThrottle_NilClientDisablesThrottling(t *testing.T) {
	ctx := context.Background()
	throttle := NewLoginThrottle(nil, 3, time.Minute)

	if throttle.TooManyFailures(ctx, "ana@x.com") {
		t.Error("nil client must never throttle")
	}
	// Must be no-ops, not panics.
	throttle.RecordFailure(ctx, "ana@x.com")
	throttle.Reset(ctx, "ana@x.com")
}

func TestLoginThrottle_TooManyFailures(t *testing.T) {
	ctx := context.Background()
	key := throttleKey("ana@x.com")

	tests := []struct {
		name     string
		setup    func(mock redismock.ClientMock)
		expected bool
	}{
		{
			name:     "no failures recorded",
			setup:    func(mock redismock.ClientMock) { mock.ExpectGet(key).RedisNil() },
			expected: false,
		},
		{
			name:     "below the limit",
			setup:    func(mock redismock.ClientMock) { mock.ExpectGet(key).SetVal("2") },
			expected: false,
		},
		{
			name:     "at the limit",
			setup:    func(mock redismock.ClientMock) { mock.ExpectGet(key).SetVal("3") },
			expected: true,
		},
		{
			name:     "redis unavailable fails open",
			setup:    func(mock redismock.ClientMock) { mock.ExpectGet(key).SetErr(context.DeadlineExceeded) },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rdb, mock := redismock.NewClientMock()
			tt.setup(mock)

			throttle := NewLoginThrottle(rdb, 3, time.Minute)
			if got := throttle.TooManyFailures(ctx, "ana@x.com"); got != tt.expected {
				t.Errorf("TooManyFailures = %v, expected %v", got, tt.expected)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet redis expectations: %v", err)
			}
		})
	}
}

func TestLoginThrottle_RecordFailureStartsWindowOnFirst(t *testing.T) {
	ctx := context.Background()
	key := throttleKey("ana@x.com")

	rdb, mock := redismock.NewClientMock()
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)

	throttle := NewLoginThrottle(rdb, 3, time.Minute)
	throttle.RecordFailure(ctx, "ana@x.com")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestLoginThrottle_RecordFailureSubsequentKeepsWindow(t *testing.T) {
	ctx := context.Background()
	key := throttleKey("ana@x.com")

	rdb, mock := redismock.NewClientMock()
	mock.ExpectIncr(key).SetVal(2)
	// No Expire expected: the window is set only on the first failure.

	throttle := NewLoginThrottle(rdb, 3, time.Minute)
	throttle.RecordFailure(ctx, "ana@x.com")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestLoginThrottle_Reset(t *testing.T) {
	ctx := context.Background()
	key := throttleKey("ana@x.com")

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(key).SetVal(1)

	throttle := NewLoginThrottle(rdb, 3, time.Minute)
	throttle.Reset(ctx, "ana@x.com")

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}
