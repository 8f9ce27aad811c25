package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter pins the limiter's clock so window expiry can be driven
// deterministically.
func newTestLimiter(t *testing.T, cfg Config) (*Limiter, *time.Time) {
	t.Helper()

	l := New(cfg)
	t.Cleanup(l.Stop)

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestLimiter_AdmitsUpToMaxThenDenies(t *testing.T) {
	l, _ := newTestLimiter(t, Config{MaxRequests: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		assert.True(t, l.IsAllowed("session-1"), "request %d should be admitted", i+1)
	}
	assert.False(t, l.IsAllowed("session-1"))
	assert.False(t, l.IsAllowed("session-1"))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, Config{MaxRequests: 1, Window: time.Minute})

	require.True(t, l.IsAllowed("session-1"))
	assert.False(t, l.IsAllowed("session-1"))
	assert.True(t, l.IsAllowed("session-2"))
	assert.True(t, l.IsAllowed(FallbackKey))
}

func TestLimiter_WindowSlides(t *testing.T) {
	l, clock := newTestLimiter(t, Config{MaxRequests: 2, Window: time.Minute})

	require.True(t, l.IsAllowed("session-1"))
	*clock = clock.Add(30 * time.Second)
	require.True(t, l.IsAllowed("session-1"))
	assert.False(t, l.IsAllowed("session-1"))

	// 31s later the first request has left the window, the second has not.
	*clock = clock.Add(31 * time.Second)
	assert.True(t, l.IsAllowed("session-1"))
	assert.False(t, l.IsAllowed("session-1"))
}

func TestLimiter_Remaining(t *testing.T) {
	l, clock := newTestLimiter(t, Config{MaxRequests: 3, Window: time.Minute})

	assert.Equal(t, 3, l.Remaining("session-1"))
	l.IsAllowed("session-1")
	l.IsAllowed("session-1")
	assert.Equal(t, 1, l.Remaining("session-1"))

	*clock = clock.Add(61 * time.Second)
	assert.Equal(t, 3, l.Remaining("session-1"))
}

func TestLimiter_ResetTime(t *testing.T) {
	l, clock := newTestLimiter(t, Config{MaxRequests: 5, Window: time.Minute})
	start := *clock

	// No history: one full window from now.
	assert.Equal(t, start.Add(time.Minute), l.ResetTime("session-1"))

	l.IsAllowed("session-1")
	*clock = clock.Add(10 * time.Second)
	l.IsAllowed("session-1")

	// Window resets when the oldest request expires.
	assert.Equal(t, start.Add(time.Minute), l.ResetTime("session-1"))
}

func TestLimiter_Reset(t *testing.T) {
	l, _ := newTestLimiter(t, Config{MaxRequests: 1, Window: time.Minute})

	require.True(t, l.IsAllowed("session-1"))
	require.True(t, l.IsAllowed("session-2"))
	require.False(t, l.IsAllowed("session-1"))

	l.Reset("session-1")
	assert.True(t, l.IsAllowed("session-1"))
	assert.False(t, l.IsAllowed("session-2"))

	l.ResetAll()
	assert.True(t, l.IsAllowed("session-1"))
	assert.True(t, l.IsAllowed("session-2"))
}

func TestLimiter_OnLimitExceededFiresPerDeniedCall(t *testing.T) {
	var denied []string
	l, _ := newTestLimiter(t, Config{
		MaxRequests:     1,
		Window:          time.Minute,
		OnLimitExceeded: func(key string) { denied = append(denied, key) },
	})

	l.IsAllowed("session-1")
	l.IsAllowed("session-1")
	l.IsAllowed("session-1")

	assert.Equal(t, []string{"session-1", "session-1"}, denied)
}

func TestLimiter_ZeroConfigUsesDefaults(t *testing.T) {
	l, _ := newTestLimiter(t, Config{})

	assert.Equal(t, DefaultMaxRequests, l.maxRequests)
	assert.Equal(t, DefaultWindow, l.window)
}

func TestLimiter_Check(t *testing.T) {
	l, _ := newTestLimiter(t, Config{MaxRequests: 2, Window: time.Minute})

	info := l.Check("session-1")
	assert.True(t, info.Allowed)
	assert.Equal(t, 1, info.Remaining)
	assert.Zero(t, info.RetryAfter)

	l.IsAllowed("session-1")
	info = l.Check("session-1")
	assert.False(t, info.Allowed)
	assert.Zero(t, info.Remaining)
	assert.False(t, info.ResetTime.IsZero())
}
