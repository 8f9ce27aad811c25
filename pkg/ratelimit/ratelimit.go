// Package ratelimit implements a per-key sliding-window admission gate.
// Limiters are constructed explicitly and injected where needed, so a
// deployment can run several independently-windowed instances side by side.
package ratelimit

import (
	"sync"
	"time"
)

const (
	DefaultMaxRequests = 30
	DefaultWindow      = 60 * time.Second

	// FallbackKey is used when no session context is available.
	FallbackKey = "server-queries"
)

type Config struct {
	MaxRequests int
	Window      time.Duration
	// OnLimitExceeded is invoked once per denied call, not once per window.
	OnLimitExceeded func(key string)
}

type Limiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	maxRequests int
	window      time.Duration
	onExceeded  func(key string)

	now  func() time.Time
	done chan struct{}
}

// New creates a limiter and starts its background sweep, which prunes idle
// keys every window to bound memory. Call Stop when the limiter is no longer
// needed.
func New(cfg Config) *Limiter {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = DefaultMaxRequests
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}

	l := &Limiter{
		requests:    make(map[string][]time.Time),
		maxRequests: cfg.MaxRequests,
		window:      cfg.Window,
		onExceeded:  cfg.OnLimitExceeded,
		now:         time.Now,
		done:        make(chan struct{}),
	}

	go l.sweep()

	return l
}

// IsAllowed reports whether a request under key may proceed and, if so,
// records it against the window.
func (l *Limiter) IsAllowed(key string) bool {
	l.mu.Lock()

	now := l.now()
	recent := l.prune(key, now)

	if len(recent) >= l.maxRequests {
		l.requests[key] = recent
		cb := l.onExceeded
		l.mu.Unlock()
		if cb != nil {
			cb(key)
		}
		return false
	}

	l.requests[key] = append(recent, now)
	l.mu.Unlock()
	return true
}

// Remaining returns how many requests key may still make in the current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.prune(key, l.now())
	l.requests[key] = recent

	remaining := l.maxRequests - len(recent)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResetTime returns when the oldest retained request leaves the window, or
// one full window from now if the key has no history.
func (l *Limiter) ResetTime(key string) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamps := l.requests[key]
	if len(timestamps) == 0 {
		return l.now().Add(l.window)
	}

	oldest := timestamps[0]
	for _, ts := range timestamps[1:] {
		if ts.Before(oldest) {
			oldest = ts
		}
	}
	return oldest.Add(l.window)
}

// Reset clears the window for a single key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.requests, key)
}

// ResetAll clears every key's window.
func (l *Limiter) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = make(map[string][]time.Time)
}

// Stop terminates the background sweep.
func (l *Limiter) Stop() {
	close(l.done)
}

// prune returns key's timestamps still inside the window. Caller must hold mu.
func (l *Limiter) prune(key string, now time.Time) []time.Time {
	timestamps := l.requests[key]
	recent := timestamps[:0:0]
	for _, ts := range timestamps {
		if now.Sub(ts) < l.window {
			recent = append(recent, ts)
		}
	}
	return recent
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key := range l.requests {
				recent := l.prune(key, now)
				if len(recent) == 0 {
					delete(l.requests, key)
				} else {
					l.requests[key] = recent
				}
			}
			l.mu.Unlock()
		}
	}
}

// Info is a point-in-time view of a key's admission state.
type Info struct {
	Allowed    bool
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Check combines admission with the headers callers typically need to report.
func (l *Limiter) Check(key string) Info {
	allowed := l.IsAllowed(key)
	reset := l.ResetTime(key)

	info := Info{
		Allowed:   allowed,
		Remaining: l.Remaining(key),
		ResetTime: reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return info
}
