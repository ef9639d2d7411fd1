// Package ratelimit implements fixed window call admission control,
// keyed by caller identity. It only answers yes or no: retries and
// backoff are the caller's decision.
package ratelimit

import (
	"sync"
	"time"
)

type Limiter struct {
	limit   uint
	window  time.Duration
	mutex   sync.Mutex
	windows map[string]*window
	timeNow func() time.Time
}

type window struct {
	start time.Time
	count uint
}

// New creates a limiter admitting up to limit calls per identity
// within each window.
func New(settings Settings) *Limiter {
	settings.SetDefaults()
	return &Limiter{
		limit:   *settings.Limit,
		window:  settings.Window,
		windows: make(map[string]*window),
		timeNow: time.Now,
	}
}

// Allow reports whether the identity may make one more call, counting
// the call if admitted. The check and increment run under one lock so
// two concurrent calls cannot both take the last slot. When rejected,
// retryAfter is the time left until the window resets.
func (l *Limiter) Allow(identity string) (allowed bool, retryAfter time.Duration) {
	now := l.timeNow()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.collectExpired(now)

	w, ok := l.windows[identity]
	if !ok || now.Sub(w.start) >= l.window {
		l.windows[identity] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count < l.limit {
		w.count++
		return true, 0
	}

	return false, w.start.Add(l.window).Sub(now)
}

// collectExpired drops fully elapsed windows so identities seen once
// do not accumulate forever. Called with the mutex held.
func (l *Limiter) collectExpired(now time.Time) {
	for identity, w := range l.windows {
		if now.Sub(w.start) >= l.window {
			delete(l.windows, identity)
		}
	}
}
