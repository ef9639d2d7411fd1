package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func newTestLimiter(limit uint, window time.Duration,
	timeNow func() time.Time) *Limiter {
	limiter := New(Settings{
		Limit:  ptrTo(limit),
		Window: window,
	})
	limiter.timeNow = timeNow
	return limiter
}

func Test_Limiter_Allow(t *testing.T) {
	t.Parallel()

	start := time.Unix(1000, 0)

	t.Run("limit then rejection", func(t *testing.T) {
		t.Parallel()

		const limit = 3
		limiter := newTestLimiter(limit, time.Minute,
			func() time.Time { return start })

		for i := 0; i < limit; i++ {
			allowed, retryAfter := limiter.Allow("1.2.3.4")
			assert.True(t, allowed, "call %d", i+1)
			assert.Zero(t, retryAfter)
		}

		allowed, retryAfter := limiter.Allow("1.2.3.4")
		assert.False(t, allowed)
		assert.Equal(t, time.Minute, retryAfter)
	})

	t.Run("identities do not share quota", func(t *testing.T) {
		t.Parallel()

		limiter := newTestLimiter(1, time.Minute,
			func() time.Time { return start })

		allowed, _ := limiter.Allow("1.2.3.4")
		require.True(t, allowed)
		allowed, _ = limiter.Allow("1.2.3.4")
		require.False(t, allowed)

		allowed, _ = limiter.Allow("5.6.7.8")
		assert.True(t, allowed)
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		t.Parallel()

		now := start
		limiter := newTestLimiter(1, time.Minute,
			func() time.Time { return now })

		allowed, _ := limiter.Allow("1.2.3.4")
		require.True(t, allowed)
		allowed, _ = limiter.Allow("1.2.3.4")
		require.False(t, allowed)

		now = start.Add(time.Minute)

		allowed, retryAfter := limiter.Allow("1.2.3.4")
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
	})

	t.Run("retry hint shrinks as the window elapses", func(t *testing.T) {
		t.Parallel()

		now := start
		limiter := newTestLimiter(1, time.Minute,
			func() time.Time { return now })

		allowed, _ := limiter.Allow("1.2.3.4")
		require.True(t, allowed)

		now = start.Add(40 * time.Second)

		allowed, retryAfter := limiter.Allow("1.2.3.4")
		assert.False(t, allowed)
		assert.Equal(t, 20*time.Second, retryAfter)
	})

	t.Run("expired windows are collected", func(t *testing.T) {
		t.Parallel()

		now := start
		limiter := newTestLimiter(1, time.Minute,
			func() time.Time { return now })

		_, _ = limiter.Allow("1.2.3.4")
		_, _ = limiter.Allow("5.6.7.8")
		require.Len(t, limiter.windows, 2)

		now = start.Add(2 * time.Minute)
		_, _ = limiter.Allow("9.9.9.9")

		assert.Len(t, limiter.windows, 1)
	})
}

func Test_Limiter_Allow_concurrent(t *testing.T) {
	t.Parallel()

	const limit = 10
	const callers = 50

	limiter := New(Settings{
		Limit:  ptrTo(uint(limit)),
		Window: time.Hour,
	})

	var allowedCount int32
	var countMutex sync.Mutex
	var waitGroup sync.WaitGroup
	waitGroup.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer waitGroup.Done()
			allowed, _ := limiter.Allow("1.2.3.4")
			if allowed {
				countMutex.Lock()
				allowedCount++
				countMutex.Unlock()
			}
		}()
	}
	waitGroup.Wait()

	assert.Equal(t, int32(limit), allowedCount)
}

func Test_Settings_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		errWrapped error
		errMessage string
	}{
		"defaults are valid": {},
		"zero limit": {
			settings: Settings{
				Limit: ptrTo(uint(0)),
			},
			errWrapped: ErrLimitIsZero,
			errMessage: "limit is zero",
		},
		"window too small": {
			settings: Settings{
				Window: 100 * time.Millisecond,
			},
			errWrapped: ErrWindowTooSmall,
			errMessage: "window is too small: 100ms is below the minimum 1s",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			settings := testCase.settings
			settings.SetDefaults()
			err := settings.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}
