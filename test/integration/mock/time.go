//go:build integration

package mock

import (
	"sync"
	"time"
)

// Time is a clock that can be moved to an arbitrary instant and then keeps ticking.
type Time struct {
	mu               sync.Mutex
	currentStartTime time.Time
	updatedAt        time.Time
}

// NewTime returns a clock that follows the wall clock.
func NewTime() *Time {
	now := time.Now()
	return &Time{currentStartTime: now, updatedAt: now}
}

// SetCurrentTime moves the clock.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// Now returns the mocked current time.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}
