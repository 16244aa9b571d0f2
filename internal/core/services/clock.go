package services

import (
	"sync"
	"time"
)

// Clock supplies wall-clock timestamps.
type Clock interface {
	Now() time.Time
}

// monotonicClock hands out strictly increasing UTC timestamps at the
// microsecond precision PostgreSQL stores, so same-day entries keep the
// order they were recorded in.
type monotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func newMonotonicClock(now func() time.Time) *monotonicClock {
	return &monotonicClock{now: now}
}

func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// processClock is shared by every service in the process.
var processClock Clock = newMonotonicClock(time.Now)
