// Package clock abstracts the wall clock so that code which injects a
// timestamp into outgoing wire traffic can be driven deterministically in
// tests: a minimal interface with a real implementation backed by time.Now
// and a test implementation that can be pinned to a fixed instant.
package clock

import "time"

// Clock is the minimal wall-clock surface consumed by this module.  It is
// kept to a single method deliberately: producers of wire traffic only ever
// need "now", never timers or tickers.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// DefaultClock is the production Clock backed by the real wall clock.
type DefaultClock struct{}

// NewDefaultClock returns a Clock backed by time.Now.
func NewDefaultClock() *DefaultClock {
	return &DefaultClock{}
}

// Now returns time.Now().
func (DefaultClock) Now() time.Time {
	return time.Now()
}

// TestClock is a Clock pinned to a fixed instant until explicitly advanced.
// It exists so that tests can freeze the clock to a known value without
// depending on wall-clock timing.
type TestClock struct {
	now time.Time
}

// NewTestClock returns a TestClock pinned to now.
func NewTestClock(now time.Time) *TestClock {
	return &TestClock{now: now}
}

// Now returns the pinned time.
func (c *TestClock) Now() time.Time {
	return c.now
}

// SetTime advances the pinned time to now.
func (c *TestClock) SetTime(now time.Time) {
	c.now = now
}
