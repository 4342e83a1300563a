// Package clock provides the time source for the game driver.
// The simulation never reads wall time itself; the driver asks a Clock and
// passes the result down, so tests can swap in a Manual clock.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real is the production clock backed by the system time.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to.
type Manual struct {
	current time.Time
}

// NewManual creates a Manual clock set to t.
// A zero t is replaced with a fixed epoch so tests get stable values.
func NewManual(t time.Time) *Manual {
	if t.IsZero() {
		t = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &Manual{current: t}
}

// Now returns the manual clock's current time.
func (m *Manual) Now() time.Time {
	return m.current
}

// Set moves the clock to an absolute time.
func (m *Manual) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
