// Package internal provides internal utilities for the capture package.
package internal

import "time"

// Clock is an interface for obtaining wall-clock time.
// This abstraction allows artifact names to be asserted exactly in tests.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}

// SystemClock is a Clock implementation backed by time.Now.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a Clock implementation for testing that allows manual control
// of time progression. It is not safe for concurrent use.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a new MockClock initialized to the given time.
// If t is zero, it initializes to a reasonable default start time.
func NewMockClock(t time.Time) *MockClock {
	if t.IsZero() {
		t = time.Date(2024, time.June, 1, 10, 15, 30, 0, time.Local)
	}
	return &MockClock{current: t}
}

// Now returns the mock clock's current time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by the given duration.
// Panics if d is negative.
func (m *MockClock) Advance(d time.Duration) {
	if d < 0 {
		panic("MockClock.Advance: duration must be non-negative")
	}
	m.current = m.current.Add(d)
}

// Set sets the clock to the given time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}
