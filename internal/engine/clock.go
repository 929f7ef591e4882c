package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It supplies "today" whenever the caller does not provide a reference date.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
