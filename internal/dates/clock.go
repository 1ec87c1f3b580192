package dates

import "time"

// Clock abstracts "now" so that streaks, grids, and ID allocation can be
// driven by a fixed instant in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock on every call. Nothing is cached: two
// calls straddling midnight see different days, which is the intended
// behavior for a calendar application.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
