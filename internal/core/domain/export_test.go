package domain

import "time"

// SetClock replaces the entity clock and returns a function restoring it.
func SetClock(now func() time.Time) (restore func()) {
	prev := clock
	clock = now
	return func() { clock = prev }
}
