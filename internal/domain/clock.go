package domain

import "time"

// Clock supplies the current time. Every lifecycle decision is a pure function
// of (auction state, clock, event), so the clock is injected rather than read
// from time.Now directly.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
