package providers

import "github.com/jonboulle/clockwork"

// NewClockProvider supplies the real clock; tests build stores with a fake one.
func NewClockProvider() clockwork.Clock {
	return clockwork.NewRealClock()
}
