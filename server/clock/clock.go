package clock

import "time"

// Clock provides the current time. Registries use it to measure how long a
// track stayed published.
type Clock interface {
	Now() time.Time
}

func New() Clock {
	return clock{}
}

type clock struct{}

func (c clock) Now() time.Time {
	return time.Now()
}
