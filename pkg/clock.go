package pkg

import "time"

// Clock abstracts "now" so time-windowed logic stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
