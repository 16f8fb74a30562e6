package core

import "time"

// TimeProvider abstracts the clock so creation timestamps are testable.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
}
