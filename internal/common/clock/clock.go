package clock

import (
	"time"

	"github.com/coder/quartz"
)

// Clock tells time and schedules the staged reveals of timed games.
// *quartz.Mock satisfies it in tests.
type Clock interface {
	Now(tags ...string) time.Time
	AfterFunc(d time.Duration, f func(), tags ...string) *quartz.Timer
}

// New returns the wall clock
func New() Clock {
	return quartz.NewReal()
}
