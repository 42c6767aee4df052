package timing

import (
	"github.com/sarchlab/pagesim/sim/hooking"
)

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	Now() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	TimeTeller

	Schedule(e Event)
}

// An Engine keeps the page timeline running. All handlers run on the engine
// one after another, so a handler always completes before the next event is
// looked at.
type Engine interface {
	hooking.Hookable
	EventScheduler

	// Run will process all the events until the queue drains. Page sessions
	// own timers that never stop, so most callers want RunUntil.
	Run() error

	// RunUntil processes every event at or before the deadline and then
	// moves the clock to the deadline.
	RunUntil(deadline VTimeInSec) error

	// Pause will pause the engine until continue is called.
	Pause()

	// Continue will continue the paused engine.
	Continue()
}
