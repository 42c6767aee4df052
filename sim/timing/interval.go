package timing

import (
	"sync"
)

// TimerEvent wakes an IntervalTimer or a Timeout up.
type TimerEvent struct {
	EventBase
	generation uint64
}

// TimerCallback is invoked when a timer fires.
type TimerCallback func(now VTimeInSec)

// An IntervalTimer calls its callback repeatedly, once every interval, until
// it is stopped. The first call happens one interval after Start.
//
// The callback may stop the timer it is running on. In that case no further
// call is scheduled.
type IntervalTimer struct {
	lock       sync.Mutex
	engine     EventScheduler
	interval   VTimeInSec
	callback   TimerCallback
	running    bool
	generation uint64
	fired      uint64
}

// NewIntervalTimer creates a stopped IntervalTimer.
func NewIntervalTimer(
	engine EventScheduler,
	interval VTimeInSec,
	callback TimerCallback,
) *IntervalTimer {
	if !(interval > 0) {
		panic("interval must be positive")
	}

	return &IntervalTimer{
		engine:   engine,
		interval: interval,
		callback: callback,
	}
}

// Start arms the timer. Starting a running timer has no effect.
func (t *IntervalTimer) Start() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.running {
		return
	}

	t.running = true
	t.generation++
	t.scheduleLocked(t.engine.Now() + t.interval)
}

// Stop disarms the timer. A tick that is already queued is dropped when it
// comes up.
func (t *IntervalTimer) Stop() {
	t.lock.Lock()
	t.running = false
	t.lock.Unlock()
}

// Running tells if the timer is armed.
func (t *IntervalTimer) Running() bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.running
}

// Fired returns how many times the callback has been invoked.
func (t *IntervalTimer) Fired() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.fired
}

// Interval returns the time between two consecutive calls.
func (t *IntervalTimer) Interval() VTimeInSec {
	return t.interval
}

// Handle runs the callback and re-arms the timer.
func (t *IntervalTimer) Handle(e Event) error {
	evt := e.(TimerEvent)

	t.lock.Lock()
	if !t.running || evt.generation != t.generation {
		t.lock.Unlock()
		return nil
	}
	t.fired++
	t.lock.Unlock()

	t.callback(evt.Time())

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.running && evt.generation == t.generation {
		t.scheduleLocked(evt.Time() + t.interval)
	}

	return nil
}

func (t *IntervalTimer) scheduleLocked(at VTimeInSec) {
	t.engine.Schedule(TimerEvent{
		EventBase:  MakeEventBase(at, t),
		generation: t.generation,
	})
}

// A Timeout calls its callback once, after a delay, unless cancelled first.
type Timeout struct {
	lock      sync.Mutex
	callback  TimerCallback
	cancelled bool
	fired     bool
}

// AfterFunc schedules callback to run delay seconds from now.
func AfterFunc(
	engine EventScheduler,
	delay VTimeInSec,
	callback TimerCallback,
) *Timeout {
	t := &Timeout{callback: callback}
	engine.Schedule(TimerEvent{
		EventBase: MakeEventBase(engine.Now()+delay, t),
	})

	return t
}

// Cancel prevents the callback from running if it has not run yet. It
// reports whether the call stopped the timeout.
func (t *Timeout) Cancel() bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.fired || t.cancelled {
		return false
	}

	t.cancelled = true

	return true
}

// Fired tells if the callback has run.
func (t *Timeout) Fired() bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.fired
}

// Handle runs the callback unless the timeout was cancelled.
func (t *Timeout) Handle(e Event) error {
	t.lock.Lock()
	if t.cancelled || t.fired {
		t.lock.Unlock()
		return nil
	}
	t.fired = true
	t.lock.Unlock()

	t.callback(e.Time())

	return nil
}
