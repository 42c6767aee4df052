// Package counter animates the stat numbers of the page. Each counter counts
// from zero to its target in a fixed number of steps, the first time it
// scrolls into view.
package counter

import (
	"strconv"

	"golang.org/x/text/message"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Defaults taken from the page design.
const (
	DefaultSteps    = 60
	DefaultDuration = timing.VTimeInSec(2)
	DefaultStart    = 0.8
)

// Visibility reports when an element first comes into view.
type Visibility interface {
	OnceVisible(el *page.Element, fraction float64, fn func(now timing.VTimeInSec))
}

// A Record is the animation state of one counter element.
type Record struct {
	Element *page.Element
	Target  int

	triggered bool
	steps     int
	value     int
	done      bool
	timer     *timing.IntervalTimer
}

// Triggered tells if the animation has started. It never goes back to
// false.
func (r *Record) Triggered() bool {
	return r.triggered
}

// Steps returns how many steps have run.
func (r *Record) Steps() int {
	return r.steps
}

// Value returns the last value written.
func (r *Record) Value() int {
	return r.value
}

// Done tells if the counter has reached its target.
func (r *Record) Done() bool {
	return r.done
}

// Timer returns the step timer, or nil before the animation starts.
func (r *Record) Timer() *timing.IntervalTimer {
	return r.timer
}

// An Animator runs the counters of a page.
type Animator struct {
	*interact.ComponentBase

	engine   timing.EventScheduler
	steps    int
	duration timing.VTimeInSec
	printer  *message.Printer
	records  []*Record
}

// Records returns the counters in document order.
func (a *Animator) Records() []*Record {
	return a.records
}

// StepInterval returns the time between two steps.
func (a *Animator) StepInterval() timing.VTimeInSec {
	return a.duration / timing.VTimeInSec(a.steps)
}

// Format writes n with the digit grouping of the page locale.
func (a *Animator) Format(n int) string {
	return a.printer.Sprintf("%d", n)
}

// Trigger starts the animation of r. It reports false, and does nothing,
// if r has been triggered before.
func (a *Animator) Trigger(now timing.VTimeInSec, r *Record) bool {
	if r.triggered {
		return false
	}

	r.triggered = true
	r.timer = timing.NewIntervalTimer(a.engine, a.StepInterval(),
		func(now timing.VTimeInSec) { a.step(now, r) })
	r.timer.Start()

	a.NotifyTransition(now, "start",
		r.Element.Name()+" to "+strconv.Itoa(r.Target))

	return true
}

// step adds target/steps to the count. The count is kept as
// target*k/steps in integers, so the last step lands exactly on the target
// and every written value is the floor of the running total.
func (a *Animator) step(now timing.VTimeInSec, r *Record) {
	r.steps++

	current := runningTotal(r.Target, r.steps, a.steps)
	if r.steps >= a.steps || current >= r.Target {
		r.value = r.Target
		r.done = true
		r.timer.Stop()
		r.Element.SetText(a.Format(r.Target))

		a.NotifyTransition(now, "done",
			r.Element.Name()+" at "+strconv.Itoa(r.steps)+" steps")

		return
	}

	r.value = current
	r.Element.SetText(a.Format(current))
}

// runningTotal is floor(target*k/steps) for 0 <= k <= steps, split into
// quotient and remainder so that no product exceeds target.
func runningTotal(target, k, steps int) int {
	q, rem := target/steps, target%steps

	return q*k + rem*k/steps
}
