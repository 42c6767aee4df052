// Package carousel implements the testimonial slider: manual previous and
// next buttons, one indicator dot per card, and a timer that advances the
// slider while the viewport is wide.
package carousel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Defaults taken from the page design.
const (
	DefaultGap                 = 32.0
	DefaultAutoAdvanceInterval = timing.VTimeInSec(5)
	DefaultDesktopMinWidth     = 768.0
)

// ActiveClass marks the indicator of the current card.
const ActiveClass = "active"

// A Carousel owns the slider state. Buttons, dots and the auto-advance timer
// all change it through the same transitions, and every transition ends with
// a full render of the view.
//
// The auto-advance timer runs for the lifetime of the page. Manual
// navigation neither pauses nor restarts it.
type Carousel struct {
	*interact.ComponentBase

	state State

	window *page.Window
	track  *page.Element
	cards  []*page.Element
	dots   []*page.Element

	gap             float64
	desktopMinWidth float64
	timer           *timing.IntervalTimer

	advanced   int
	suppressed int
}

// Index returns the current item.
func (c *Carousel) Index() int {
	return c.state.Index
}

// Count returns the number of items.
func (c *Carousel) Count() int {
	return c.state.Count
}

// State returns the current state.
func (c *Carousel) State() State {
	return c.state
}

// View returns the view for the current state.
func (c *Carousel) View() View {
	return Render(c.state, c.cardWidth(), c.gap, len(c.dots))
}

// Timer returns the auto-advance timer.
func (c *Carousel) Timer() *timing.IntervalTimer {
	return c.timer
}

// AutoAdvanced returns how many timer ticks moved the carousel.
func (c *Carousel) AutoAdvanced() int {
	return c.advanced
}

// Suppressed returns how many timer ticks were skipped on a narrow viewport.
func (c *Carousel) Suppressed() int {
	return c.suppressed
}

// Prev shows the previous item.
func (c *Carousel) Prev(now timing.VTimeInSec) {
	c.transition(now, "prev", c.state.Prev())
}

// Next shows the next item.
func (c *Carousel) Next(now timing.VTimeInSec) {
	c.transition(now, "next", c.state.Next())
}

// JumpTo shows item k. k must be a valid index.
func (c *Carousel) JumpTo(now timing.VTimeInSec, k int) {
	c.transition(now, "jump", c.state.JumpTo(k))
}

// AutoAdvance is the timer callback. On a wide viewport it behaves like
// Next; otherwise it does nothing and waits for the next tick.
func (c *Carousel) AutoAdvance(now timing.VTimeInSec) {
	if !c.isDesktop() {
		c.suppressed++
		c.NotifyTransition(now, "auto-suppressed",
			fmt.Sprintf("width %g", c.window.InnerWidth()))

		return
	}

	c.advanced++
	c.transition(now, "auto", c.state.Next())
}

func (c *Carousel) isDesktop() bool {
	return c.window.InnerWidth() > c.desktopMinWidth
}

func (c *Carousel) transition(now timing.VTimeInSec, kind string, next State) {
	from := c.state.Index
	c.state = next
	c.render()

	c.NotifyTransition(now, kind,
		strconv.Itoa(from)+"->"+strconv.Itoa(c.state.Index))
}

func (c *Carousel) cardWidth() float64 {
	if len(c.cards) == 0 {
		return 0
	}

	return c.cards[0].Width()
}

func (c *Carousel) render() {
	v := c.View()

	c.track.SetStyle("transform",
		"translateX(-"+strconv.FormatFloat(math.Abs(v.Offset), 'f', -1, 64)+"px)")

	for i, dot := range c.dots {
		dot.SetClass(ActiveClass, v.Active[i])
	}
}
