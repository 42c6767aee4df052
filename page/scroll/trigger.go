// Package scroll provides the scroll-driven collaborators of the page: scroll
// triggers that fire when the viewport passes a point on the page, reveal
// groups built on them, and an inertial scroller that eases the window
// toward a requested offset one animation frame at a time.
package scroll

import (
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// A Start tells the scroll offset at which a trigger becomes active. It is
// evaluated on every refresh, so it follows layout and viewport changes.
type Start func(w *page.Window) float64

// TopAt starts a trigger when the top of el reaches fraction of the viewport
// height, measured from the top of the viewport. TopAt(el, 0.8) is the
// "top 80%" position.
func TopAt(el *page.Element, fraction float64) Start {
	return func(w *page.Window) float64 {
		return el.Top() - fraction*w.InnerHeight()
	}
}

// ViewportHeights starts a trigger after the page has scrolled n viewport
// heights.
func ViewportHeights(n float64) Start {
	return func(w *page.Window) float64 {
		return n * w.InnerHeight()
	}
}

// AtOffset starts a trigger at a fixed scroll offset.
func AtOffset(y float64) Start {
	return func(*page.Window) float64 {
		return y
	}
}

// A Callback is run when a trigger changes state.
type Callback = func(now timing.VTimeInSec)

// A Trigger watches one scroll position.
//
// OnEnter runs when the window scrolls to or past Start. OnLeaveBack runs
// when it scrolls back above Start after having entered. A Once trigger is
// removed right after its first OnEnter.
type Trigger struct {
	Name        string
	Start       Start
	Once        bool
	OnEnter     Callback
	OnLeaveBack Callback
}

type triggerState struct {
	Trigger
	active bool
	killed bool
}

// TriggerSet evaluates triggers against a window. It refreshes on every
// scroll and resize of the window.
type TriggerSet struct {
	timeTeller timing.TimeTeller
	window     *page.Window
	triggers   []*triggerState
	refreshing bool
	dirty      bool
	entered    int
	left       int
	stalls     int
}

// NewTriggerSet creates a TriggerSet and subscribes it to w.
func NewTriggerSet(tt timing.TimeTeller, w *page.Window) *TriggerSet {
	s := &TriggerSet{
		timeTeller: tt,
		window:     w,
	}

	refresh := func(*page.DOMEvent) { s.Refresh() }
	w.AddEventListener(page.Scroll, refresh)
	w.AddEventListener(page.Resize, refresh)

	return s
}

// Add registers t and evaluates it at once, so a trigger whose position is
// already passed enters immediately.
func (s *TriggerSet) Add(t Trigger) {
	if t.Start == nil {
		panic("scroll: trigger without a start")
	}

	ts := &triggerState{Trigger: t}
	s.triggers = append(s.triggers, ts)
	s.evaluate(s.timeTeller.Now(), ts)

	if !s.refreshing {
		s.compact()
	}
}

// OnceVisible runs fn the first time the top of el reaches fraction of the
// viewport.
func (s *TriggerSet) OnceVisible(el *page.Element, fraction float64, fn Callback) {
	s.Add(Trigger{
		Name:    el.Name(),
		Start:   TopAt(el, fraction),
		Once:    true,
		OnEnter: fn,
	})
}

// maxRefreshRounds bounds the rounds of one refresh. Callbacks that keep
// scrolling each other back and forth are cut off after it.
const maxRefreshRounds = 64

// Refresh evaluates every trigger, in registration order, against the
// current scroll position. Triggers added by a callback during a refresh are
// evaluated when they are added. A callback that scrolls the window makes the
// refresh run another round instead of recursing, up to maxRefreshRounds.
func (s *TriggerSet) Refresh() {
	if s.refreshing {
		s.dirty = true
		return
	}

	now := s.timeTeller.Now()

	s.refreshing = true
	for round := 1; ; round++ {
		s.dirty = false

		n := len(s.triggers)
		for i := 0; i < n; i++ {
			s.evaluate(now, s.triggers[i])
		}

		if !s.dirty {
			break
		}

		if round >= maxRefreshRounds {
			s.stalls++
			break
		}
	}
	s.refreshing = false

	s.compact()
}

// Len returns the number of live triggers.
func (s *TriggerSet) Len() int {
	return len(s.triggers)
}

// Entered returns how many times a trigger has entered.
func (s *TriggerSet) Entered() int {
	return s.entered
}

// Stalls returns how many refreshes were cut off because the callbacks
// never settled on a scroll position.
func (s *TriggerSet) Stalls() int {
	return s.stalls
}

// LeftBack returns how many times a trigger has left back.
func (s *TriggerSet) LeftBack() int {
	return s.left
}

func (s *TriggerSet) evaluate(now timing.VTimeInSec, t *triggerState) {
	if t.killed {
		return
	}

	inside := s.window.ScrollY() >= t.Start(s.window)

	switch {
	case inside && !t.active:
		t.active = true
		s.entered++

		if t.Once {
			t.killed = true
		}

		if t.OnEnter != nil {
			t.OnEnter(now)
		}
	case !inside && t.active:
		t.active = false
		s.left++

		if t.OnLeaveBack != nil {
			t.OnLeaveBack(now)
		}
	}
}

func (s *TriggerSet) compact() {
	live := s.triggers[:0]
	for _, t := range s.triggers {
		if !t.killed {
			live = append(live, t)
		}
	}

	for i := len(live); i < len(s.triggers); i++ {
		s.triggers[i] = nil
	}

	s.triggers = live
}
