package page

import "github.com/sarchlab/pagesim/sim/timing"

// EventType names a DOM event.
type EventType string

// The DOM events the page reacts to.
const (
	PointerMove  EventType = "mousemove"
	PointerEnter EventType = "mouseenter"
	PointerLeave EventType = "mouseleave"
	Click        EventType = "click"
	Submit       EventType = "submit"
	Scroll       EventType = "scroll"
	Resize       EventType = "resize"
)

// A DOMEvent is delivered to listeners.
type DOMEvent struct {
	Type   EventType
	Target *Element
	Time   timing.VTimeInSec

	// ClientX and ClientY are viewport coordinates for pointer events.
	ClientX float64
	ClientY float64

	defaultPrevented bool
}

// PreventDefault marks the event's default action as cancelled.
func (e *DOMEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented tells if a listener called PreventDefault.
func (e *DOMEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener reacts to a DOM event.
type Listener func(evt *DOMEvent)

// EventTarget is anything listeners can be attached to.
type EventTarget interface {
	AddEventListener(t EventType, l Listener)
	Dispatch(evt *DOMEvent)
}

type listenerSet struct {
	byType map[EventType][]Listener
}

func (s *listenerSet) add(t EventType, l Listener) {
	if s.byType == nil {
		s.byType = make(map[EventType][]Listener)
	}

	s.byType[t] = append(s.byType[t], l)
}

// dispatch calls the listeners registered before the dispatch started, in
// registration order.
func (s *listenerSet) dispatch(evt *DOMEvent) {
	listeners := s.byType[evt.Type]
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)

	for _, l := range snapshot {
		l(evt)
	}
}

func (s *listenerSet) count(t EventType) int {
	return len(s.byType[t])
}
