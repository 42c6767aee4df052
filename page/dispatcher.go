package page

import (
	"errors"
	"fmt"
	"log"

	"github.com/sarchlab/pagesim/sim/timing"
)

// ErrNoTarget is reported when an input names an element that is not on the
// page.
var ErrNoTarget = errors.New("page: input target not found")

// An Input is something the outside world does to the page: the user moving
// the pointer, clicking, submitting, scrolling, or resizing the window.
type Input struct {
	Time timing.VTimeInSec
	Type EventType

	// Target is a CSS selector. Pointer moves and empty-target enter/leave
	// go to the document, scroll and resize go to the window.
	Target string

	X, Y          float64
	Width, Height float64
}

// A Scroller takes scroll requests instead of the window jumping directly.
type Scroller interface {
	ScrollTo(y float64)
}

// DeliveryEvent carries an Input to the Dispatcher.
type DeliveryEvent struct {
	timing.EventBase
	Input Input
}

// A Dispatcher feeds inputs into the page through the engine. Each input
// becomes one engine event; its listeners run inside that event, so they
// finish before any later input, frame or timer is processed.
type Dispatcher struct {
	engine timing.EventScheduler
	doc    *Document

	scroller Scroller
	logger   *log.Logger

	delivered int
	dropped   int
}

// NewDispatcher creates a Dispatcher for the document.
func NewDispatcher(engine timing.EventScheduler, doc *Document) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		doc:    doc,
	}
}

// Name returns the name of the dispatcher.
func (d *Dispatcher) Name() string {
	return "Dispatcher"
}

// SetScroller routes scroll inputs through s.
func (d *Dispatcher) SetScroller(s Scroller) {
	d.scroller = s
}

// SetLogger sets where dropped inputs are reported.
func (d *Dispatcher) SetLogger(l *log.Logger) {
	d.logger = l
}

// Enqueue schedules an input.
func (d *Dispatcher) Enqueue(in Input) {
	d.engine.Schedule(DeliveryEvent{
		EventBase: timing.MakeEventBase(in.Time, d),
		Input:     in,
	})
}

// Delivered returns how many inputs reached the page.
func (d *Dispatcher) Delivered() int {
	return d.delivered
}

// Dropped returns how many inputs named a missing target.
func (d *Dispatcher) Dropped() int {
	return d.dropped
}

// Handle delivers an input to the page.
func (d *Dispatcher) Handle(e timing.Event) error {
	evt, ok := e.(DeliveryEvent)
	if !ok {
		return fmt.Errorf("page: dispatcher cannot handle %T", e)
	}

	err := d.deliver(evt.Input, evt.Time())
	if errors.Is(err, ErrNoTarget) {
		d.dropped++

		if d.logger != nil {
			d.logger.Printf("%.4f, %s, dropped %s on %q",
				evt.Time(), d.Name(), evt.Input.Type, evt.Input.Target)
		}

		return nil
	}

	if err != nil {
		return err
	}

	d.delivered++

	return nil
}

func (d *Dispatcher) deliver(in Input, now timing.VTimeInSec) error {
	switch in.Type {
	case PointerMove:
		d.doc.Dispatch(&DOMEvent{
			Type: PointerMove, Time: now, ClientX: in.X, ClientY: in.Y,
		})
	case PointerEnter, PointerLeave:
		if in.Target == "" {
			d.doc.Dispatch(&DOMEvent{Type: in.Type, Time: now})
			return nil
		}

		return d.toElement(in, now)
	case Click, Submit:
		return d.toElement(in, now)
	case Scroll:
		if d.scroller != nil {
			d.scroller.ScrollTo(in.Y)
		} else {
			d.doc.Window().ScrollTo(in.Y)
		}
	case Resize:
		d.doc.Window().Resize(in.Width, in.Height)
	default:
		return fmt.Errorf("page: unknown input type %q", in.Type)
	}

	return nil
}

func (d *Dispatcher) toElement(in Input, now timing.VTimeInSec) error {
	target := d.doc.QuerySelector(in.Target)
	if target == nil {
		return fmt.Errorf("%w: %s", ErrNoTarget, in.Target)
	}

	target.Dispatch(&DOMEvent{
		Type:    in.Type,
		Target:  target,
		Time:    now,
		ClientX: in.X,
		ClientY: in.Y,
	})

	return nil
}
