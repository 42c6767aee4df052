package timing

import (
	"log"
	"reflect"

	"github.com/sarchlab/pagesim/sim/hooking"
)

// EventLogger is a hook that prints every event before it is handled. Frame
// events are skipped unless WithFrames is set, as there are sixty of them
// per second.
type EventLogger struct {
	logger *log.Logger
	frames bool
}

// NewEventLogger returns a new EventLogger which will write in to the logger
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// WithFrames makes the logger include frame events.
func (h *EventLogger) WithFrames() *EventLogger {
	h.frames = true
	return h
}

type named interface {
	Name() string
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	if frame, isFrame := evt.(FrameEvent); isFrame {
		if h.frames {
			h.logger.Printf("%.4f, frame %d", evt.Time(), frame.Frame)
		}

		return
	}

	kind := reflect.TypeOf(evt)
	if handler, ok := evt.Handler().(named); ok {
		h.logger.Printf("%.4f, %s -> %s", evt.Time(), kind, handler.Name())
	} else {
		h.logger.Printf("%.4f, %s", evt.Time(), kind)
	}
}
