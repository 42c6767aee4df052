package timing

import "sync"

// FrameEvent is delivered once per display refresh.
type FrameEvent struct {
	EventBase
	Frame uint64
}

// MakeFrameEvent creates a new FrameEvent.
func MakeFrameEvent(handler Handler, time VTimeInSec, frame uint64) FrameEvent {
	return FrameEvent{
		EventBase: MakeEventBase(time, handler),
		Frame:     frame,
	}
}

// A FrameHandler is called on every animation frame.
type FrameHandler interface {
	OnFrame(now VTimeInSec)
}

// FrameHandlerFunc adapts a function to FrameHandler.
type FrameHandlerFunc func(now VTimeInSec)

// OnFrame calls f(now).
func (f FrameHandlerFunc) OnFrame(now VTimeInSec) {
	f(now)
}

// FrameScheduler delivers animation frames at the display refresh rate.
//
// Every registered FrameHandler is called on every frame, in registration
// order, whether or not anything changed since the last frame. Once started,
// the frame loop runs for as long as the engine does; there is no way to
// stop it.
type FrameScheduler struct {
	lock     sync.Mutex
	Engine   EventScheduler
	Freq     Freq
	handlers []FrameHandler

	started bool
	frame   uint64
}

// NewFrameScheduler creates a frame scheduler that runs at freq.
func NewFrameScheduler(engine EventScheduler, freq Freq) *FrameScheduler {
	s := new(FrameScheduler)
	s.Engine = engine
	s.Freq = freq

	return s
}

// Register adds a handler to the frame loop. Handlers registered after
// Start join from the next frame on.
func (s *FrameScheduler) Register(h FrameHandler) {
	s.lock.Lock()
	s.handlers = append(s.handlers, h)
	s.lock.Unlock()
}

// Start schedules the first frame on the current tick. Calling it more than
// once has no effect.
func (s *FrameScheduler) Start() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.started {
		return
	}

	s.started = true
	s.Engine.Schedule(MakeFrameEvent(s, s.Freq.ThisTick(s.Engine.Now()), 0))
}

// Frames returns the number of frames delivered so far.
func (s *FrameScheduler) Frames() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.frame
}

// Handle delivers a frame to all handlers and requests the next frame.
func (s *FrameScheduler) Handle(e Event) error {
	s.lock.Lock()
	handlers := make([]FrameHandler, len(s.handlers))
	copy(handlers, s.handlers)
	s.frame++
	next := s.frame
	s.lock.Unlock()

	now := e.Time()
	for _, h := range handlers {
		h.OnFrame(now)
	}

	s.Engine.Schedule(MakeFrameEvent(s, s.Freq.NextTick(now), next))

	return nil
}
