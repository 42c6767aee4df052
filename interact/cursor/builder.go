package cursor

import (
	"log"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Cursor groups the pieces of the custom pointer.
type Cursor struct {
	Tracker  *PointerTracker
	Animator *Animator
	Hover    *HoverStateController
}

// Builder can build a Cursor.
type Builder struct {
	frames        *timing.FrameScheduler
	smoothing     float64
	ringSelector  string
	dotSelector   string
	hoverSelector string
	logger        *log.Logger
}

// MakeBuilder creates a builder with the default settings.
func MakeBuilder() Builder {
	return Builder{
		smoothing:     DefaultSmoothing,
		ringSelector:  ".custom-cursor",
		dotSelector:   ".custom-cursor-dot",
		hoverSelector: DefaultHoverTargets,
	}
}

// WithFrameScheduler sets the frame loop the animator joins.
func (b Builder) WithFrameScheduler(fs *timing.FrameScheduler) Builder {
	b.frames = fs
	return b
}

// WithSmoothing sets the smoothing factor.
func (b Builder) WithSmoothing(alpha float64) Builder {
	b.smoothing = alpha
	return b
}

// WithRingSelector sets the selector of the eased ring.
func (b Builder) WithRingSelector(sel string) Builder {
	b.ringSelector = sel
	return b
}

// WithDotSelector sets the selector of the dot that follows the pointer
// directly.
func (b Builder) WithDotSelector(sel string) Builder {
	b.dotSelector = sel
	return b
}

// WithHoverTargets sets the selector of the hover targets.
func (b Builder) WithHoverTargets(sel string) Builder {
	b.hoverSelector = sel
	return b
}

// WithLogger sets the logger of the built components.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// Build wires the cursor into the document. When either cursor layer is
// missing, nothing is wired and an error wrapping interact.ErrMissingTarget
// is returned.
func (b Builder) Build(name string, doc *page.Document) (*Cursor, error) {
	if !(b.smoothing > 0 && b.smoothing <= 1) {
		return nil, ErrInvalidSmoothing
	}

	if b.frames == nil {
		panic("cursor: frame scheduler is required")
	}

	ring := doc.QuerySelector(b.ringSelector)
	if ring == nil {
		return nil, interact.MissingTarget(name, b.ringSelector)
	}

	dot := doc.QuerySelector(b.dotSelector)
	if dot == nil {
		return nil, interact.MissingTarget(name, b.dotSelector)
	}

	c := &Cursor{Tracker: &PointerTracker{}}

	c.Animator = &Animator{
		ComponentBase: interact.NewComponentBase(name + ".Animator"),
		pointer:       c.Tracker,
		ring:          ring,
		alpha:         b.smoothing,
	}

	c.Hover = &HoverStateController{
		ComponentBase: interact.NewComponentBase(name + ".Hover"),
		ring:          ring,
		dot:           dot,
		targets:       doc.QuerySelectorAll(b.hoverSelector),
		visible:       true,
	}

	if b.logger != nil {
		c.Animator.SetLogger(b.logger)
		c.Hover.SetLogger(b.logger)
	}

	doc.AddEventListener(page.PointerMove, func(e *page.DOMEvent) {
		c.Tracker.Move(e.ClientX, e.ClientY)
		writePosition(dot, c.Tracker.Position())
	})

	c.Hover.attach(doc)
	b.frames.Register(c.Animator)

	return c, nil
}
