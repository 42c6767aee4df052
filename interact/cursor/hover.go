package cursor

import (
	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// DefaultHoverTargets selects the elements that put the ring in its hover
// state.
const DefaultHoverTargets = "a, button, input, textarea, .faq-question, " +
	".testimonial-btn, .dot, .feature-card, .problem-card, .glass-card"

// HoverClass is the class the ring carries while hovering.
const HoverClass = "hover"

// A HoverStateController flags the ring while the pointer is over one of a
// fixed set of targets, and hides both cursor layers while the pointer is
// outside the viewport. The two behaviors do not affect each other.
type HoverStateController struct {
	*interact.ComponentBase

	ring    *page.Element
	dot     *page.Element
	targets []*page.Element

	hovering bool
	visible  bool
}

// Targets returns the elements resolved when the controller was built.
func (h *HoverStateController) Targets() []*page.Element {
	return h.targets
}

// Hovering tells if the ring is in its hover state.
func (h *HoverStateController) Hovering() bool {
	return h.hovering
}

// Visible tells if the cursor layers are shown.
func (h *HoverStateController) Visible() bool {
	return h.visible
}

func (h *HoverStateController) attach(doc *page.Document) {
	for _, t := range h.targets {
		target := t
		target.AddEventListener(page.PointerEnter, func(e *page.DOMEvent) {
			h.setHovering(e.Time, true, target)
		})
		target.AddEventListener(page.PointerLeave, func(e *page.DOMEvent) {
			h.setHovering(e.Time, false, target)
		})
	}

	doc.AddEventListener(page.PointerLeave, func(e *page.DOMEvent) {
		h.setVisible(e.Time, false)
	})
	doc.AddEventListener(page.PointerEnter, func(e *page.DOMEvent) {
		h.setVisible(e.Time, true)
	})
}

func (h *HoverStateController) setHovering(
	now timing.VTimeInSec,
	on bool,
	target *page.Element,
) {
	h.hovering = on
	h.ring.SetClass(HoverClass, on)

	kind := "hover-exit"
	if on {
		kind = "hover-enter"
	}

	h.NotifyTransition(now, kind, target.Name())
}

func (h *HoverStateController) setVisible(now timing.VTimeInSec, visible bool) {
	h.visible = visible

	opacity := "0"
	kind := "hide"

	if visible {
		opacity = "1"
		kind = "show"
	}

	h.ring.SetStyle("opacity", opacity)
	h.dot.SetStyle("opacity", opacity)

	h.NotifyTransition(now, kind, "viewport")
}
