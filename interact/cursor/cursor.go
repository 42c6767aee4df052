// Package cursor implements the custom pointer: a tracker for the raw pointer
// position, an animator that eases a ring toward it once per frame, and a
// hover controller that flags the ring while the pointer is over interactive
// elements.
package cursor

import (
	"errors"
	"strconv"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// DefaultSmoothing is the fraction of the remaining distance the ring covers
// each frame.
const DefaultSmoothing = 0.15

// ErrInvalidSmoothing is returned for smoothing factors outside (0, 1].
var ErrInvalidSmoothing = errors.New("cursor: smoothing must be in (0, 1]")

// Position is a point in viewport pixels.
type Position struct {
	X, Y float64
}

// PointerTracker records the last raw pointer position. Before the first move
// it reports the origin.
type PointerTracker struct {
	pos   Position
	moves uint64
}

// Move records a new pointer position.
func (t *PointerTracker) Move(x, y float64) {
	t.pos = Position{X: x, Y: y}
	t.moves++
}

// Position returns the last recorded position.
func (t *PointerTracker) Position() Position {
	return t.pos
}

// Moves returns how many moves have been recorded.
func (t *PointerTracker) Moves() uint64 {
	return t.moves
}

// Smooth moves rendered a fraction alpha of the way toward target on each
// axis.
func Smooth(rendered, target Position, alpha float64) Position {
	return Position{
		X: rendered.X + (target.X-rendered.X)*alpha,
		Y: rendered.Y + (target.Y-rendered.Y)*alpha,
	}
}

// An Animator eases the cursor ring toward the pointer. It runs on every
// animation frame for the lifetime of the page and writes the ring position
// each time, including frames where nothing moved.
type Animator struct {
	*interact.ComponentBase

	pointer *PointerTracker
	ring    *page.Element
	alpha   float64

	rendered Position
	frames   uint64
}

// OnFrame advances the ring by one smoothing step.
func (a *Animator) OnFrame(_ timing.VTimeInSec) {
	a.rendered = Smooth(a.rendered, a.pointer.Position(), a.alpha)
	a.frames++

	writePosition(a.ring, a.rendered)
}

// Rendered returns the current ring position.
func (a *Animator) Rendered() Position {
	return a.rendered
}

// Frames returns the number of frames processed.
func (a *Animator) Frames() uint64 {
	return a.frames
}

// Smoothing returns the smoothing factor.
func (a *Animator) Smoothing() float64 {
	return a.alpha
}

func writePosition(el *page.Element, p Position) {
	el.SetStyle("left", px(p.X))
	el.SetStyle("top", px(p.Y))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
