package scroll

import (
	"math"

	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// DefaultDuration is how long an inertial scroll takes to settle.
const DefaultDuration = timing.VTimeInSec(1.2)

// An Easing maps the elapsed fraction of a scroll, in [0, 1], to the
// covered fraction of its distance.
type Easing func(t float64) float64

// ExpoOut is the default easing, an exponential ease-out clamped at 1.
func ExpoOut(t float64) float64 {
	return math.Min(1, 1.001-math.Pow(2, -10*t))
}

// Inertial moves the window toward a requested offset over a fixed duration.
// It does nothing on its own; the frame loop drives it through OnFrame.
type Inertial struct {
	timeTeller timing.TimeTeller
	window     *page.Window
	duration   timing.VTimeInSec
	easing     Easing

	from, to  float64
	startTime timing.VTimeInSec
	animating bool
}

// NewInertial creates an inertial scroller for w.
func NewInertial(
	tt timing.TimeTeller,
	w *page.Window,
	duration timing.VTimeInSec,
	easing Easing,
) *Inertial {
	if !(duration > 0) {
		panic("scroll: duration must be positive")
	}

	if easing == nil {
		easing = ExpoOut
	}

	return &Inertial{
		timeTeller: tt,
		window:     w,
		duration:   duration,
		easing:     easing,
	}
}

// ScrollTo starts a scroll from the current position to y. A scroll in
// progress is retargeted from where it is.
func (in *Inertial) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}

	in.from = in.window.ScrollY()
	in.to = y
	in.startTime = in.timeTeller.Now()
	in.animating = in.from != in.to
}

// Target returns the offset the scroller is heading to.
func (in *Inertial) Target() float64 {
	return in.to
}

// Animating tells if a scroll is in progress.
func (in *Inertial) Animating() bool {
	return in.animating
}

// OnFrame advances the scroll.
func (in *Inertial) OnFrame(now timing.VTimeInSec) {
	if !in.animating {
		return
	}

	t := float64((now - in.startTime) / in.duration)
	if t >= 1 {
		in.animating = false
		in.window.ScrollTo(in.to)

		return
	}

	if t < 0 {
		t = 0
	}

	in.window.ScrollTo(in.from + (in.to-in.from)*in.easing(t))
}

var _ page.Scroller = (*Inertial)(nil)
var _ timing.FrameHandler = (*Inertial)(nil)
