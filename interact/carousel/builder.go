package carousel

import (
	"log"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Builder can build a Carousel.
type Builder struct {
	engine          timing.EventScheduler
	gap             float64
	interval        timing.VTimeInSec
	desktopMinWidth float64
	logger          *log.Logger

	trackSelector string
	cardSelector  string
	prevSelector  string
	nextSelector  string
	dotSelector   string
}

// MakeBuilder creates a builder with the default settings.
func MakeBuilder() Builder {
	return Builder{
		gap:             DefaultGap,
		interval:        DefaultAutoAdvanceInterval,
		desktopMinWidth: DefaultDesktopMinWidth,
		trackSelector:   ".testimonial-track",
		cardSelector:    ".testimonial-card",
		prevSelector:    ".testimonial-btn.prev",
		nextSelector:    ".testimonial-btn.next",
		dotSelector:     ".testimonial-dots .dot",
	}
}

// WithEngine sets the engine the auto-advance timer runs on.
func (b Builder) WithEngine(engine timing.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithGap sets the space between cards in pixels.
func (b Builder) WithGap(gap float64) Builder {
	b.gap = gap
	return b
}

// WithAutoAdvanceInterval sets the time between auto-advance ticks.
func (b Builder) WithAutoAdvanceInterval(interval timing.VTimeInSec) Builder {
	b.interval = interval
	return b
}

// WithDesktopMinWidth sets the viewport width at or below which
// auto-advance is suppressed.
func (b Builder) WithDesktopMinWidth(w float64) Builder {
	b.desktopMinWidth = w
	return b
}

// WithLogger sets the logger of the carousel.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// WithSelectors overrides the selectors of the track, the cards, the two
// buttons and the dots.
func (b Builder) WithSelectors(track, card, prev, next, dot string) Builder {
	b.trackSelector = track
	b.cardSelector = card
	b.prevSelector = prev
	b.nextSelector = next
	b.dotSelector = dot

	return b
}

// Build wires a carousel into the document. The track and at least one card
// are required; the buttons and dots are optional. The auto-advance timer is
// created but not started.
func (b Builder) Build(name string, doc *page.Document) (*Carousel, error) {
	if b.engine == nil {
		panic("carousel: engine is required")
	}

	track := doc.QuerySelector(b.trackSelector)
	if track == nil {
		return nil, interact.MissingTarget(name, b.trackSelector)
	}

	cards := doc.QuerySelectorAll(b.cardSelector)
	if len(cards) == 0 {
		return nil, interact.MissingTarget(name, b.cardSelector)
	}

	c := &Carousel{
		ComponentBase:   interact.NewComponentBase(name),
		state:           State{Index: 0, Count: len(cards)},
		window:          doc.Window(),
		track:           track,
		cards:           cards,
		dots:            doc.QuerySelectorAll(b.dotSelector),
		gap:             b.gap,
		desktopMinWidth: b.desktopMinWidth,
	}

	if b.logger != nil {
		c.SetLogger(b.logger)
	}

	if prev := doc.QuerySelector(b.prevSelector); prev != nil {
		prev.AddEventListener(page.Click, func(e *page.DOMEvent) {
			c.Prev(e.Time)
		})
	}

	if next := doc.QuerySelector(b.nextSelector); next != nil {
		next.AddEventListener(page.Click, func(e *page.DOMEvent) {
			c.Next(e.Time)
		})
	}

	for i, dot := range c.dots {
		index := i
		dot.AddEventListener(page.Click, func(e *page.DOMEvent) {
			c.JumpTo(e.Time, index)
		})
	}

	c.timer = timing.NewIntervalTimer(b.engine, b.interval, c.AutoAdvance)

	return c, nil
}
