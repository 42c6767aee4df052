package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/sarchlab/pagesim/config"
	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/interact/accordion"
	"github.com/sarchlab/pagesim/interact/carousel"
	"github.com/sarchlab/pagesim/interact/contactform"
	"github.com/sarchlab/pagesim/interact/counter"
	"github.com/sarchlab/pagesim/interact/cursor"
	"github.com/sarchlab/pagesim/interact/navigation"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/page/scroll"
	"github.com/sarchlab/pagesim/sim/timing"
)

// ErrSimulatedFailure is what the stub submitter returns when the page is
// configured to fail submissions.
var ErrSimulatedFailure = errors.New("simulated submission failure")

// Builder can build a Session.
type Builder struct {
	settings  *config.Page
	logger    *log.Logger
	submitter contactform.Submitter
	frameRate timing.Freq
}

// MakeBuilder creates a builder with the default page settings.
func MakeBuilder() Builder {
	return Builder{
		settings:  config.DefaultPage(),
		frameRate: timing.DisplayRefreshRate,
	}
}

// WithPage sets the page settings.
func (b Builder) WithPage(p *config.Page) Builder {
	b.settings = p
	return b
}

// WithLogger sets the logger shared by the dispatcher and the components.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// WithSubmitter sets what the contact form submits to.
func (b Builder) WithSubmitter(s contactform.Submitter) Builder {
	b.submitter = s
	return b
}

// WithFrameRate sets the display refresh rate.
func (b Builder) WithFrameRate(f timing.Freq) Builder {
	b.frameRate = f
	return b
}

// Build parses the markup and wires every component into it. A component
// whose elements are missing is left out and logged; the others still work.
func (b Builder) Build(markup io.Reader) (*Session, error) {
	p := b.settings

	doc, err := page.Parse(markup, p.Viewport.Width, p.Viewport.Height)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	engine := timing.NewSerialEngine()

	s := &Session{
		Engine:     engine,
		Document:   doc,
		Dispatcher: page.NewDispatcher(engine, doc),
		Frames:     timing.NewFrameScheduler(engine, b.frameRate),
		Triggers:   scroll.NewTriggerSet(engine, doc.Window()),
		settings:   p,
		logger:     b.logger,
	}

	if b.logger != nil {
		s.Dispatcher.SetLogger(b.logger)
	}

	if p.Scroll.Inertial {
		s.Inertial = scroll.NewInertial(engine, doc.Window(),
			timing.VTimeInSec(p.Scroll.Duration), scroll.ExpoOut)
		s.Dispatcher.SetScroller(s.Inertial)
		s.Frames.Register(s.Inertial)
	}

	if err := b.buildComponents(s); err != nil {
		return nil, err
	}

	for _, g := range p.RevealGroups() {
		s.reveals += s.Triggers.Reveal(doc, g)
	}

	s.Frames.Start()

	if s.Carousel != nil {
		s.Carousel.Timer().Start()
	}

	return s, nil
}

func (b Builder) buildComponents(s *Session) error {
	steps := []struct {
		name  string
		build func() error
	}{
		{CursorName, func() (err error) { s.Cursor, err = b.buildCursor(s); return }},
		{CarouselName, func() (err error) { s.Carousel, err = b.buildCarousel(s); return }},
		{CounterName, func() (err error) { s.Counters, err = b.buildCounters(s); return }},
		{AccordionName, func() (err error) { s.Accordion, err = b.buildAccordion(s); return }},
		{NavbarName, func() (err error) { s.Navbar, err = b.buildNavbar(s); return }},
		{MobileMenuName, func() (err error) { s.MobileMenu, err = b.buildMenu(s); return }},
		{ContactFormName, func() (err error) { s.ContactForm, err = b.buildForm(s); return }},
	}

	for _, st := range steps {
		if s.settings.IsDisabled(st.name) {
			s.disabled = append(s.disabled, st.name)
			continue
		}

		err := st.build()
		if errors.Is(err, interact.ErrMissingTarget) {
			s.disabled = append(s.disabled, st.name)
			b.logf("%.4f, %s, disabled, %v", s.Engine.Now(), st.name, err)

			continue
		}

		if err != nil {
			return fmt.Errorf("session: %s: %w", st.name, err)
		}
	}

	return nil
}

func (b Builder) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}

func (b Builder) buildCursor(s *Session) (*cursor.Cursor, error) {
	return cursor.MakeBuilder().
		WithFrameScheduler(s.Frames).
		WithSmoothing(s.settings.Cursor.Smoothing).
		WithLogger(b.logger).
		Build(CursorName, s.Document)
}

func (b Builder) buildCarousel(s *Session) (*carousel.Carousel, error) {
	c := s.settings.Carousel

	return carousel.MakeBuilder().
		WithEngine(s.Engine).
		WithGap(c.Gap).
		WithAutoAdvanceInterval(timing.VTimeInSec(c.AutoAdvanceInterval)).
		WithDesktopMinWidth(c.DesktopMinWidth).
		WithLogger(b.logger).
		Build(CarouselName, s.Document)
}

func (b Builder) buildCounters(s *Session) (*counter.Animator, error) {
	c := s.settings.Counter

	return counter.MakeBuilder().
		WithEngine(s.Engine).
		WithVisibility(s.Triggers).
		WithSteps(c.Steps).
		WithDuration(timing.VTimeInSec(c.Duration)).
		WithStart(c.Start).
		WithLogger(b.logger).
		Build(CounterName, s.Document)
}

func (b Builder) buildAccordion(s *Session) (*accordion.Controller, error) {
	return accordion.MakeBuilder().
		WithLogger(b.logger).
		Build(AccordionName, s.Document)
}

func (b Builder) buildNavbar(s *Session) (*navigation.Navbar, error) {
	return navigation.MakeNavbarBuilder().
		WithTriggers(s.Triggers).
		WithLogger(b.logger).
		Build(NavbarName, s.Document)
}

func (b Builder) buildMenu(s *Session) (*navigation.MobileMenu, error) {
	return navigation.MakeMenuBuilder().
		WithLogger(b.logger).
		Build(MobileMenuName, s.Document)
}

func (b Builder) buildForm(s *Session) (*contactform.Form, error) {
	cf := s.settings.ContactForm

	submitter := b.submitter
	if submitter == nil && cf.Fail {
		submitter = &contactform.StubSubmitter{Err: ErrSimulatedFailure}
	}

	return contactform.MakeBuilder().
		WithEngine(s.Engine).
		WithSubmitter(submitter).
		WithDelays(timing.VTimeInSec(cf.SentDelay), timing.VTimeInSec(cf.RestoreDelay)).
		WithLogger(b.logger).
		Build(ContactFormName, s.Document)
}
