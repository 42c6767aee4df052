// Package session assembles a page with all its interactive components on
// one engine, replays visitor input against it and reports the resulting
// state.
package session

import (
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

// Component names.
const (
	CursorName      = "Cursor"
	CarouselName    = "Testimonials"
	CounterName     = "Stats"
	AccordionName   = "FAQ"
	NavbarName      = "Navbar"
	MobileMenuName  = "MobileMenu"
	ContactFormName = "ContactForm"
)

// A Session is a loaded page. It owns the engine and every long-lived timer
// of the page: the frame loop and the carousel timer run until the process
// ends, and nothing tears them down.
type Session struct {
	Engine     *timing.SerialEngine
	Document   *page.Document
	Dispatcher *page.Dispatcher
	Frames     *timing.FrameScheduler
	Triggers   *scroll.TriggerSet
	Inertial   *scroll.Inertial

	Cursor      *cursor.Cursor
	Carousel    *carousel.Carousel
	Counters    *counter.Animator
	Accordion   *accordion.Controller
	Navbar      *navigation.Navbar
	MobileMenu  *navigation.MobileMenu
	ContactForm *contactform.Form

	settings *config.Page
	logger   *log.Logger
	reveals  int
	disabled []string
}

// Components returns the built components.
func (s *Session) Components() []interact.Component {
	var cs []interact.Component

	if s.Cursor != nil {
		cs = append(cs, s.Cursor.Animator, s.Cursor.Hover)
	}

	if s.Carousel != nil {
		cs = append(cs, s.Carousel)
	}

	if s.Counters != nil {
		cs = append(cs, s.Counters)
	}

	if s.Accordion != nil {
		cs = append(cs, s.Accordion)
	}

	if s.Navbar != nil {
		cs = append(cs, s.Navbar)
	}

	if s.MobileMenu != nil {
		cs = append(cs, s.MobileMenu)
	}

	if s.ContactForm != nil {
		cs = append(cs, s.ContactForm)
	}

	return cs
}

// Disabled returns the components that were switched off or could not find
// their elements.
func (s *Session) Disabled() []string {
	return s.disabled
}

// Reveals returns the number of reveal triggers registered at load.
func (s *Session) Reveals() int {
	return s.reveals
}

// Play schedules visitor input.
func (s *Session) Play(inputs []page.Input) {
	for _, in := range inputs {
		s.Dispatcher.Enqueue(in)
	}
}

// Run advances the page to the given time.
func (s *Session) Run(until timing.VTimeInSec) error {
	return s.Engine.RunUntil(until)
}
