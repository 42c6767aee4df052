package session

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/pagesim/page/scroll"
)

// Snapshot is the observable state of a session at one point in time.
type Snapshot struct {
	Time      float64 `yaml:"time"`
	Frames    uint64  `yaml:"frames"`
	ScrollY   float64 `yaml:"scroll_y"`
	Width     float64 `yaml:"width"`
	Delivered int     `yaml:"delivered"`
	Dropped   int     `yaml:"dropped"`

	Cursor      *CursorSnapshot      `yaml:"cursor,omitempty"`
	Carousel    *CarouselSnapshot    `yaml:"carousel,omitempty"`
	Counters    []CounterSnapshot    `yaml:"counters,omitempty"`
	Accordion   *AccordionSnapshot   `yaml:"accordion,omitempty"`
	Navbar      *NavbarSnapshot      `yaml:"navbar,omitempty"`
	MobileMenu  *MobileMenuSnapshot  `yaml:"mobile_menu,omitempty"`
	ContactForm *ContactFormSnapshot `yaml:"contact_form,omitempty"`

	Revealed int      `yaml:"revealed"`
	Disabled []string `yaml:"disabled,omitempty"`
}

// CursorSnapshot is the state of the custom cursor.
type CursorSnapshot struct {
	PointerX  float64 `yaml:"pointer_x"`
	PointerY  float64 `yaml:"pointer_y"`
	RenderedX float64 `yaml:"rendered_x"`
	RenderedY float64 `yaml:"rendered_y"`
	Hovering  bool    `yaml:"hovering"`
	Visible   bool    `yaml:"visible"`
}

// CarouselSnapshot is the state of the testimonial slider.
type CarouselSnapshot struct {
	Index        int     `yaml:"index"`
	Count        int     `yaml:"count"`
	Offset       float64 `yaml:"offset"`
	AutoAdvanced int     `yaml:"auto_advanced"`
	Suppressed   int     `yaml:"suppressed"`
}

// CounterSnapshot is the state of one stat counter.
type CounterSnapshot struct {
	Element string `yaml:"element"`
	Target  int    `yaml:"target"`
	Text    string `yaml:"text"`
	Done    bool   `yaml:"done"`
}

// AccordionSnapshot is the state of the FAQ. Expanded is -1 when all items
// are closed.
type AccordionSnapshot struct {
	Expanded int `yaml:"expanded"`
}

// NavbarSnapshot is the state of the navigation bar.
type NavbarSnapshot struct {
	Scrolled bool `yaml:"scrolled"`
}

// MobileMenuSnapshot is the state of the mobile menu.
type MobileMenuSnapshot struct {
	Open bool `yaml:"open"`
}

// ContactFormSnapshot is the state of the contact form.
type ContactFormSnapshot struct {
	Phase     string `yaml:"phase"`
	Submitted int    `yaml:"submitted"`
	Failed    int    `yaml:"failed"`
	Ignored   int    `yaml:"ignored"`
}

// Snapshot captures the current state of the page.
func (s *Session) Snapshot() Snapshot {
	w := s.Document.Window()

	snap := Snapshot{
		Time:      s.Engine.Now(),
		Frames:    s.Frames.Frames(),
		ScrollY:   w.ScrollY(),
		Width:     w.InnerWidth(),
		Delivered: s.Dispatcher.Delivered(),
		Dropped:   s.Dispatcher.Dropped(),
		Revealed:  len(s.Document.QuerySelectorAll("." + scroll.RevealedClass)),
		Disabled:  s.disabled,
	}

	if c := s.Cursor; c != nil {
		p, r := c.Tracker.Position(), c.Animator.Rendered()
		snap.Cursor = &CursorSnapshot{
			PointerX:  p.X,
			PointerY:  p.Y,
			RenderedX: r.X,
			RenderedY: r.Y,
			Hovering:  c.Hover.Hovering(),
			Visible:   c.Hover.Visible(),
		}
	}

	if c := s.Carousel; c != nil {
		snap.Carousel = &CarouselSnapshot{
			Index:        c.Index(),
			Count:        c.Count(),
			Offset:       c.View().Offset,
			AutoAdvanced: c.AutoAdvanced(),
			Suppressed:   c.Suppressed(),
		}
	}

	if s.Counters != nil {
		for _, r := range s.Counters.Records() {
			snap.Counters = append(snap.Counters, CounterSnapshot{
				Element: r.Element.Name(),
				Target:  r.Target,
				Text:    r.Element.Text(),
				Done:    r.Done(),
			})
		}
	}

	if s.Accordion != nil {
		snap.Accordion = &AccordionSnapshot{Expanded: s.Accordion.Expanded()}
	}

	if s.Navbar != nil {
		snap.Navbar = &NavbarSnapshot{Scrolled: s.Navbar.Scrolled()}
	}

	if s.MobileMenu != nil {
		snap.MobileMenu = &MobileMenuSnapshot{Open: s.MobileMenu.Open()}
	}

	if f := s.ContactForm; f != nil {
		snap.ContactForm = &ContactFormSnapshot{
			Phase:     f.Phase().String(),
			Submitted: f.Submitted(),
			Failed:    f.Failed(),
			Ignored:   f.Ignored(),
		}
	}

	return snap
}

// WriteYAML writes the snapshot as YAML.
func (s Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}
