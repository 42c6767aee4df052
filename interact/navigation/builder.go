package navigation

import (
	"log"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/page/scroll"
)

// Triggers takes the scroll trigger of the navbar.
type Triggers interface {
	Add(t scroll.Trigger)
}

// NavbarBuilder can build a Navbar.
type NavbarBuilder struct {
	triggers      Triggers
	selector      string
	scrolledAfter float64
	logger        *log.Logger
}

// MakeNavbarBuilder creates a builder with the default settings.
func MakeNavbarBuilder() NavbarBuilder {
	return NavbarBuilder{
		selector:      ".glass-nav",
		scrolledAfter: DefaultScrolledAfter,
	}
}

// WithTriggers sets where the navbar registers its scroll trigger.
func (b NavbarBuilder) WithTriggers(t Triggers) NavbarBuilder {
	b.triggers = t
	return b
}

// WithSelector sets the selector of the bar.
func (b NavbarBuilder) WithSelector(sel string) NavbarBuilder {
	b.selector = sel
	return b
}

// WithScrolledAfter sets after how many viewport heights the bar is
// scrolled.
func (b NavbarBuilder) WithScrolledAfter(n float64) NavbarBuilder {
	b.scrolledAfter = n
	return b
}

// WithLogger sets the logger of the navbar.
func (b NavbarBuilder) WithLogger(l *log.Logger) NavbarBuilder {
	b.logger = l
	return b
}

// Build finds the bar and registers its scroll trigger.
func (b NavbarBuilder) Build(name string, doc *page.Document) (*Navbar, error) {
	if b.triggers == nil {
		panic("navigation: triggers are required")
	}

	bar := doc.QuerySelector(b.selector)
	if bar == nil {
		return nil, interact.MissingTarget(name, b.selector)
	}

	n := &Navbar{
		ComponentBase: interact.NewComponentBase(name),
		bar:           bar,
	}

	if b.logger != nil {
		n.SetLogger(b.logger)
	}

	b.triggers.Add(scroll.Trigger{
		Name:        name,
		Start:       scroll.ViewportHeights(b.scrolledAfter),
		OnEnter:     n.Enter,
		OnLeaveBack: n.LeaveBack,
	})

	return n, nil
}

// MenuBuilder can build a MobileMenu.
type MenuBuilder struct {
	toggleSelector string
	linksSelector  string
	logger         *log.Logger
}

// MakeMenuBuilder creates a builder with the default settings.
func MakeMenuBuilder() MenuBuilder {
	return MenuBuilder{
		toggleSelector: ".mobile-menu-toggle",
		linksSelector:  ".nav-links",
	}
}

// WithSelectors sets the selectors of the toggle button and the link list.
func (b MenuBuilder) WithSelectors(toggle, links string) MenuBuilder {
	b.toggleSelector = toggle
	b.linksSelector = links

	return b
}

// WithLogger sets the logger of the menu.
func (b MenuBuilder) WithLogger(l *log.Logger) MenuBuilder {
	b.logger = l
	return b
}

// Build wires the toggle and every link of the list. Both the toggle and
// the list are required.
func (b MenuBuilder) Build(name string, doc *page.Document) (*MobileMenu, error) {
	toggle := doc.QuerySelector(b.toggleSelector)
	if toggle == nil {
		return nil, interact.MissingTarget(name, b.toggleSelector)
	}

	links := doc.QuerySelector(b.linksSelector)
	if links == nil {
		return nil, interact.MissingTarget(name, b.linksSelector)
	}

	m := &MobileMenu{
		ComponentBase: interact.NewComponentBase(name),
		toggle:        toggle,
		links:         links,
	}

	if b.logger != nil {
		m.SetLogger(b.logger)
	}

	toggle.AddEventListener(page.Click, func(e *page.DOMEvent) {
		m.Toggle(e.Time)
	})

	for _, a := range links.QuerySelectorAll("a") {
		a.AddEventListener(page.Click, func(e *page.DOMEvent) {
			m.Close(e.Time)
		})
	}

	return m, nil
}

var _ Triggers = (*scroll.TriggerSet)(nil)
