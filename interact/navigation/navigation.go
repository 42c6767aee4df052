// Package navigation implements the top bar: the scrolled look it takes
// once the hero is out of view, and the mobile menu toggle.
package navigation

import (
	"strconv"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Classes set by the navigation.
const (
	ScrolledClass = "scrolled"
	ActiveClass   = "active"
)

// DefaultScrolledAfter is the scroll distance, in viewport heights, after
// which the bar is scrolled.
const DefaultScrolledAfter = 1.0

// Navbar is the top bar.
type Navbar struct {
	*interact.ComponentBase

	bar *page.Element
}

// Scrolled tells if the bar is in its scrolled state.
func (n *Navbar) Scrolled() bool {
	return n.bar.HasClass(ScrolledClass)
}

// Enter switches the bar to its scrolled state.
func (n *Navbar) Enter(now timing.VTimeInSec) {
	n.bar.AddClass(ScrolledClass)
	n.NotifyTransition(now, "scrolled", "on")
}

// LeaveBack restores the bar.
func (n *Navbar) LeaveBack(now timing.VTimeInSec) {
	n.bar.RemoveClass(ScrolledClass)
	n.NotifyTransition(now, "scrolled", "off")
}

// MobileMenu opens and closes the link list on small screens.
type MobileMenu struct {
	*interact.ComponentBase

	toggle *page.Element
	links  *page.Element
}

// Open tells if the menu is open.
func (m *MobileMenu) Open() bool {
	return m.links.HasClass(ActiveClass)
}

// Toggle flips the menu. The aria-expanded attribute of the toggle is read,
// not derived from the classes, so markup that starts without it is treated
// as closed.
func (m *MobileMenu) Toggle(now timing.VTimeInSec) {
	m.toggle.ToggleClass(ActiveClass)
	m.links.ToggleClass(ActiveClass)

	expanded, _ := m.toggle.Attribute("aria-expanded")
	next := expanded != "true"
	m.toggle.SetAttribute("aria-expanded", strconv.FormatBool(next))

	m.NotifyTransition(now, "toggle", strconv.FormatBool(next))
}

// Close shuts the menu, as happens after following a link.
func (m *MobileMenu) Close(now timing.VTimeInSec) {
	m.toggle.RemoveClass(ActiveClass)
	m.links.RemoveClass(ActiveClass)
	m.toggle.SetAttribute("aria-expanded", "false")

	m.NotifyTransition(now, "close", "")
}
