// Package accordion implements the FAQ list, where opening one item closes
// every other.
package accordion

import (
	"strconv"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// ActiveClass marks an expanded item.
const ActiveClass = "active"

// An Item is one question and answer pair.
type Item struct {
	Element  *page.Element
	Question *page.Element
}

// Expanded tells if the item is open.
func (it Item) Expanded() bool {
	return it.Element.HasClass(ActiveClass)
}

func (it Item) set(expanded bool) {
	it.Element.SetClass(ActiveClass, expanded)
	it.Question.SetAttribute("aria-expanded", strconv.FormatBool(expanded))
}

// A Controller keeps at most one item of a fixed set expanded.
type Controller struct {
	*interact.ComponentBase

	items []Item
}

// Items returns the items in document order.
func (c *Controller) Items() []Item {
	return c.items
}

// Expanded returns the index of the open item, or -1 if all are closed.
func (c *Controller) Expanded() int {
	for i, it := range c.items {
		if it.Expanded() {
			return i
		}
	}

	return -1
}

// IsExpanded tells if item i is open.
func (c *Controller) IsExpanded(i int) bool {
	return c.items[i].Expanded()
}

// Toggle handles a click on the question of item i. Every other item is
// closed, then item i flips.
func (c *Controller) Toggle(now timing.VTimeInSec, i int) {
	clicked := c.items[i]
	wasActive := clicked.Expanded()

	for j, other := range c.items {
		if j != i {
			other.set(false)
		}
	}

	clicked.set(!wasActive)

	kind := "open"
	if wasActive {
		kind = "close"
	}

	c.NotifyTransition(now, kind, clicked.Element.Name())
}
