package accordion

import (
	"log"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
)

// Builder can build a Controller.
type Builder struct {
	itemSelector     string
	questionSelector string
	logger           *log.Logger
}

// MakeBuilder creates a builder with the default settings.
func MakeBuilder() Builder {
	return Builder{
		itemSelector:     ".faq-item",
		questionSelector: ".faq-question",
	}
}

// WithItemSelector sets the selector of the items.
func (b Builder) WithItemSelector(sel string) Builder {
	b.itemSelector = sel
	return b
}

// WithQuestionSelector sets the selector of the clickable question, looked
// up inside each item.
func (b Builder) WithQuestionSelector(sel string) Builder {
	b.questionSelector = sel
	return b
}

// WithLogger sets the logger of the controller.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// Build attaches a click listener to the question of every item. An item
// without a question makes the whole accordion unusable, and no listener is
// attached.
func (b Builder) Build(name string, doc *page.Document) (*Controller, error) {
	elements := doc.QuerySelectorAll(b.itemSelector)
	if len(elements) == 0 {
		return nil, interact.MissingTarget(name, b.itemSelector)
	}

	c := &Controller{
		ComponentBase: interact.NewComponentBase(name),
	}

	if b.logger != nil {
		c.SetLogger(b.logger)
	}

	for _, el := range elements {
		q := el.QuerySelector(b.questionSelector)
		if q == nil {
			return nil, interact.MissingTarget(name, b.questionSelector)
		}

		c.items = append(c.items, Item{Element: el, Question: q})
	}

	for i, it := range c.items {
		index := i
		it.Question.AddEventListener(page.Click, func(e *page.DOMEvent) {
			c.Toggle(e.Time, index)
		})
	}

	return c, nil
}
