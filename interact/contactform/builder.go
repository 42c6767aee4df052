package contactform

import (
	"log"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Builder can build a Form.
type Builder struct {
	engine         timing.EventScheduler
	submitter      Submitter
	sentDelay      timing.VTimeInSec
	restoreDelay   timing.VTimeInSec
	formSelector   string
	buttonSelector string
	fieldSelector  string
	logger         *log.Logger
}

// MakeBuilder creates a builder with the default settings.
func MakeBuilder() Builder {
	return Builder{
		sentDelay:      DefaultSentDelay,
		restoreDelay:   DefaultRestoreDelay,
		formSelector:   ".contact-form",
		buttonSelector: `button[type="submit"]`,
		fieldSelector:  "input, textarea, select",
	}
}

// WithEngine sets the engine the feedback delays run on.
func (b Builder) WithEngine(engine timing.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithSubmitter sets what receives the fields. Without one, a
// StubSubmitter that always succeeds is used.
func (b Builder) WithSubmitter(s Submitter) Builder {
	b.submitter = s
	return b
}

// WithDelays sets the time before the outcome is shown and the time it
// stays on the button.
func (b Builder) WithDelays(sent, restore timing.VTimeInSec) Builder {
	b.sentDelay = sent
	b.restoreDelay = restore

	return b
}

// WithFormSelector sets the selector of the form.
func (b Builder) WithFormSelector(sel string) Builder {
	b.formSelector = sel
	return b
}

// WithLogger sets the logger of the form.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// Build wires the submit listener of the form. The form and its submit
// button are required.
func (b Builder) Build(name string, doc *page.Document) (*Form, error) {
	if b.engine == nil {
		panic("contactform: engine is required")
	}

	form := doc.QuerySelector(b.formSelector)
	if form == nil {
		return nil, interact.MissingTarget(name, b.formSelector)
	}

	button := form.QuerySelector(b.buttonSelector)
	if button == nil {
		return nil, interact.MissingTarget(name, b.buttonSelector)
	}

	submitter := b.submitter
	if submitter == nil {
		submitter = &StubSubmitter{}
	}

	f := &Form{
		ComponentBase: interact.NewComponentBase(name),
		engine:        b.engine,
		form:          form,
		button:        button,
		submitter:     submitter,
		sentDelay:     b.sentDelay,
		restoreDelay:  b.restoreDelay,
	}

	if b.logger != nil {
		f.SetLogger(b.logger)
	}

	for _, el := range form.QuerySelectorAll(b.fieldSelector) {
		n, ok := el.Attribute("name")
		if !ok || n == "" {
			n = el.Name()
		}

		f.fields = append(f.fields, field{el: el, name: n, defValue: el.Value()})
	}

	form.AddEventListener(page.Submit, func(e *page.DOMEvent) {
		e.PreventDefault()
		f.Submit(e.Time)
	})

	return f, nil
}
