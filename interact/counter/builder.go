package counter

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// Builder can build an Animator.
type Builder struct {
	engine     timing.EventScheduler
	visibility Visibility
	steps      int
	duration   timing.VTimeInSec
	start      float64
	selector   string
	logger     *log.Logger
}

// MakeBuilder creates a builder with the default settings.
func MakeBuilder() Builder {
	return Builder{
		steps:    DefaultSteps,
		duration: DefaultDuration,
		start:    DefaultStart,
		selector: ".stat-number",
	}
}

// WithEngine sets the engine the step timers run on.
func (b Builder) WithEngine(engine timing.EventScheduler) Builder {
	b.engine = engine
	return b
}

// WithVisibility sets what tells the counters they are in view.
func (b Builder) WithVisibility(v Visibility) Builder {
	b.visibility = v
	return b
}

// WithSteps sets the number of steps from zero to the target.
func (b Builder) WithSteps(n int) Builder {
	b.steps = n
	return b
}

// WithDuration sets the time from the first to the last step.
func (b Builder) WithDuration(d timing.VTimeInSec) Builder {
	b.duration = d
	return b
}

// WithStart sets the fraction of the viewport the top of a counter has to
// reach for it to start.
func (b Builder) WithStart(fraction float64) Builder {
	b.start = fraction
	return b
}

// WithSelector sets the selector of the counter elements.
func (b Builder) WithSelector(sel string) Builder {
	b.selector = sel
	return b
}

// WithLogger sets the logger of the animator.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// Build finds the counters of doc and arms one visibility trigger for each.
// Elements without a valid non-negative data-target are left alone.
func (b Builder) Build(name string, doc *page.Document) (*Animator, error) {
	if b.engine == nil {
		panic("counter: engine is required")
	}

	if b.visibility == nil {
		panic("counter: visibility is required")
	}

	if b.steps <= 0 || !(b.duration > 0) {
		panic("counter: steps and duration must be positive")
	}

	a := &Animator{
		ComponentBase: interact.NewComponentBase(name),
		engine:        b.engine,
		steps:         b.steps,
		duration:      b.duration,
		printer:       message.NewPrinter(language.English),
	}

	if b.logger != nil {
		a.SetLogger(b.logger)
	}

	for _, el := range doc.QuerySelectorAll(b.selector) {
		target, ok := parseTarget(el)
		if !ok {
			if b.logger != nil {
				b.logger.Printf("%s: ignoring %s, bad data-target", name, el.Name())
			}

			continue
		}

		a.records = append(a.records, &Record{Element: el, Target: target})
	}

	if len(a.records) == 0 {
		return nil, interact.MissingTarget(name, b.selector)
	}

	for _, r := range a.records {
		record := r
		b.visibility.OnceVisible(record.Element, b.start,
			func(now timing.VTimeInSec) { a.Trigger(now, record) })
	}

	return a, nil
}

func parseTarget(el *page.Element) (int, bool) {
	v, ok := el.Attribute("data-target")
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}
