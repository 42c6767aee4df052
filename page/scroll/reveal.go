package scroll

import (
	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// RevealedClass is added to an element once its reveal group has entered.
const RevealedClass = "revealed"

// A RevealGroup describes one entrance effect of the page.
//
// Every element matching Trigger gets its own scroll trigger at "top
// Start". When it enters, the Targets are revealed. Targets are searched
// inside the trigger element when Scoped is set, in the whole document
// otherwise; an empty Targets reveals the trigger element itself. A group
// with Reverse hides its targets again when the trigger leaves back.
type RevealGroup struct {
	Trigger string  `yaml:"trigger"`
	Targets string  `yaml:"targets"`
	Scoped  bool    `yaml:"scoped"`
	Start   float64 `yaml:"start"`
	Reverse bool    `yaml:"reverse"`
}

// DefaultRevealGroups are the entrance effects of the landing page.
var DefaultRevealGroups = []RevealGroup{
	{Trigger: ".section-title", Start: 0.8, Reverse: true},
	{Trigger: ".problem-grid", Targets: ".problem-card", Start: 0.75},
	{Trigger: ".feature-row", Targets: ".feature-text, .feature-visual", Scoped: true, Start: 0.7},
	{Trigger: ".contact-section", Targets: ".contact-item, .contact-form", Start: 0.7},
	{Trigger: ".site-footer", Targets: ".footer-grid > div", Start: 0.85},
	{Trigger: ".how-it-works-section", Targets: ".process-step, .process-connector", Start: 0.7},
	{Trigger: ".features-section", Targets: ".feature-card", Start: 0.7},
	{Trigger: ".testimonials-section", Targets: ".testimonial-card", Start: 0.7},
	{Trigger: ".partners-section", Targets: ".partner-logo", Start: 0.8},
	{Trigger: ".faq-section", Targets: ".faq-item", Start: 0.7},
}

// Reveal registers g on doc and returns the number of triggers created. A
// group whose trigger or targets are not on the page creates nothing.
func (s *TriggerSet) Reveal(doc *page.Document, g RevealGroup) int {
	created := 0

	for _, el := range doc.QuerySelectorAll(g.Trigger) {
		targets := revealTargets(doc, el, g)
		if len(targets) == 0 {
			continue
		}

		t := Trigger{
			Name:  el.Name(),
			Start: TopAt(el, g.Start),
			OnEnter: func(timing.VTimeInSec) {
				for _, target := range targets {
					target.AddClass(RevealedClass)
				}
			},
		}

		if g.Reverse {
			t.OnLeaveBack = func(timing.VTimeInSec) {
				for _, target := range targets {
					target.RemoveClass(RevealedClass)
				}
			}
		} else {
			t.Once = true
		}

		s.Add(t)
		created++
	}

	return created
}

func revealTargets(
	doc *page.Document,
	trigger *page.Element,
	g RevealGroup,
) []*page.Element {
	switch {
	case g.Targets == "":
		return []*page.Element{trigger}
	case g.Scoped:
		return trigger.QuerySelectorAll(g.Targets)
	default:
		return doc.QuerySelectorAll(g.Targets)
	}
}
