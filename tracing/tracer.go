// Package tracing collects the transitions of page components and the
// events the engine handles.
package tracing

import (
	"github.com/sarchlab/pagesim/interact"
)

// A Tracer consumes component transitions.
type Tracer interface {
	Transition(t interact.Transition)
}

// A TransitionFilter tells if a transition is of interest.
type TransitionFilter func(t interact.Transition) bool

// AllTransitions accepts everything.
func AllTransitions(interact.Transition) bool {
	return true
}

// ComponentFilter accepts the transitions of the named components.
func ComponentFilter(names ...string) TransitionFilter {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return func(t interact.Transition) bool {
		return set[t.Component]
	}
}
