package tracing

import (
	"sort"
	"sync"

	"github.com/sarchlab/pagesim/interact"
)

// CountKey identifies a kind of transition of a component.
type CountKey struct {
	Component string
	Kind      string
}

// CountTracer counts transitions by component and kind.
type CountTracer struct {
	filter TransitionFilter

	lock   sync.Mutex
	counts map[CountKey]int
	total  int
}

// NewCountTracer creates a CountTracer. A nil filter counts everything.
func NewCountTracer(filter TransitionFilter) *CountTracer {
	if filter == nil {
		filter = AllTransitions
	}

	return &CountTracer{
		filter: filter,
		counts: make(map[CountKey]int),
	}
}

// Transition counts t.
func (t *CountTracer) Transition(tr interact.Transition) {
	if !t.filter(tr) {
		return
	}

	t.lock.Lock()
	t.counts[CountKey{Component: tr.Component, Kind: tr.Kind}]++
	t.total++
	t.lock.Unlock()
}

// Count returns how many transitions of kind the component made.
func (t *CountTracer) Count(component, kind string) int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.counts[CountKey{Component: component, Kind: kind}]
}

// Total returns the number of counted transitions.
func (t *CountTracer) Total() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.total
}

// Keys returns the counted keys, sorted by component and kind.
func (t *CountTracer) Keys() []CountKey {
	t.lock.Lock()
	defer t.lock.Unlock()

	keys := make([]CountKey, 0, len(t.counts))
	for k := range t.counts {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Component != keys[j].Component {
			return keys[i].Component < keys[j].Component
		}

		return keys[i].Kind < keys[j].Kind
	})

	return keys
}
