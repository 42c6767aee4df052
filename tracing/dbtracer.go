package tracing

import (
	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/sim/id"
)

// TransitionTable is the table DBTracer writes to.
const TransitionTable = "transitions"

// TransitionEntry is the stored form of a transition.
type TransitionEntry struct {
	ID        string
	Time      float64
	Component string
	Kind      string
	Detail    string
}

// DBTracer stores transitions through a DataRecorder.
type DBTracer struct {
	recorder datarecording.DataRecorder
	filter   TransitionFilter
	err      error
}

// NewDBTracer creates the transition table on recorder. A nil filter
// stores everything.
func NewDBTracer(
	recorder datarecording.DataRecorder,
	filter TransitionFilter,
) (*DBTracer, error) {
	if filter == nil {
		filter = AllTransitions
	}

	err := recorder.CreateTable(TransitionTable, TransitionEntry{})
	if err != nil {
		return nil, err
	}

	return &DBTracer{recorder: recorder, filter: filter}, nil
}

// Transition buffers t for the next flush.
func (t *DBTracer) Transition(tr interact.Transition) {
	if !t.filter(tr) || t.err != nil {
		return
	}

	t.err = t.recorder.InsertData(TransitionTable, TransitionEntry{
		ID:        id.Generate(),
		Time:      float64(tr.Time),
		Component: tr.Component,
		Kind:      tr.Kind,
		Detail:    tr.Detail,
	})
}

// Err returns the first error met while storing. Nothing is stored after
// an error.
func (t *DBTracer) Err() error {
	return t.err
}
