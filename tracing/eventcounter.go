package tracing

import (
	"reflect"
	"sort"
	"sync"

	"github.com/sarchlab/pagesim/datarecording"
	"github.com/sarchlab/pagesim/sim/hooking"
	"github.com/sarchlab/pagesim/sim/timing"
)

// EventCountTable is the table EventCounter writes to.
const EventCountTable = "event_counts"

// EventCountEntry is the stored form of an event count.
type EventCountEntry struct {
	EventType string
	Handler   string
	Count     int
}

type eventKey struct {
	eventType string
	handler   string
}

// EventCounter is an engine hook that counts handled events by event type
// and handler.
type EventCounter struct {
	lock   sync.Mutex
	counts map[eventKey]int
}

// NewEventCounter creates an EventCounter.
func NewEventCounter() *EventCounter {
	return &EventCounter{counts: make(map[eventKey]int)}
}

// Func counts the event about to be handled.
func (c *EventCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != timing.HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(timing.Event)
	if !ok {
		return
	}

	k := eventKey{
		eventType: typeName(evt),
		handler:   handlerName(evt.Handler()),
	}

	c.lock.Lock()
	c.counts[k]++
	c.lock.Unlock()
}

// Count returns how many events of the given type were handled, over all
// handlers. The type is written as "timing.FrameEvent".
func (c *EventCounter) Count(eventType string) int {
	c.lock.Lock()
	defer c.lock.Unlock()

	n := 0
	for k, v := range c.counts {
		if k.eventType == eventType {
			n += v
		}
	}

	return n
}

// Entries returns the counts sorted by event type and handler.
func (c *EventCounter) Entries() []EventCountEntry {
	c.lock.Lock()
	defer c.lock.Unlock()

	entries := make([]EventCountEntry, 0, len(c.counts))
	for k, v := range c.counts {
		entries = append(entries, EventCountEntry{
			EventType: k.eventType,
			Handler:   k.handler,
			Count:     v,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EventType != entries[j].EventType {
			return entries[i].EventType < entries[j].EventType
		}

		return entries[i].Handler < entries[j].Handler
	})

	return entries
}

// Record writes the counts into their own table of recorder.
func (c *EventCounter) Record(recorder datarecording.DataRecorder) error {
	err := recorder.CreateTable(EventCountTable, EventCountEntry{})
	if err != nil {
		return err
	}

	for _, e := range c.Entries() {
		if err := recorder.InsertData(EventCountTable, e); err != nil {
			return err
		}
	}

	return recorder.Flush()
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.String()
}

type named interface {
	Name() string
}

func handlerName(h timing.Handler) string {
	if n, ok := h.(named); ok {
		return n.Name()
	}

	return typeName(h)
}
