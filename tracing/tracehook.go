package tracing

import (
	"fmt"
	"reflect"

	"github.com/sarchlab/pagesim/interact"
	"github.com/sarchlab/pagesim/sim/hooking"
)

// CollectTransitions lets the tracer receive the transitions of a component.
// Attaching the same tracer twice is a programming error.
func CollectTransitions(c interact.Component, tracer Tracer) {
	for _, hook := range c.Hooks() {
		h, ok := hook.(*traceHook)
		if ok && h.t == tracer {
			panic(fmt.Sprintf(
				"component %s already has tracer %s",
				c.Name(), reflect.TypeOf(tracer)))
		}
	}

	c.AcceptHook(&traceHook{t: tracer})
}

type traceHook struct {
	t Tracer
}

// Func forwards transitions to the tracer.
func (h *traceHook) Func(ctx hooking.HookCtx) {
	if ctx.Pos != interact.HookPosTransition {
		return
	}

	h.t.Transition(ctx.Item.(interact.Transition))
}
