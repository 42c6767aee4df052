// Package interact holds what the page's interaction components share: a
// component base with hooks and logging, the transition record that tracers
// consume, and the error used when a component cannot find its elements.
package interact

import (
	"errors"
	"fmt"
	"log"

	"github.com/sarchlab/pagesim/sim/hooking"
	"github.com/sarchlab/pagesim/sim/timing"
)

// ErrMissingTarget is returned by builders when an element the component
// needs is not on the page. The component is not created and nothing else is
// affected.
var ErrMissingTarget = errors.New("required element missing")

// MissingTarget wraps ErrMissingTarget with the component and selector.
func MissingTarget(component, selector string) error {
	return fmt.Errorf("%s: %w: %s", component, ErrMissingTarget, selector)
}

// HookPosTransition fires after a component changes its state.
var HookPosTransition = &hooking.HookPos{Name: "Transition"}

// A Transition describes one state change of a component.
type Transition struct {
	Time      timing.VTimeInSec
	Component string
	Kind      string
	Detail    string
}

// A Component is a named, hookable piece of page behavior.
type Component interface {
	hooking.Hookable

	Name() string
}

// ComponentBase provides naming, hooks and logging.
type ComponentBase struct {
	*hooking.HookableBase

	name   string
	logger *log.Logger
}

// NewComponentBase creates a new ComponentBase.
func NewComponentBase(name string) *ComponentBase {
	if name == "" {
		panic("component name cannot be empty")
	}

	return &ComponentBase{
		HookableBase: hooking.NewHookableBase(),
		name:         name,
	}
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string {
	return c.name
}

// SetLogger sets the logger transitions are written to. A nil logger
// silences the component.
func (c *ComponentBase) SetLogger(l *log.Logger) {
	c.logger = l
}

// NotifyTransition logs the transition and invokes the hooks.
func (c *ComponentBase) NotifyTransition(
	now timing.VTimeInSec,
	kind, detail string,
) {
	if c.logger != nil {
		c.logger.Printf("%.4f, %s, %s, %s", now, c.name, kind, detail)
	}

	if c.NumHooks() == 0 {
		return
	}

	t := Transition{
		Time:      now,
		Component: c.name,
		Kind:      kind,
		Detail:    detail,
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosTransition,
		Item:   t,
	})
}
