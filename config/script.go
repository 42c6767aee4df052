package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/pagesim/page"
	"github.com/sarchlab/pagesim/sim/timing"
)

// A Step is one timed input of a script.
type Step struct {
	At     float64 `yaml:"at"`
	Type   string  `yaml:"type"`
	Target string  `yaml:"target,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// A Script is what a visitor does to the page.
type Script struct {
	Steps []Step `yaml:"steps"`
}

var knownTypes = map[page.EventType]bool{
	page.PointerMove:  true,
	page.PointerEnter: true,
	page.PointerLeave: true,
	page.Click:        true,
	page.Submit:       true,
	page.Scroll:       true,
	page.Resize:       true,
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return s, nil
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (*Script, error) {
	s := &Script{}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}

	for i, st := range s.Steps {
		if !(st.At >= 0) {
			return nil, fmt.Errorf("%w: step %d at negative time %g",
				ErrInvalidConfig, i, st.At)
		}

		if !knownTypes[page.EventType(st.Type)] {
			return nil, fmt.Errorf("%w: step %d has unknown type %q",
				ErrInvalidConfig, i, st.Type)
		}

		needsTarget := st.Type == string(page.Click) ||
			st.Type == string(page.Submit)
		if needsTarget && st.Target == "" {
			return nil, fmt.Errorf("%w: step %d (%s) needs a target",
				ErrInvalidConfig, i, st.Type)
		}
	}

	return s, nil
}

// Inputs converts the steps into dispatcher inputs, in script order.
func (s *Script) Inputs() []page.Input {
	inputs := make([]page.Input, 0, len(s.Steps))

	for _, st := range s.Steps {
		inputs = append(inputs, page.Input{
			Time:   timing.VTimeInSec(st.At),
			Type:   page.EventType(st.Type),
			Target: st.Target,
			X:      st.X,
			Y:      st.Y,
			Width:  st.Width,
			Height: st.Height,
		})
	}

	return inputs
}

// End returns the time of the last step.
func (s *Script) End() float64 {
	end := 0.0
	for _, st := range s.Steps {
		if st.At > end {
			end = st.At
		}
	}

	return end
}
