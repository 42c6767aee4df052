// Package config loads page sessions: the page settings, the input script
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/pagesim/page/scroll"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Viewport is the initial window size.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Cursor configures the custom cursor.
type Cursor struct {
	Smoothing float64 `yaml:"smoothing"`
}

// Carousel configures the testimonial slider.
type Carousel struct {
	Gap                 float64 `yaml:"gap"`
	AutoAdvanceInterval float64 `yaml:"auto_advance_interval"`
	DesktopMinWidth     float64 `yaml:"desktop_min_width"`
}

// Counter configures the stat counters.
type Counter struct {
	Steps    int     `yaml:"steps"`
	Duration float64 `yaml:"duration"`
	Start    float64 `yaml:"start"`
}

// ContactForm configures the contact form feedback.
type ContactForm struct {
	SentDelay    float64 `yaml:"sent_delay"`
	RestoreDelay float64 `yaml:"restore_delay"`
	Fail         bool    `yaml:"fail"`
}

// Scroll configures scrolling.
type Scroll struct {
	Inertial bool    `yaml:"inertial"`
	Duration float64 `yaml:"duration"`

	// Reveal replaces the default reveal groups when set.
	Reveal []scroll.RevealGroup `yaml:"reveal"`
}

// Page is the description of a page session.
type Page struct {
	// Markup is the HTML file of the page, relative to the page file.
	Markup   string   `yaml:"markup"`
	Viewport Viewport `yaml:"viewport"`

	Cursor      Cursor      `yaml:"cursor"`
	Carousel    Carousel    `yaml:"carousel"`
	Counter     Counter     `yaml:"counter"`
	ContactForm ContactForm `yaml:"contact_form"`
	Scroll      Scroll      `yaml:"scroll"`

	// Disabled lists components that are not built.
	Disabled []string `yaml:"disabled"`

	dir string
}

// DefaultPage returns the settings of the landing page.
func DefaultPage() *Page {
	return &Page{
		Viewport: Viewport{Width: 1440, Height: 900},
		Cursor:   Cursor{Smoothing: 0.15},
		Carousel: Carousel{
			Gap:                 32,
			AutoAdvanceInterval: 5,
			DesktopMinWidth:     768,
		},
		Counter:     Counter{Steps: 60, Duration: 2, Start: 0.8},
		ContactForm: ContactForm{SentDelay: 1.5, RestoreDelay: 3},
		Scroll:      Scroll{Inertial: true, Duration: 1.2},
	}
}

// LoadPage reads a page file. Settings missing from the file keep their
// defaults.
func LoadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	p, err := ParsePage(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	p.dir = filepath.Dir(path)

	return p, nil
}

// ParsePage decodes and validates page settings.
func ParsePage(data []byte) (*Page, error) {
	p := DefaultPage()

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the settings.
func (p *Page) Validate() error {
	switch {
	case !(p.Viewport.Width > 0 && p.Viewport.Height > 0):
		return fmt.Errorf("%w: viewport must be positive", ErrInvalidConfig)
	case !(p.Cursor.Smoothing > 0 && p.Cursor.Smoothing <= 1):
		return fmt.Errorf("%w: cursor smoothing must be in (0, 1]", ErrInvalidConfig)
	case !(p.Carousel.AutoAdvanceInterval > 0):
		return fmt.Errorf("%w: auto-advance interval must be positive", ErrInvalidConfig)
	case p.Counter.Steps <= 0 || !(p.Counter.Duration > 0):
		return fmt.Errorf("%w: counter steps and duration must be positive", ErrInvalidConfig)
	case !(p.ContactForm.SentDelay >= 0 && p.ContactForm.RestoreDelay >= 0):
		return fmt.Errorf("%w: contact form delays must not be negative", ErrInvalidConfig)
	case !(p.Scroll.Duration > 0):
		return fmt.Errorf("%w: scroll duration must be positive", ErrInvalidConfig)
	}

	return nil
}

// MarkupPath returns where the HTML of the page is.
func (p *Page) MarkupPath() string {
	if p.Markup == "" || filepath.IsAbs(p.Markup) {
		return p.Markup
	}

	return filepath.Join(p.dir, p.Markup)
}

// IsDisabled tells if a component is switched off.
func (p *Page) IsDisabled(name string) bool {
	for _, d := range p.Disabled {
		if d == name {
			return true
		}
	}

	return false
}

// RevealGroups returns the configured reveal groups, or the defaults.
func (p *Page) RevealGroups() []scroll.RevealGroup {
	if p.Scroll.Reveal != nil {
		return p.Scroll.Reveal
	}

	return scroll.DefaultRevealGroups
}
