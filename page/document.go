package page

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// A Document is a parsed page together with its window.
type Document struct {
	root   *html.Node
	window *Window

	lock      sync.Mutex
	elements  map[*html.Node]*Element
	selectors map[string]cascadia.Selector

	listeners listenerSet
}

// Parse reads markup and builds a Document with the given viewport.
func Parse(r io.Reader, viewportWidth, viewportHeight float64) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("page: parsing markup: %w", err)
	}

	d := &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		selectors: make(map[string]cascadia.Selector),
	}
	d.window = newWindow(d, viewportWidth, viewportHeight)

	return d, nil
}

// ParseString is Parse for markup held in a string.
func ParseString(markup string, viewportWidth, viewportHeight float64) (*Document, error) {
	return Parse(strings.NewReader(markup), viewportWidth, viewportHeight)
}

// MustParseString is ParseString that panics on malformed input. It is meant
// for markup embedded in code.
func MustParseString(markup string, viewportWidth, viewportHeight float64) *Document {
	d, err := ParseString(markup, viewportWidth, viewportHeight)
	if err != nil {
		log.Panic(err)
	}

	return d
}

// Window returns the document's window.
func (d *Document) Window() *Window {
	return d.window
}

// Body returns the body element.
func (d *Document) Body() *Element {
	return d.QuerySelector("body")
}

// QuerySelectorAll returns every element matching the selector, in document
// order. An invalid selector matches nothing.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	return d.queryAll(d.root, selector)
}

// QuerySelector returns the first element matching the selector, or nil when
// there is none.
func (d *Document) QuerySelector(selector string) *Element {
	return d.query(d.root, selector)
}

// AddEventListener registers a document level listener. Pointer enter and
// leave events on the document describe the pointer crossing the viewport
// edge.
func (d *Document) AddEventListener(t EventType, l Listener) {
	d.listeners.add(t, l)
}

// Dispatch runs the document level listeners.
func (d *Document) Dispatch(evt *DOMEvent) {
	d.listeners.dispatch(evt)
}

// Render writes the current markup.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) wrap(n *html.Node) *Element {
	d.lock.Lock()
	defer d.lock.Unlock()

	if e, ok := d.elements[n]; ok {
		return e
	}

	e := newElement(d, n)
	d.elements[n] = e

	return e
}

func (d *Document) compile(selector string) cascadia.Selector {
	d.lock.Lock()
	defer d.lock.Unlock()

	if sel, ok := d.selectors[selector]; ok {
		return sel
	}

	sel, err := cascadia.Compile(selector)
	if err != nil {
		sel = func(*html.Node) bool { return false }
	}

	d.selectors[selector] = sel

	return sel
}

func (d *Document) queryAll(from *html.Node, selector string) []*Element {
	nodes := cascadia.QueryAll(from, d.compile(selector))

	elements := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, d.wrap(n))
	}

	return elements
}

func (d *Document) query(from *html.Node, selector string) *Element {
	n := cascadia.Query(from, d.compile(selector))
	if n == nil {
		return nil
	}

	return d.wrap(n)
}

var _ EventTarget = (*Document)(nil)
var _ EventTarget = (*Element)(nil)
