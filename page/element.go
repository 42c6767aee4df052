package page

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// An Element is one element node of the page.
//
// Classes and attributes live on the underlying html.Node, so they show up
// when the document is rendered back to markup. Inline styles, metrics and
// listeners are kept on the Element.
type Element struct {
	node *html.Node
	doc  *Document

	style     map[string]string
	listeners listenerSet

	width  float64
	height float64
	top    float64
}

func newElement(doc *Document, n *html.Node) *Element {
	e := &Element{
		node:  n,
		doc:   doc,
		style: make(map[string]string),
	}

	e.width = e.floatAttr("data-width")
	e.height = e.floatAttr("data-height")
	e.top = e.floatAttr("data-top")

	return e
}

func (e *Element) floatAttr(key string) float64 {
	v, ok := e.Attribute(key)
	if !ok {
		return 0
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}

	return f
}

// Name returns a short human readable identifier: the id if the element has
// one, otherwise the tag and its classes.
func (e *Element) Name() string {
	if id, ok := e.Attribute("id"); ok && id != "" {
		return "#" + id
	}

	name := e.node.Data
	for _, c := range e.Classes() {
		name += "." + c
	}

	return name
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Document returns the document the element belongs to.
func (e *Element) Document() *Document {
	return e.doc
}

// Classes returns the class list in order.
func (e *Element) Classes() []string {
	v, _ := e.Attribute("class")
	return strings.Fields(v)
}

// HasClass tells if the class list contains c.
func (e *Element) HasClass(c string) bool {
	for _, existing := range e.Classes() {
		if existing == c {
			return true
		}
	}

	return false
}

// AddClass adds c to the class list if it is not already present.
func (e *Element) AddClass(c string) {
	if e.HasClass(c) {
		return
	}

	e.SetAttribute("class", strings.Join(append(e.Classes(), c), " "))
}

// RemoveClass removes c from the class list.
func (e *Element) RemoveClass(c string) {
	classes := e.Classes()
	kept := classes[:0]

	for _, existing := range classes {
		if existing != c {
			kept = append(kept, existing)
		}
	}

	e.SetAttribute("class", strings.Join(kept, " "))
}

// ToggleClass flips c and reports whether it is present afterwards.
func (e *Element) ToggleClass(c string) bool {
	if e.HasClass(c) {
		e.RemoveClass(c)
		return false
	}

	e.AddClass(c)

	return true
}

// SetClass adds c when on is true and removes it otherwise.
func (e *Element) SetClass(c string, on bool) {
	if on {
		e.AddClass(c)
	} else {
		e.RemoveClass(c)
	}
}

// Attribute returns the value of an attribute.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

// SetAttribute sets an attribute, adding it if needed.
func (e *Element) SetAttribute(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}

	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(key string) {
	attrs := e.node.Attr[:0]

	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}

		attrs = append(attrs, a)
	}

	e.node.Attr = attrs
}

// Style returns an inline style property. Unset properties read as "".
func (e *Element) Style(prop string) string {
	return e.style[prop]
}

// SetStyle sets an inline style property. Setting "" clears it.
func (e *Element) SetStyle(prop, val string) {
	if val == "" {
		delete(e.style, prop)
		return
	}

	e.style[prop] = val
}

// Text returns the concatenated text content.
func (e *Element) Text() string {
	var sb strings.Builder
	collectText(e.node, &sb)

	return strings.TrimSpace(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, sb)
		}
	}
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}

	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Disabled tells if the element carries the disabled attribute.
func (e *Element) Disabled() bool {
	_, ok := e.Attribute("disabled")
	return ok
}

// SetDisabled adds or removes the disabled attribute.
func (e *Element) SetDisabled(disabled bool) {
	if disabled {
		e.SetAttribute("disabled", "")
		return
	}

	e.RemoveAttribute("disabled")
}

// Value returns the current value of a form field.
func (e *Element) Value() string {
	if e.node.Data == "textarea" {
		return e.Text()
	}

	v, _ := e.Attribute("value")

	return v
}

// SetValue sets the value of a form field.
func (e *Element) SetValue(v string) {
	if e.node.Data == "textarea" {
		e.SetText(v)
		return
	}

	e.SetAttribute("value", v)
}

// Width is the element's offset width in pixels.
func (e *Element) Width() float64 {
	return e.width
}

// SetWidth overrides the offset width, for example after a resize.
func (e *Element) SetWidth(w float64) {
	e.width = w
}

// Height is the element's offset height in pixels.
func (e *Element) Height() float64 {
	return e.height
}

// Top is the element's offset from the top of the document in pixels.
func (e *Element) Top() float64 {
	return e.top
}

// SetTop overrides the document offset.
func (e *Element) SetTop(top float64) {
	e.top = top
}

// Parent returns the closest element ancestor, or nil.
func (e *Element) Parent() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return e.doc.wrap(p)
		}
	}

	return nil
}

// QuerySelectorAll returns the descendants matching the selector, in
// document order.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	return e.doc.queryAll(e.node, selector)
}

// QuerySelector returns the first descendant matching the selector, or nil.
func (e *Element) QuerySelector(selector string) *Element {
	return e.doc.query(e.node, selector)
}

// Matches tells if the element matches the selector.
func (e *Element) Matches(selector string) bool {
	sel := e.doc.compile(selector)
	return sel.Match(e.node)
}

// AddEventListener registers a listener for events of type t.
func (e *Element) AddEventListener(t EventType, l Listener) {
	e.listeners.add(t, l)
}

// ListenerCount returns how many listeners are registered for t.
func (e *Element) ListenerCount(t EventType) int {
	return e.listeners.count(t)
}

// Dispatch runs the element's listeners for the event. Events do not bubble.
func (e *Element) Dispatch(evt *DOMEvent) {
	if evt.Target == nil {
		evt.Target = e
	}

	e.listeners.dispatch(evt)
}
