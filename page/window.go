package page

// Window holds the viewport size and the scroll position.
type Window struct {
	doc *Document

	innerWidth  float64
	innerHeight float64
	scrollY     float64

	listeners listenerSet
}

func newWindow(doc *Document, width, height float64) *Window {
	return &Window{
		doc:         doc,
		innerWidth:  width,
		innerHeight: height,
	}
}

// InnerWidth is the viewport width in pixels.
func (w *Window) InnerWidth() float64 {
	return w.innerWidth
}

// InnerHeight is the viewport height in pixels.
func (w *Window) InnerHeight() float64 {
	return w.innerHeight
}

// ScrollY is the vertical scroll offset in pixels.
func (w *Window) ScrollY() float64 {
	return w.scrollY
}

// Resize changes the viewport and notifies resize listeners.
func (w *Window) Resize(width, height float64) {
	w.innerWidth = width
	w.innerHeight = height

	w.listeners.dispatch(&DOMEvent{Type: Resize})
}

// ScrollTo moves the scroll offset and notifies scroll listeners. Scrolling
// to the current position does nothing.
func (w *Window) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}

	if y == w.scrollY {
		return
	}

	w.scrollY = y
	w.listeners.dispatch(&DOMEvent{Type: Scroll})
}

// AddEventListener registers a window listener for scroll or resize.
func (w *Window) AddEventListener(t EventType, l Listener) {
	w.listeners.add(t, l)
}

// Dispatch runs the window listeners.
func (w *Window) Dispatch(evt *DOMEvent) {
	w.listeners.dispatch(evt)
}

var _ EventTarget = (*Window)(nil)
