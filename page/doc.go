// Package page models the parts of a browser page that the interaction
// components touch: elements with classes, attributes, inline styles and text,
// a document that can be queried with CSS selectors, a window with a viewport
// size and scroll position, and listeners for DOM events.
//
// Markup is parsed with golang.org/x/net/html and queried with cascadia.
// Layout is not computed. Elements carry the few metrics the components read
// (offset width, offset top, height) as data-width, data-top and data-height
// attributes.
//
// Listeners run synchronously when an event is dispatched. Inputs from the
// outside world go through a Dispatcher, which turns them into engine events so
// that every handler runs to completion before the next input or timer.
package page
