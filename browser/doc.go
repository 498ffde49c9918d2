// Package browser adapts the DOM and window timers to the interfaces the
// page logic is written against. Everything here needs a GopherJS build.
package browser
