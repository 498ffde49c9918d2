//go:build js
// +build js

package browser

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
)

// Doc returns the current document.
func Doc() *js.Object {
	return js.Global.Get("document")
}

// Missing reports whether o is null or undefined.
func Missing(o *js.Object) bool {
	return o == nil || o == js.Undefined
}

// ByID returns the element with the given id, or nil.
func ByID(id string) *js.Object {
	el := Doc().Call("getElementById", id)
	if Missing(el) {
		return nil
	}
	return el
}

// All returns the elements matching a selector.
func All(selector string) []*js.Object {
	list := Doc().Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]*js.Object, n)
	for i := 0; i < n; i++ {
		out[i] = list.Index(i)
	}
	return out
}

// Find returns the first descendant of el matching selector, or nil.
func Find(el *js.Object, selector string) *js.Object {
	if el == nil {
		return nil
	}
	found := el.Call("querySelector", selector)
	if Missing(found) {
		return nil
	}
	return found
}

// On adds an event listener.
func On(target *js.Object, event string, fn func(ev *js.Object)) {
	if target == nil {
		return
	}
	target.Call("addEventListener", event, fn)
}

// Classes returns the class list of el in order.
func Classes(el *js.Object) []string {
	return strings.Fields(el.Get("className").String())
}

// SetClasses replaces the class list of el.
func SetClasses(el *js.Object, classes []string) {
	el.Set("className", strings.Join(classes, " "))
}

// Toggle flips class on el and reports whether it is now present.
func Toggle(el *js.Object, class string) bool {
	return el.Get("classList").Call("toggle", class).Bool()
}

// SetText sets the text content of el if it exists.
func SetText(el *js.Object, text string) {
	if el != nil {
		el.Set("textContent", text)
	}
}

// Viewport returns the window's inner size.
func Viewport() (w, h float64) {
	return js.Global.Get("innerWidth").Float(), js.Global.Get("innerHeight").Float()
}

// Vibrate buzzes the device when supported.
func Vibrate(ms int) {
	nav := js.Global.Get("navigator")
	if Missing(nav.Get("vibrate")) {
		return
	}
	nav.Call("vibrate", ms)
}
