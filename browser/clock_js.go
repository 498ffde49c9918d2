//go:build js
// +build js

package browser

import (
	"time"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/jokes101/common"
)

// Scheduler runs callbacks from window.setTimeout.
type Scheduler struct{}

type timeout struct {
	id    *js.Object
	fired bool
}

// AfterFunc implements common.Scheduler.
func (Scheduler) AfterFunc(d time.Duration, f func()) common.Timer {
	t := &timeout{}
	t.id = js.Global.Call("setTimeout", func() {
		t.fired = true
		f()
	}, float64(d.Milliseconds()))
	return t
}

// Post implements common.Scheduler with a zero delay timeout, so f runs on
// the event loop after the current task.
func (Scheduler) Post(f func()) {
	js.Global.Call("setTimeout", f, 0)
}

func (t *timeout) Stop() bool {
	if t.fired {
		return false
	}
	t.fired = true
	js.Global.Call("clearTimeout", t.id)
	return true
}

// Frames schedules callbacks with window.requestAnimationFrame.
type Frames struct{}

// Request implements common.Frames.
func (Frames) Request(cb func(ts float64)) int {
	return js.Global.Call("requestAnimationFrame", cb).Int()
}

// Cancel implements common.Frames.
func (Frames) Cancel(id int) {
	js.Global.Call("cancelAnimationFrame", id)
}
