//go:build js
// +build js

package page

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/jokes101/browser"
)

func click(id string, fn func()) {
	browser.On(browser.ByID(id), "click", func(*js.Object) { fn() })
}

// bindControls attaches the document's buttons and inputs.
func (p *Page) bindControls() {
	click("jokebutton", p.NextJoke)
	click("shareButton", p.Share)
	click("ttsToggle", p.ToggleSpeech)
	click("fullscreenToggle", p.ToggleFullscreen)
	click("settingsToggle", p.ToggleSettings)
	click("creditsToggle", p.ToggleCredits)

	if slider := browser.ByID("delaySlider"); slider != nil {
		browser.On(slider, "input", func(*js.Object) {
			p.setDelay(slider.Get("value").String())
		})
	}
	for _, opt := range browser.All(".theme-option") {
		opt := opt
		browser.On(opt, "click", func(*js.Object) {
			p.selectTheme(opt.Get("dataset").Get("theme").String(), true)
		})
	}
}

// inControl reports whether ev targets a form control.
func inControl(ev *js.Object) bool {
	target := ev.Get("target")
	if browser.Missing(target) || browser.Missing(target.Get("tagName")) {
		return false
	}
	switch target.Get("tagName").String() {
	case "INPUT", "SELECT", "TEXTAREA":
		return true
	}
	return false
}

// bindKeys installs the keyboard shortcuts.
func (p *Page) bindKeys() {
	browser.On(browser.Doc(), "keydown", func(ev *js.Object) {
		if ev.Get("repeat").Bool() || ev.Get("ctrlKey").Bool() || ev.Get("metaKey").Bool() || ev.Get("altKey").Bool() {
			return
		}
		action := TranslateKeyCode(ev.Get("keyCode").Int())
		if !Accepts(action, inControl(ev)) {
			return
		}
		switch action {
		case NextJoke:
			p.NextJoke()
		case ShareJoke:
			p.Share()
		case ToggleSpeech:
			p.ToggleSpeech()
		case Fullscreen:
			p.ToggleFullscreen()
		case ClosePanes:
			p.ClosePanes()
		case ToggleStats:
			p.painter.Stats.Toggle()
			p.loop.LogFPS = p.painter.Stats.Visible
		}
		ev.Call("preventDefault")
	})
}

// bindWindow feeds the pointer and viewport to the field and tears the
// page down when it goes away.
func (p *Page) bindWindow() {
	win := js.Global
	browser.On(win, "mousemove", func(ev *js.Object) {
		p.field.SetPointer(ev.Get("clientX").Float(), ev.Get("clientY").Float())
	})
	browser.On(win, "mouseout", func(ev *js.Object) {
		if browser.Missing(ev.Get("relatedTarget")) {
			p.field.ClearPointer()
		}
	})
	browser.On(win, "resize", func(*js.Object) { p.resize() })
	browser.On(win, "pagehide", func(*js.Object) { p.Stop() })
}
