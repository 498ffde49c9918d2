//go:build js
// +build js

package page

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/jokes101/browser"
	"github.com/simukka/jokes101/common"
	"github.com/simukka/jokes101/effects"
	"github.com/simukka/jokes101/joke"
)

// view renders the timeline and the share control into the document.
type view struct {
	stage *effects.Stage
	rng   common.Rand

	setup          *js.Object
	punchline      *js.Object
	status         *js.Object
	trigger        *js.Object
	shareContainer *js.Object
	shareButton    *js.Object
}

func newView(stage *effects.Stage, rng common.Rand) *view {
	return &view{
		stage:          stage,
		rng:            rng,
		setup:          browser.ByID("joke"),
		punchline:      browser.ByID("punchline"),
		status:         browser.ByID("jokeStatus"),
		trigger:        browser.ByID("jokebutton"),
		shareContainer: browser.ByID("shareContainer"),
		shareButton:    browser.ByID("shareButton"),
	}
}

// span replaces the content of el with a single span holding text. Joke
// text is never parsed as markup.
func span(el *js.Object, class, text string) {
	if el == nil {
		return
	}
	s := browser.Doc().Call("createElement", "span")
	s.Set("className", class)
	s.Set("textContent", text)
	el.Set("textContent", "")
	el.Call("appendChild", s)
}

func (v *view) setStatus(dot, text string) {
	if v.status == nil {
		return
	}
	d := browser.Doc().Call("createElement", "span")
	d.Set("className", "status-dot "+dot)
	t := browser.Doc().Call("createElement", "span")
	t.Set("className", "status-text")
	t.Set("textContent", text)
	v.status.Set("textContent", "")
	v.status.Call("appendChild", d)
	v.status.Call("appendChild", t)
}

func (v *view) setButton(btn *js.Object, disabled bool, text, icon string) {
	if btn == nil {
		return
	}
	btn.Set("disabled", disabled)
	browser.SetText(browser.Find(btn, ".button-text"), text)
	if i := browser.Find(btn, ".button-icon"); i != nil && icon != "" {
		i.Set("className", icon)
	}
}

func visible(el *js.Object, on bool) {
	if el == nil {
		return
	}
	if on {
		el.Get("classList").Call("add", "visible")
	} else {
		el.Get("classList").Call("remove", "visible")
	}
}

func (v *view) setShareVisible(on bool) {
	if v.shareContainer == nil {
		return
	}
	display := "none"
	if on {
		display = "flex"
	}
	v.shareContainer.Get("style").Set("display", display)
}

// Loading implements joke.View.
func (v *view) Loading() {
	visible(v.setup, false)
	visible(v.punchline, false)
	browser.SetText(v.punchline, "")
	v.setShareVisible(false)
	v.setButton(v.trigger, true, LabelLoading, IconLoading)
	v.setStatus("loading", StatusFetching)
}

// Ready implements joke.View.
func (v *view) Ready(j joke.Joke) {
	span(v.setup, "joke-setup", j.Setup)
	v.setStatus("", StatusReady)
}

// RevealSetup implements joke.View.
func (v *view) RevealSetup() {
	visible(v.setup, true)
	v.stage.Play(effects.Sparkles(v.rng, "joke"))
}

// RevealPunchline implements joke.View.
func (v *view) RevealPunchline(p string) {
	span(v.punchline, "punchline-content", p)
	visible(v.punchline, true)
	v.stage.Play(effects.Celebrate(v.rng))
}

// ShowShare implements joke.View.
func (v *view) ShowShare() {
	v.setShareVisible(true)
}

// Fail implements joke.View.
func (v *view) Fail(err error) {
	span(v.setup, "error-text", FailureText)
	visible(v.setup, true)
	v.setStatus("error", StatusFailed)
}

// EnableTrigger implements joke.View.
func (v *view) EnableTrigger(retry bool) {
	text, icon := TriggerLabel(retry)
	v.setButton(v.trigger, false, text, icon)
}

// SetBusy implements card.Control.
func (v *view) SetBusy(busy bool) {
	if busy {
		v.setButton(v.shareButton, true, LabelSharing, "")
		return
	}
	v.setButton(v.shareButton, false, LabelShare, "")
}

// Copied implements card.Control.
func (v *view) Copied() {
	v.stage.Play(effects.Notify(""))
}
