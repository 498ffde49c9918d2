//go:build js
// +build js

package page

import (
	"context"
	"errors"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/jokes101/browser"
	"github.com/simukka/jokes101/card"
	"github.com/simukka/jokes101/common"
	"github.com/simukka/jokes101/console"
	"github.com/simukka/jokes101/effects"
	"github.com/simukka/jokes101/field"
	"github.com/simukka/jokes101/joke"
	"github.com/simukka/jokes101/speech"
	"github.com/simukka/jokes101/theme"
)

// ErrNoCanvas is returned when the backdrop canvas is missing or has no 2D
// context.
var ErrNoCanvas = errors.New("page: particle canvas unavailable")

// Page owns every subsystem of the document.
type Page struct {
	sched    common.Scheduler
	rng      *common.SeededRNG
	themes   *theme.Set
	field    *field.Field
	painter  *field.CanvasPainter
	loop     *field.Loop
	timeline *joke.Timeline
	sharer   *card.Sharer
	stage    *effects.Stage
	view     *view

	ctx    context.Context
	cancel context.CancelFunc

	canvas *js.Object
}

// New builds the page from the current document.
func New() (*Page, error) {
	canvas := browser.ByID("particle-canvas")
	painter := field.NewCanvasPainter(canvas)
	if painter == nil {
		return nil, ErrNoCanvas
	}

	p := &Page{
		sched:   browser.Scheduler{},
		rng:     common.NewSeededRNG(common.TimeSeed()),
		themes:  theme.Builtin(),
		painter: painter,
		canvas:  canvas,
	}
	p.ctx, p.cancel = context.WithCancel(context.Background())

	w, h := browser.Viewport()
	canvas.Set("width", w)
	canvas.Set("height", h)
	p.field = field.New(w, h, p.rng)
	p.loop = field.NewLoop(browser.Frames{}, p.field, painter)

	p.stage = effects.NewStage(p.sched, effects.NewDOM())
	p.view = newView(p.stage, p.rng)

	var speaker joke.Speaker
	if s := speech.NewSynth(speech.DefaultVoice); s != nil {
		speaker = s
	}
	p.timeline = joke.NewTimeline(joke.NewSession(), joke.NewClient(), speaker, p.sched, p.view)
	p.sharer = &card.Sharer{
		Clipboard:  browser.Clipboard{},
		Downloader: browser.Downloader{},
		Control:    p.view,
	}
	return p, nil
}

// Start shows the page: loading screen, controls and the backdrop.
func (p *Page) Start() {
	if el := browser.ByID("loading-screen"); el != nil {
		effects.Splash(p.sched,
			func() { el.Get("classList").Call("add", "hidden") },
			func() { el.Get("style").Set("display", "none") },
		)
	}
	p.syncSpeech()
	p.buildThemes()
	p.bindControls()
	p.bindKeys()
	p.bindWindow()
	p.selectTheme(theme.Default, false)
	p.loop.Start()
	console.Debug("jokes101 started with", len(p.field.Particles()), "particles")
}

// Stop tears the page down: the loop stops, the timeline is cancelled and
// live effects are removed.
func (p *Page) Stop() {
	p.loop.Stop()
	p.timeline.Cancel()
	p.cancel()
	p.stage.Clear()
}

// NextJoke starts a joke unless one is being revealed.
func (p *Page) NextJoke() {
	if err := p.timeline.Trigger(p.ctx); err != nil {
		console.Debug("joke trigger ignored:", err.Error())
	}
}

// Share renders and delivers the current joke card. It does nothing until
// the share control is shown, or while a share is running.
func (p *Page) Share() {
	if p.timeline.State() != joke.PunchlineRevealed || !p.timeline.ShareReady() || p.sharer.Sharing() {
		return
	}
	t := p.themes.Current(browser.Classes(browser.Doc().Get("body")))
	j := p.timeline.Joke()
	// Clipboard writes wait on a promise, which must not happen on the
	// event handler itself.
	go func() {
		outcome, err := p.sharer.Share(t, j.Setup, j.Punchline)
		switch {
		case errors.Is(err, card.ErrBusy):
			console.Debug("share ignored:", err.Error())
		case err != nil:
			console.Warn("share failed:", err.Error())
		case outcome == card.Downloaded:
			console.Debug("share card downloaded as", card.Filename)
		}
	}()
}

// ToggleSpeech flips speech and resets the delay to match.
func (p *Page) ToggleSpeech() {
	p.timeline.Session().ToggleSpeech()
	p.syncSpeech()
	browser.Vibrate(VibrateMillis)
	if toggle := browser.ByID("ttsToggle"); toggle != nil {
		style := toggle.Get("style")
		style.Set("transform", "scale(0.95)")
		p.sched.AfterFunc(PressFeedback, func() { style.Set("transform", "scale(1)") })
	}
}

// syncSpeech mirrors the session into the toggle, status and slider.
func (p *Page) syncSpeech() {
	s := p.timeline.Session()
	if toggle := browser.ByID("ttsToggle"); toggle != nil {
		toggle.Get("classList").Call("toggle", "checked", s.Speech())
	}
	if status := browser.ByID("statusText"); status != nil {
		status.Set("textContent", SpeechLabel(s.Speech()))
		status.Set("className", SpeechClass(s.Speech()))
	}
	if slider := browser.ByID("delaySlider"); slider != nil {
		slider.Set("value", float64(s.Delay().Milliseconds()))
	}
	browser.SetText(browser.ByID("delayValue"), DelayLabel(s.Delay()))
}

func (p *Page) setDelay(value string) {
	d, err := ParseDelay(value)
	if err != nil {
		console.Warn("bad delay value:", value)
		return
	}
	s := p.timeline.Session()
	s.SetDelay(d)
	browser.SetText(browser.ByID("delayValue"), DelayLabel(s.Delay()))
}

// buildThemes installs the palette rules and one swatch per palette.
func (p *Page) buildThemes() {
	doc := browser.Doc()
	style := doc.Call("createElement", "style")
	style.Set("textContent", p.themes.CSS())
	doc.Get("head").Call("appendChild", style)

	box := browser.ByID("themeOptions")
	if box == nil {
		return
	}
	for _, t := range p.themes.All() {
		opt := doc.Call("createElement", "div")
		opt.Set("className", "theme-option")
		opt.Set("title", t.Label)
		opt.Get("dataset").Set("theme", t.Name)
		opt.Get("style").Set("background", t.Gradient())
		box.Call("appendChild", opt)
	}
}

// selectTheme applies a palette to the body and marks its option active.
func (p *Page) selectTheme(name string, ripple bool) {
	body := browser.Doc().Get("body")
	browser.SetClasses(body, p.themes.ApplyClass(browser.Classes(body), name))
	for _, opt := range browser.All(".theme-option") {
		active := opt.Get("dataset").Get("theme").String() == name
		opt.Get("classList").Call("toggle", "active", active)
	}
	if ripple {
		p.stage.Play(effects.Wave())
	}
}

// ToggleFullscreen enters or leaves fullscreen. Refusals are logged.
func (p *Page) ToggleFullscreen() {
	doc := browser.Doc()
	if !browser.Missing(doc.Get("fullscreenElement")) {
		doc.Call("exitFullscreen")
		return
	}
	root := doc.Get("documentElement")
	if browser.Missing(root.Get("requestFullscreen")) {
		console.Warn("fullscreen unsupported")
		return
	}
	if promise := root.Call("requestFullscreen"); !browser.Missing(promise) {
		promise.Call("catch", func(err *js.Object) {
			console.Warn("Error attempting to enable fullscreen:", err.Get("message").String())
		})
	}
}

// ToggleSettings opens or closes the settings pane.
func (p *Page) ToggleSettings() {
	if pane := browser.ByID("settingsPane"); pane != nil {
		browser.Toggle(pane, "active")
	}
}

// ToggleCredits opens or closes the credits pane, raining confetti on open.
func (p *Page) ToggleCredits() {
	pane := browser.ByID("creditsPane")
	if pane == nil {
		return
	}
	style := pane.Get("style")
	if d := style.Get("display").String(); d == "none" || d == "" {
		style.Set("display", "block")
		style.Set("opacity", "1")
		p.stage.Play(effects.Rain(p.rng))
		return
	}
	style.Set("display", "none")
}

// ClosePanes hides the settings and credits panes.
func (p *Page) ClosePanes() {
	if pane := browser.ByID("settingsPane"); pane != nil {
		pane.Get("classList").Call("remove", "active")
	}
	if pane := browser.ByID("creditsPane"); pane != nil {
		pane.Get("style").Set("display", "none")
	}
}

// resize adopts the viewport size. The field regenerates its particles.
func (p *Page) resize() {
	w, h := browser.Viewport()
	p.canvas.Set("width", w)
	p.canvas.Set("height", h)
	p.field.Resize(w, h)
}
