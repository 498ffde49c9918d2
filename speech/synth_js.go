//go:build js
// +build js

package speech

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/jokes101/console"
)

// Synth speaks through window.speechSynthesis.
type Synth struct {
	synth   *js.Object
	ctor    *js.Object
	voice   Voice
	current *js.Object
}

// NewSynth returns a speaker, or nil when the browser has no speech
// synthesis.
func NewSynth(v Voice) *Synth {
	synth := js.Global.Get("speechSynthesis")
	ctor := js.Global.Get("SpeechSynthesisUtterance")
	if synth == nil || synth == js.Undefined || ctor == nil || ctor == js.Undefined {
		console.Warn("speech synthesis unavailable")
		return nil
	}
	return &Synth{synth: synth, ctor: ctor, voice: v.Normalized()}
}

// Speak reads text and calls done when playback ends or fails. A cancelled
// utterance never calls done.
func (s *Synth) Speak(text string, done func()) {
	u := s.ctor.New(Clean(text))
	if s.voice.Lang != "" {
		u.Set("lang", s.voice.Lang)
	}
	u.Set("rate", s.voice.Rate)
	u.Set("pitch", s.voice.Pitch)
	u.Set("volume", s.voice.Volume)

	finish := func() {
		if s.current != u {
			return
		}
		s.current = nil
		done()
	}
	u.Set("onend", finish)
	u.Set("onerror", func(ev *js.Object) {
		if s.current == u {
			console.Warn("speech error:", ev.Get("error").String())
		}
		finish()
	})
	s.current = u
	s.synth.Call("speak", u)
}

// Cancel stops playback and drops the pending completion.
func (s *Synth) Cancel() {
	s.current = nil
	s.synth.Call("cancel")
}
