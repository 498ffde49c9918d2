package joke

import "time"

// Delay slider bounds.
const (
	// SilentDelay is the punchline delay applied when speech is switched off.
	SilentDelay = 2500 * time.Millisecond
	// SpokenDelay is the punchline delay applied when speech is switched on.
	SpokenDelay = 0
	// MaxDelay is the top of the delay slider.
	MaxDelay = 5000 * time.Millisecond
	// DelayStep is the slider granularity.
	DelayStep = 250 * time.Millisecond
)

// Session holds the playback settings of one page session.
type Session struct {
	speech bool
	delay  time.Duration
}

// NewSession returns the initial settings: speech on, no delay.
func NewSession() *Session {
	return &Session{speech: true, delay: SpokenDelay}
}

// Speech reports whether jokes are spoken aloud.
func (s *Session) Speech() bool {
	return s.speech
}

// Delay returns the pause between setup and punchline.
func (s *Session) Delay() time.Duration {
	return s.delay
}

// SetSpeech switches speech and resets the delay to the matching default.
func (s *Session) SetSpeech(on bool) {
	s.speech = on
	if on {
		s.delay = SpokenDelay
	} else {
		s.delay = SilentDelay
	}
}

// ToggleSpeech flips speech and returns the new state.
func (s *Session) ToggleSpeech() bool {
	s.SetSpeech(!s.speech)
	return s.speech
}

// SetDelay sets the punchline delay, clamped to [0, MaxDelay] and rounded
// to the nearest DelayStep.
func (s *Session) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	if d > MaxDelay {
		d = MaxDelay
	}
	s.delay = d.Round(DelayStep)
}
