package page

import (
	"strconv"
	"time"
)

// Page copy.
const (
	StatusFetching = "Fetching comedy gold..."
	StatusReady    = "Ready to laugh!"
	StatusFailed   = "Connection failed"
	FailureText    = "Oops! Our comedy servers are taking a break. Try again!"

	LabelLoading  = "Loading..."
	LabelRetry    = "Try Again"
	LabelGenerate = "Generate Joke"
	LabelSharing  = "Creating Image..."
	LabelShare    = "Share Joke"
)

// Button icons.
const (
	IconLoading  = "fas fa-spinner button-icon"
	IconRetry    = "fas fa-redo button-icon"
	IconGenerate = "fas fa-magic button-icon"
)

// Feedback timing.
const (
	PressFeedback = 150 * time.Millisecond
	VibrateMillis = 50
)

// DelayLabel formats a punchline delay in seconds, e.g. "2.5s".
func DelayLabel(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Milliseconds())/1000, 'f', -1, 64) + "s"
}

// SpeechLabel is the status text of the speech toggle.
func SpeechLabel(on bool) string {
	if on {
		return "TTS: Enabled"
	}
	return "TTS: Disabled"
}

// SpeechClass is the class of the speech status text.
func SpeechClass(on bool) string {
	if on {
		return "status-text status-enabled"
	}
	return "status-text status-disabled"
}

// TriggerLabel returns the trigger's text and icon once it is re-enabled.
func TriggerLabel(retry bool) (text, icon string) {
	if retry {
		return LabelRetry, IconRetry
	}
	return LabelGenerate, IconGenerate
}

// ParseDelay reads the slider value in milliseconds.
func ParseDelay(value string) (time.Duration, error) {
	ms, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}
