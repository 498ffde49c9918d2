// Package speech reads jokes aloud through the Web Speech API.
package speech

import "strings"

// Voice settings applied to every utterance.
type Voice struct {
	Lang   string
	Rate   float64 // 0.1 to 10
	Pitch  float64 // 0 to 2
	Volume float64 // 0 to 1
}

// DefaultVoice is the browser's default voice at normal speed.
var DefaultVoice = Voice{Rate: 1, Pitch: 1, Volume: 1}

// Clean collapses whitespace so line breaks in joke text do not become
// pauses.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalized returns v with every field within the range the API accepts.
func (v Voice) Normalized() Voice {
	v.Rate = clampRange(v.Rate, 0.1, 10)
	v.Pitch = clampRange(v.Pitch, 0, 2)
	v.Volume = clampRange(v.Volume, 0, 1)
	return v
}
