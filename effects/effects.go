// Package effects lays out the page's one-shot decorations and retires them
// once their animation has run.
package effects

import (
	"time"

	"github.com/simukka/jokes101/common"
)

// Kind names a decoration.
type Kind int

const (
	Sparkle Kind = iota
	Celebration
	Confetti
	Ripple
	Notice
)

var kindNames = [...]string{"sparkle", "celebration", "confetti", "ripple", "notice"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "effect"
	}
	return kindNames[k]
}

// Lifetimes.
const (
	SparkleLife     = 2 * time.Second
	CelebrationLife = 3 * time.Second
	ConfettiLife    = 2 * time.Second
	RippleLife      = time.Second
	NoticeLife      = 3 * time.Second
)

// Counts and spread.
const (
	SparkleCount     = 12
	CelebrationCount = 20
	ConfettiCount    = 100
	CelebrationReach = 400.0 // Full width of the burst in pixels
	CelebrationDelay = 0.5   // Max start delay in seconds
)

var (
	SparkleColor      = "#ffd700"
	CelebrationColors = []string{"#ffd700", "#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57"}
	ConfettiColors    = []string{"#ff0", "#0ff", "#f0f", "#ff5733", "#33ff57", "#3357ff"}
)

// Dot is one element of a burst. X and Y are percentages of the host for
// sparkles and of the viewport for confetti. Celebration dots start at the
// centre and travel by (DX, DY) pixels.
type Dot struct {
	X, Y   float64
	DX, DY float64
	Color  string
	Delay  time.Duration
}

// Burst is a decoration ready to be shown.
type Burst struct {
	Kind     Kind
	Dots     []Dot
	Lifetime time.Duration
	// Host is the element id the burst is attached to, or "" for the page.
	Host string
	// Exclusive bursts replace any live burst of the same kind.
	Exclusive bool
	// Text is shown by notices.
	Text string
}

// Sparkles scatters gold dots over the host element.
func Sparkles(r common.Rand, host string) Burst {
	dots := make([]Dot, SparkleCount)
	for i := range dots {
		dots[i] = Dot{X: r.Float64() * 100, Y: r.Float64() * 100, Color: SparkleColor}
	}
	return Burst{Kind: Sparkle, Dots: dots, Lifetime: SparkleLife, Host: host}
}

// Celebrate throws colored dots out from the middle of the screen.
func Celebrate(r common.Rand) Burst {
	dots := make([]Dot, CelebrationCount)
	for i := range dots {
		dots[i] = Dot{
			X:     50,
			Y:     50,
			Color: CelebrationColors[common.Intn(r, len(CelebrationColors))],
			DX:    (r.Float64() - 0.5) * CelebrationReach,
			DY:    (r.Float64() - 0.5) * CelebrationReach,
			Delay: time.Duration(r.Float64() * CelebrationDelay * float64(time.Second)),
		}
	}
	return Burst{Kind: Celebration, Dots: dots, Lifetime: CelebrationLife}
}

// Rain drops confetti over the whole viewport.
func Rain(r common.Rand) Burst {
	dots := make([]Dot, ConfettiCount)
	for i := range dots {
		dots[i] = Dot{
			X:     r.Float64() * 100,
			Y:     r.Float64() * 100,
			Color: ConfettiColors[common.Intn(r, len(ConfettiColors))],
		}
	}
	return Burst{Kind: Confetti, Dots: dots, Lifetime: ConfettiLife}
}

// Wave is the expanding circle played on theme changes.
func Wave() Burst {
	return Burst{Kind: Ripple, Lifetime: RippleLife, Exclusive: true}
}

// Notify is a transient message.
func Notify(text string) Burst {
	return Burst{Kind: Notice, Lifetime: NoticeLife, Exclusive: true, Text: text}
}
