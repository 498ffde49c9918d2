package effects

import (
	"time"

	"github.com/simukka/jokes101/common"
)

// Loading screen timing.
const (
	SplashHold = 2500 * time.Millisecond
	SplashFade = 800 * time.Millisecond
)

// Splash hides the loading screen after SplashHold and removes it once the
// fade has run.
func Splash(sched common.Scheduler, hide, remove func()) {
	sched.AfterFunc(SplashHold, func() {
		hide()
		sched.AfterFunc(SplashFade, remove)
	})
}
