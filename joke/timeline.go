package joke

import (
	"context"
	"errors"
	"time"

	"github.com/simukka/jokes101/common"
	"github.com/simukka/jokes101/console"
)

// Reveal cadence.
const (
	// RevealDelay separates a successful fetch from the setup appearing.
	RevealDelay = 500 * time.Millisecond
	// ShareDelay separates the punchline from the share control appearing.
	ShareDelay = 800 * time.Millisecond
)

// ErrBusy is returned by Trigger while a joke is still being revealed.
var ErrBusy = errors.New("joke: reveal in progress")

// State is the position of the timeline in a joke lifecycle.
type State int

const (
	Idle State = iota
	Fetching
	SetupRevealed
	PunchlineRevealed
	Failed
)

var stateNames = [...]string{"Idle", "Fetching", "SetupRevealed", "PunchlineRevealed", "Failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[s]
}

// Speaker reads text aloud. done is called when playback ends; Cancel
// stops playback without calling done.
type Speaker interface {
	Speak(text string, done func())
	Cancel()
}

// View is the display the timeline drives.
type View interface {
	// Loading clears the previous joke, hides the share control, disables
	// the trigger and shows a loading status.
	Loading()
	// Ready places the fetched setup text, still hidden.
	Ready(j Joke)
	// RevealSetup makes the setup visible.
	RevealSetup()
	// RevealPunchline shows the punchline.
	RevealPunchline(punchline string)
	// ShowShare offers the share control.
	ShowShare()
	// Fail replaces the joke with an error message.
	Fail(err error)
	// EnableTrigger re-enables the trigger. retry selects the retry label.
	EnableTrigger(retry bool)
}

// Timeline reveals one joke at a time: fetch, setup, optional speech, delay,
// punchline, optional speech. All methods must be called from the event
// thread that runs the scheduler's callbacks.
type Timeline struct {
	session *Session
	source  Source
	speaker Speaker
	sched   common.Scheduler
	view    View

	state    State
	joke     Joke
	inFlight bool
	speaking bool
	shared   bool
	gen      int
	timers   []common.Timer
	cancel   context.CancelFunc
}

// NewTimeline wires a timeline. speaker may be nil, in which case speech is
// skipped even when the session enables it.
func NewTimeline(session *Session, source Source, speaker Speaker, sched common.Scheduler, view View) *Timeline {
	return &Timeline{
		session: session,
		source:  source,
		speaker: speaker,
		sched:   sched,
		view:    view,
	}
}

// Session returns the playback settings the timeline reads.
func (t *Timeline) Session() *Session {
	return t.session
}

// State returns the current state.
func (t *Timeline) State() State {
	return t.state
}

// Joke returns the joke currently shown, if any.
func (t *Timeline) Joke() Joke {
	return t.joke
}

// ShareReady reports whether the share control is on offer for the current
// joke.
func (t *Timeline) ShareReady() bool {
	return t.shared
}

// Busy reports whether a lifecycle holds the trigger.
func (t *Timeline) Busy() bool {
	return t.inFlight
}

// Trigger starts a new joke lifecycle. It returns ErrBusy if one is already
// in flight.
func (t *Timeline) Trigger(ctx context.Context) error {
	if t.inFlight {
		return ErrBusy
	}
	t.reset()
	gen := t.gen
	t.inFlight = true
	t.state = Fetching
	t.joke = Joke{}
	t.view.Loading()

	fctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.source.Fetch(fctx, func(j Joke, err error) {
		t.sched.Post(func() { t.fetched(gen, j, err) })
	})
	return nil
}

// Cancel abandons the current lifecycle: pending timers and the fetch are
// dropped, speech is stopped and the trigger is handed back.
func (t *Timeline) Cancel() {
	wasInFlight := t.inFlight
	t.reset()
	if wasInFlight {
		t.inFlight = false
		t.state = Idle
		t.view.EnableTrigger(false)
	}
}

// reset invalidates every outstanding callback of the previous lifecycle.
func (t *Timeline) reset() {
	t.gen++
	t.shared = false
	for _, timer := range t.timers {
		timer.Stop()
	}
	t.timers = t.timers[:0]
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.speaking {
		t.speaking = false
		if t.speaker != nil {
			t.speaker.Cancel()
		}
	}
}

func (t *Timeline) fetched(gen int, j Joke, err error) {
	if gen != t.gen {
		return
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if err != nil {
		console.Warn("joke fetch failed:", err.Error())
		t.state = Failed
		t.view.Fail(err)
		t.finish(true)
		return
	}

	t.state = SetupRevealed
	t.joke = j
	t.view.Ready(j)
	t.after(gen, RevealDelay, t.revealSetup)
}

func (t *Timeline) revealSetup() {
	gen := t.gen
	t.view.RevealSetup()
	next := func() {
		t.after(gen, t.session.Delay(), t.revealPunchline)
	}
	if t.session.Speech() {
		t.speak(gen, t.joke.Setup, next)
		return
	}
	next()
}

func (t *Timeline) revealPunchline() {
	gen := t.gen
	t.state = PunchlineRevealed
	t.view.RevealPunchline(t.joke.Punchline)
	t.after(gen, ShareDelay, t.offerShare)

	if t.session.Speech() {
		t.speak(gen, t.joke.Punchline, func() { t.finish(false) })
		return
	}
	t.finish(false)
}

func (t *Timeline) offerShare() {
	t.shared = true
	t.view.ShowShare()
}

func (t *Timeline) finish(retry bool) {
	t.inFlight = false
	t.view.EnableTrigger(retry)
}

// after schedules f for lifecycle gen.
func (t *Timeline) after(gen int, d time.Duration, f func()) {
	timer := t.sched.AfterFunc(d, func() {
		if gen != t.gen {
			return
		}
		f()
	})
	t.timers = append(t.timers, timer)
}

// speak reads text and continues with next once, when playback ends.
func (t *Timeline) speak(gen int, text string, next func()) {
	if t.speaker == nil {
		next()
		return
	}
	t.speaking = true
	called := false
	t.speaker.Speak(text, func() {
		t.sched.Post(func() {
			if called || gen != t.gen {
				return
			}
			called = true
			t.speaking = false
			next()
		})
	})
}
