package effects

import (
	"github.com/simukka/jokes101/common"
)

// Handle is a burst on screen.
type Handle interface {
	Remove()
}

// Surface puts bursts on screen.
type Surface interface {
	Spawn(b Burst) Handle
}

type live struct {
	kind   Kind
	handle Handle
	timer  common.Timer
}

// Stage plays bursts and removes each one when its lifetime ends.
type Stage struct {
	sched   common.Scheduler
	surface Surface
	nextID  int
	live    map[int]*live
}

// NewStage creates a stage drawing on surface.
func NewStage(sched common.Scheduler, surface Surface) *Stage {
	return &Stage{sched: sched, surface: surface, live: make(map[int]*live)}
}

// Play shows b and schedules its removal.
func (s *Stage) Play(b Burst) {
	if b.Exclusive {
		s.removeKind(b.Kind)
	}
	h := s.surface.Spawn(b)
	if h == nil {
		return
	}
	id := s.nextID
	s.nextID++
	l := &live{kind: b.Kind, handle: h}
	s.live[id] = l
	l.timer = s.sched.AfterFunc(b.Lifetime, func() { s.remove(id) })
}

// Active returns the number of bursts on screen.
func (s *Stage) Active() int {
	return len(s.live)
}

// ActiveKind returns the number of live bursts of kind k.
func (s *Stage) ActiveKind(k Kind) int {
	n := 0
	for _, l := range s.live {
		if l.kind == k {
			n++
		}
	}
	return n
}

// Clear removes every burst now.
func (s *Stage) Clear() {
	for id := range s.live {
		s.remove(id)
	}
}

func (s *Stage) removeKind(k Kind) {
	for id, l := range s.live {
		if l.kind == k {
			s.remove(id)
		}
	}
}

func (s *Stage) remove(id int) {
	l, ok := s.live[id]
	if !ok {
		return
	}
	delete(s.live, id)
	if l.timer != nil {
		l.timer.Stop()
	}
	l.handle.Remove()
}
