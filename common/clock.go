package common

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call. It reports whether the call was still pending.
	Stop() bool
}

// Scheduler runs callbacks on the page's event thread. In the browser it is
// backed by setTimeout; tests use ManualScheduler.
type Scheduler interface {
	// AfterFunc calls f once after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer

	// Post queues f to run on the event thread as soon as possible. It is
	// the only Scheduler method that may be called from another goroutine.
	Post(f func())
}

// ManualScheduler is a deterministic Scheduler. Time stands still until
// Advance is called; due callbacks then run synchronously in deadline order
// (ties in registration order). Callbacks may schedule further callbacks.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
	posted  []func()
}

type manualTimer struct {
	s        *ManualScheduler
	deadline time.Duration
	seq      int
	f        func()
	done     bool
}

// NewManualScheduler returns a scheduler at elapsed time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, deadline: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Post implements Scheduler. Posted callbacks run on the next Advance or
// Flush, before any timer.
func (s *ManualScheduler) Post(f func()) {
	s.mu.Lock()
	s.posted = append(s.posted, f)
	s.mu.Unlock()
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// Now returns the elapsed fake time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.done {
			n++
		}
	}
	return n
}

// Flush runs posted callbacks and timers due at the current time.
func (s *ManualScheduler) Flush() {
	s.Advance(0)
}

// Advance moves time forward by d, running everything that becomes due.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if len(s.posted) > 0 {
			f := s.posted[0]
			s.posted = s.posted[1:]
			s.mu.Unlock()
			f()
			continue
		}
		next := s.nextDue(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.done = true
		if next.deadline > s.now {
			s.now = next.deadline
		}
		s.mu.Unlock()
		next.f()
	}
}

// nextDue returns the earliest live timer due at or before target and
// drops finished timers. Caller holds s.mu.
func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.done {
			live = append(live, t)
		}
	}
	s.pending = live
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	if len(s.pending) == 0 || s.pending[0].deadline > target {
		return nil
	}
	return s.pending[0]
}
