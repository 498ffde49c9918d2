package effects

import (
	"testing"
	"time"

	"github.com/simukka/jokes101/common"
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestSparkles(t *testing.T) {
	b := Sparkles(common.NewSeededRNG(1), "joke")
	if len(b.Dots) != SparkleCount || b.Lifetime != 2*time.Second || b.Host != "joke" {
		t.Fatalf("unexpected sparkle burst %+v", b)
	}
	for i, d := range b.Dots {
		if d.X < 0 || d.X >= 100 || d.Y < 0 || d.Y >= 100 || d.Color != SparkleColor {
			t.Errorf("dot %d out of range: %+v", i, d)
		}
	}
}

func TestCelebrate(t *testing.T) {
	b := Celebrate(common.NewSeededRNG(2))
	if len(b.Dots) != 20 || b.Lifetime != 3*time.Second {
		t.Fatalf("unexpected celebration %d dots, %v", len(b.Dots), b.Lifetime)
	}
	for i, d := range b.Dots {
		if d.DX < -200 || d.DX >= 200 || d.DY < -200 || d.DY >= 200 {
			t.Errorf("dot %d travels (%f,%f), outside ±200px", i, d.DX, d.DY)
		}
		if d.Delay < 0 || d.Delay >= 500*time.Millisecond {
			t.Errorf("dot %d delay %v", i, d.Delay)
		}
		if !contains(CelebrationColors, d.Color) {
			t.Errorf("dot %d color %s not in palette", i, d.Color)
		}
	}
}

func TestRain(t *testing.T) {
	b := Rain(common.NewSeededRNG(3))
	if len(b.Dots) != 100 || b.Lifetime != 2*time.Second {
		t.Fatalf("unexpected confetti %d dots, %v", len(b.Dots), b.Lifetime)
	}
	for i, d := range b.Dots {
		if !contains(ConfettiColors, d.Color) {
			t.Errorf("dot %d color %s not in palette", i, d.Color)
		}
	}
}

type fakeHandle struct {
	removed *int
}

func (h fakeHandle) Remove() {
	*h.removed++
}

type fakeSurface struct {
	spawned []Burst
	removed int
	refuse  bool
}

func (s *fakeSurface) Spawn(b Burst) Handle {
	if s.refuse {
		return nil
	}
	s.spawned = append(s.spawned, b)
	return fakeHandle{removed: &s.removed}
}

func TestStage_RemovesAfterLifetime(t *testing.T) {
	sched := common.NewManualScheduler()
	surface := &fakeSurface{}
	stage := NewStage(sched, surface)

	stage.Play(Sparkles(common.NewSeededRNG(1), ""))
	stage.Play(Celebrate(common.NewSeededRNG(1)))
	if stage.Active() != 2 {
		t.Fatalf("Expected 2 live bursts, got %d", stage.Active())
	}

	sched.Advance(SparkleLife)
	if stage.Active() != 1 || stage.ActiveKind(Celebration) != 1 {
		t.Errorf("Expected only the celebration left, got %d", stage.Active())
	}
	sched.Advance(time.Second)
	if stage.Active() != 0 || surface.removed != 2 {
		t.Errorf("Expected all removed, active=%d removed=%d", stage.Active(), surface.removed)
	}
}

func TestStage_RippleReplacesExisting(t *testing.T) {
	sched := common.NewManualScheduler()
	surface := &fakeSurface{}
	stage := NewStage(sched, surface)

	stage.Play(Wave())
	sched.Advance(600 * time.Millisecond)
	stage.Play(Wave())
	if stage.ActiveKind(Ripple) != 1 || surface.removed != 1 {
		t.Fatalf("Expected one ripple after replacement, got %d (removed %d)", stage.ActiveKind(Ripple), surface.removed)
	}

	// The replaced ripple's timer must not remove the new one early.
	sched.Advance(600 * time.Millisecond)
	if stage.ActiveKind(Ripple) != 1 {
		t.Error("new ripple removed by the old ripple's timer")
	}
	sched.Advance(400 * time.Millisecond)
	if stage.Active() != 0 {
		t.Error("Expected ripple gone after its lifetime")
	}
}

func TestStage_ClearAndRefusedSpawn(t *testing.T) {
	sched := common.NewManualScheduler()
	surface := &fakeSurface{}
	stage := NewStage(sched, surface)
	stage.Play(Rain(common.NewSeededRNG(1)))
	stage.Play(Notify("Copied!"))
	stage.Clear()
	if stage.Active() != 0 || surface.removed != 2 || sched.Pending() != 0 {
		t.Errorf("Expected everything cleared, active=%d removed=%d pending=%d", stage.Active(), surface.removed, sched.Pending())
	}

	surface.refuse = true
	stage.Play(Wave())
	if stage.Active() != 0 || sched.Pending() != 0 {
		t.Error("Expected refused spawn not to be tracked")
	}
}

func TestSplash(t *testing.T) {
	sched := common.NewManualScheduler()
	var hidden, removed time.Duration
	Splash(sched, func() { hidden = sched.Now() }, func() { removed = sched.Now() })
	sched.Advance(5 * time.Second)
	if hidden != 2500*time.Millisecond || removed != 3300*time.Millisecond {
		t.Errorf("Expected hide at 2.5s and removal at 3.3s, got %v and %v", hidden, removed)
	}
}

func TestKind_String(t *testing.T) {
	if Ripple.String() != "ripple" || Kind(9).String() != "effect" {
		t.Error("unexpected kind names")
	}
}
