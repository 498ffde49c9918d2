package field

import (
	"testing"

	"github.com/simukka/jokes101/common"
)

type countingPainter struct {
	frames int
}

func (c *countingPainter) Paint(f *Field, m *Meter) {
	c.frames++
}

func TestLoop_StepsOncePerFrame(t *testing.T) {
	frames := common.NewManualFrames()
	f := New(400, 300, common.NewSeededRNG(2))
	painter := &countingPainter{}
	loop := NewLoop(frames, f, painter)

	loop.Start()
	for i := 1; i <= 5; i++ {
		frames.Tick(float64(i) * 16)
	}

	if painter.frames != 5 {
		t.Errorf("Expected 5 paints, got %d", painter.frames)
	}
	if loop.Meter().Frames != 5 {
		t.Errorf("Expected meter to count 5 frames, got %d", loop.Meter().Frames)
	}
	if frames.Pending() != 1 {
		t.Errorf("Expected exactly one pending frame, got %d", frames.Pending())
	}
}

func TestLoop_StopCancelsPendingFrame(t *testing.T) {
	frames := common.NewManualFrames()
	painter := &countingPainter{}
	loop := NewLoop(frames, New(400, 300, common.NewSeededRNG(2)), painter)

	loop.Start()
	frames.Tick(16)
	loop.Stop()

	if loop.Running() {
		t.Error("Expected loop stopped")
	}
	if frames.Pending() != 0 {
		t.Errorf("Expected no pending frames after Stop, got %d", frames.Pending())
	}
	frames.Tick(32)
	if painter.frames != 1 {
		t.Errorf("Expected no paint after Stop, got %d paints", painter.frames)
	}
}

func TestLoop_StartTwiceSchedulesOnce(t *testing.T) {
	frames := common.NewManualFrames()
	loop := NewLoop(frames, New(400, 300, common.NewSeededRNG(2)), nil)
	loop.Start()
	loop.Start()
	if frames.Pending() != 1 {
		t.Errorf("Expected one pending frame, got %d", frames.Pending())
	}
	loop.Stop()
	loop.Start()
	frames.Tick(16)
	if !loop.Running() || frames.Pending() != 1 {
		t.Error("Expected restarted loop to keep running")
	}
}

func TestMeter_UpdatesOncePerSecond(t *testing.T) {
	m := &Meter{}
	updated := 0
	for i := 1; i <= 120; i++ {
		if m.Tick(float64(i) * 1000 / 60) {
			updated++
		}
	}
	if updated != 2 {
		t.Errorf("Expected 2 FPS updates over 2s, got %d", updated)
	}
	if m.FPS < 59 || m.FPS > 61 {
		t.Errorf("Expected ~60 FPS, got %f", m.FPS)
	}
}

func TestLoop_LogsWhenMeterRefreshes(t *testing.T) {
	frames := common.NewManualFrames()
	loop := NewLoop(frames, New(200, 200, common.NewSeededRNG(4)), nil)
	loop.LogFPS = true
	loop.Start()
	for i := 1; i <= 130; i++ {
		frames.Tick(float64(i) * 1000 / 60)
	}
	if loop.Meter().FPS == 0 {
		t.Error("Expected FPS to be measured")
	}
}
