package field

import (
	"github.com/simukka/jokes101/common"
	"github.com/simukka/jokes101/console"
)

// Painter draws a field after each step.
type Painter interface {
	Paint(f *Field, m *Meter)
}

// Loop owns the repaint task of a field. It runs once per display refresh
// until Stop is called.
type Loop struct {
	frames  common.Frames
	field   *Field
	painter Painter
	meter   *Meter

	frameID int
	running bool

	// LogFPS writes the frame rate to the debug console once per second.
	LogFPS bool
}

// NewLoop creates a stopped loop. painter may be nil.
func NewLoop(frames common.Frames, f *Field, painter Painter) *Loop {
	return &Loop{
		frames:  frames,
		field:   f,
		painter: painter,
		meter:   &Meter{},
	}
}

// Start schedules the first frame. Starting a running loop is a no-op.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.frameID = l.frames.Request(l.frame)
}

// Stop cancels the pending frame. The loop can be started again.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.frames.Cancel(l.frameID)
	l.frameID = 0
}

// Running reports whether a frame is scheduled.
func (l *Loop) Running() bool {
	return l.running
}

// Meter returns the frame-rate meter.
func (l *Loop) Meter() *Meter {
	return l.meter
}

func (l *Loop) frame(ts float64) {
	if !l.running {
		return
	}
	// Schedule next frame
	l.frameID = l.frames.Request(l.frame)

	if l.meter.Tick(ts) && l.LogFPS {
		console.Debug("FPS:", l.meter.FPS, "Particles:", len(l.field.Particles()), "Links:", len(l.field.Links()))
	}
	l.field.Step()
	if l.painter != nil {
		l.painter.Paint(l.field, l.meter)
	}
}

// Meter tracks frames per second from animation-frame timestamps.
type Meter struct {
	Frames     int     // Total frames seen
	FPS        float64 // Rate over the last full second
	count      int
	lastUpdate float64
}

// Tick records a frame at ts (milliseconds). It reports whether FPS was
// refreshed.
func (m *Meter) Tick(ts float64) bool {
	m.Frames++
	m.count++

	elapsed := ts - m.lastUpdate
	if elapsed < 1000 {
		return false
	}
	m.FPS = float64(m.count) / (elapsed / 1000)
	m.count = 0
	m.lastUpdate = ts
	return true
}
