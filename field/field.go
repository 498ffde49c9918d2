// Package field simulates the animated particle backdrop: particles bounce
// inside the viewport, shy away from the pointer, and are joined by faint
// lines when close to each other.
package field

import (
	"math"

	"github.com/simukka/jokes101/common"
)

// Particle is one dot of the backdrop.
type Particle struct {
	X, Y        float64 // Position in viewport pixels
	DX, DY      float64 // Velocity per frame
	Size        float64 // Radius
	Color       RGB
	Opacity     float64 // Current opacity
	BaseOpacity float64 // Opacity away from the pointer
}

// Link joins particles A and B (indices, A < B).
type Link struct {
	A, B    int
	Opacity float64
}

// Field holds the particle set for one viewport size.
type Field struct {
	W, H float64

	rng       common.Rand
	particles []Particle
	links     []Link
	grid      *Grid

	pointerX, pointerY float64
	pointerKnown       bool
	radius             float64
}

// Count returns the number of particles for a w×h viewport.
func Count(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(math.Floor(w * h / Density))
}

// New creates a field for a w×h viewport and populates it.
func New(w, h float64, rng common.Rand) *Field {
	f := &Field{rng: rng}
	f.Resize(w, h)
	return f
}

// Resize adopts a new viewport size. The repulsion radius is recomputed and
// the particle set is regenerated from scratch.
func (f *Field) Resize(w, h float64) {
	f.W, f.H = w, h
	f.radius = math.Min(w, h) / PointerDivisor
	f.grid = NewGrid(w, h, LinkDistance)
	f.populate()
}

func (f *Field) populate() {
	n := Count(f.W, f.H)
	f.particles = make([]Particle, n)
	f.links = f.links[:0]
	for i := range f.particles {
		size := common.Range(f.rng, MinSize, MaxSize)
		opacity := common.Range(f.rng, MinOpacity, MaxBaseOpacity)
		f.particles[i] = Particle{
			Size:        size,
			X:           f.rng.Float64()*(f.W-size*2) + size,
			Y:           f.rng.Float64()*(f.H-size*2) + size,
			DX:          common.Range(f.rng, -1, 1),
			DY:          common.Range(f.rng, -1, 1),
			Color:       Palette[common.Intn(f.rng, len(Palette))],
			Opacity:     opacity,
			BaseOpacity: opacity,
		}
	}
}

// Particles returns the live particle slice. Callers must not retain it
// across Resize.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Links returns the connections computed by the last Step.
func (f *Field) Links() []Link {
	return f.links
}

// Radius returns the pointer repulsion radius.
func (f *Field) Radius() float64 {
	return f.radius
}

// SetPointer records the pointer position.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.pointerKnown = true
}

// ClearPointer forgets the pointer, e.g. when it leaves the window.
func (f *Field) ClearPointer() {
	f.pointerKnown = false
}

// Step advances the simulation by one frame and recomputes links.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		Bounce(p, f.W, f.H)
		if f.pointerKnown {
			f.repel(p)
		} else {
			p.Opacity = p.BaseOpacity
		}
		p.X += p.DX
		p.Y += p.DY
	}
	f.connect()
}

// Bounce negates each velocity component whose next position would leave
// [0, w] or [0, h] while still moving outward. A particle pushed past an
// edge by the pointer is left heading back in rather than flipped every
// frame, which would trap it outside.
func Bounce(p *Particle, w, h float64) {
	nx, ny := p.X+p.DX, p.Y+p.DY
	if (nx > w && p.DX > 0) || (nx < 0 && p.DX < 0) {
		p.DX = -p.DX
	}
	if (ny > h && p.DY > 0) || (ny < 0 && p.DY < 0) {
		p.DY = -p.DY
	}
}

func (f *Field) repel(p *Particle) {
	dx, dy, moved := Push(p.X, p.Y, f.pointerX, f.pointerY, f.radius)
	if !moved {
		p.Opacity = p.BaseOpacity
		return
	}
	p.X += dx
	p.Y += dy
	p.Opacity = math.Min(p.BaseOpacity*2, MaxOpacity)
}

// Push returns the repulsion displacement of a particle at (x, y) from a
// pointer at (px, py) with the given radius. moved is false when the
// particle is outside the radius. A particle exactly under the pointer is
// inside the radius but has no direction to move in.
func Push(x, y, px, py, radius float64) (dx, dy float64, moved bool) {
	ox, oy := px-x, py-y
	d := math.Hypot(ox, oy)
	if d >= radius {
		return 0, 0, false
	}
	if d == 0 {
		return 0, 0, true
	}
	force := (radius - d) / radius
	return -ox / d * force * PushFactor, -oy / d * force * PushFactor, true
}

// connect rebuilds the link list using the spatial grid.
func (f *Field) connect() {
	f.links = f.links[:0]
	f.grid.Clear()
	for i := range f.particles {
		f.grid.Insert(i, f.particles[i].X, f.particles[i].Y)
	}
	for i := range f.particles {
		a := &f.particles[i]
		f.grid.ForNearby(a.X, a.Y, func(j int) {
			if j <= i {
				return
			}
			b := &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < LinkDistance {
				f.links = append(f.links, Link{A: i, B: j, Opacity: LinkOpacity(d)})
			}
		})
	}
}

// LinkOpacity returns the line opacity for two particles d apart.
func LinkOpacity(d float64) float64 {
	if d >= LinkDistance {
		return 0
	}
	return (1 - d/LinkDistance) * LinkAlpha
}
