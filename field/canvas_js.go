//go:build js
// +build js

package field

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// CanvasPainter draws a field on a 2D canvas context.
type CanvasPainter struct {
	Canvas *js.Object
	Ctx    *js.Object
	Stats  *StatsOverlay
}

// NewCanvasPainter returns a painter for canvas, or nil if the canvas has
// no 2D context.
func NewCanvasPainter(canvas *js.Object) *CanvasPainter {
	if canvas == nil || canvas == js.Undefined {
		return nil
	}
	ctx := canvas.Call("getContext", "2d")
	if ctx == nil || ctx == js.Undefined {
		return nil
	}
	return &CanvasPainter{Canvas: canvas, Ctx: ctx, Stats: &StatsOverlay{}}
}

// Paint implements Painter.
func (p *CanvasPainter) Paint(f *Field, m *Meter) {
	ctx := p.Ctx
	ctx.Call("clearRect", 0, 0, f.W, f.H)

	particles := f.Particles()
	for i := range particles {
		p.paintParticle(&particles[i])
	}

	ctx.Set("lineWidth", LinkWidth)
	for _, l := range f.Links() {
		a, b := &particles[l.A], &particles[l.B]
		ctx.Set("strokeStyle", "rgba(255, 255, 255, "+alpha(l.Opacity)+")")
		ctx.Call("beginPath")
		ctx.Call("moveTo", a.X, a.Y)
		ctx.Call("lineTo", b.X, b.Y)
		ctx.Call("stroke")
	}

	p.Stats.Render(ctx, f, m)
}

func (p *CanvasPainter) paintParticle(pt *Particle) {
	ctx := p.Ctx
	ctx.Call("beginPath")
	ctx.Call("arc", pt.X, pt.Y, pt.Size, 0, math.Pi*2, false)

	gradient := ctx.Call("createRadialGradient", pt.X, pt.Y, 0, pt.X, pt.Y, pt.Size)
	gradient.Call("addColorStop", 0, rgba(pt.Color, pt.Opacity))
	gradient.Call("addColorStop", 1, rgba(pt.Color, 0))

	ctx.Set("fillStyle", gradient)
	ctx.Call("fill")
}

func rgba(c RGB, a float64) string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + alpha(a) + ")"
}

func alpha(a float64) string {
	return strconv.FormatFloat(a, 'f', 3, 64)
}

// StatsOverlay shows frame rate and field counters in the corner of the
// backdrop. Toggled with F10.
type StatsOverlay struct {
	Visible bool
}

// Toggle flips overlay visibility.
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// Render draws the overlay if visible.
func (s *StatsOverlay) Render(ctx *js.Object, f *Field, m *Meter) {
	if !s.Visible {
		return
	}
	const panelW, panelH, lineH = 200, 92, 18
	x := int(f.W) - panelW - 16
	y := 16

	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	ctx.Call("fillRect", x, y, panelW, panelH)
	ctx.Set("strokeStyle", "#00aaff")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", x, y, panelW, panelH)

	ctx.Set("fillStyle", "#00aaff")
	ctx.Set("font", "bold 12px monospace")
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "FIELD STATS [F10]", x+10, y+18)

	ctx.Set("font", "12px monospace")
	ctx.Set("fillStyle", "#cccccc")
	ctx.Call("fillText", "FPS       "+strconv.FormatFloat(m.FPS, 'f', 1, 64), x+10, y+18+lineH)
	ctx.Call("fillText", "Particles "+strconv.Itoa(len(f.Particles())), x+10, y+18+lineH*2)
	ctx.Call("fillText", "Links     "+strconv.Itoa(len(f.Links())), x+10, y+18+lineH*3)
}
