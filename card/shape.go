package card

import (
	"image"
	"image/color"
	"math"
)

// roundRect is an alpha mask covering a rectangle with rounded corners.
type roundRect struct {
	r      image.Rectangle
	radius int
}

func (m roundRect) ColorModel() color.Model { return color.AlphaModel }

func (m roundRect) Bounds() image.Rectangle { return m.r }

func (m roundRect) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.r)) {
		return color.Alpha{}
	}
	rad := float64(m.radius)
	px, py := float64(x)+0.5, float64(y)+0.5
	cx := clamp(px, float64(m.r.Min.X)+rad, float64(m.r.Max.X)-rad)
	cy := clamp(py, float64(m.r.Min.Y)+rad, float64(m.r.Max.Y)-rad)
	d := math.Hypot(px-cx, py-cy)
	switch {
	case d <= rad-0.5:
		return color.Alpha{A: 255}
	case d >= rad+0.5:
		return color.Alpha{}
	default:
		return color.Alpha{A: uint8((rad + 0.5 - d) * 255)}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// lerp mixes a and b at t in [0, 1].
func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// stops samples a multi-stop gradient at t in [0, 1].
func stops(cs []color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return cs[0]
	}
	if t >= 1 {
		return cs[len(cs)-1]
	}
	seg := t * float64(len(cs)-1)
	i := int(seg)
	return lerp(cs[i], cs[i+1], seg-float64(i))
}

// diagonal fills img with a 135° gradient from a (top left) to b (bottom right).
func diagonal(img *image.NRGBA, a, b color.NRGBA) {
	bnd := img.Bounds()
	span := float64(bnd.Dx() - 1 + bnd.Dy() - 1)
	if span <= 0 {
		span = 1
	}
	for y := bnd.Min.Y; y < bnd.Max.Y; y++ {
		for x := bnd.Min.X; x < bnd.Max.X; x++ {
			t := float64(x-bnd.Min.X+y-bnd.Min.Y) / span
			img.SetNRGBA(x, y, lerp(a, b, t))
		}
	}
}

// horizontal fills r of img with a left to right multi-stop gradient.
func horizontal(img *image.NRGBA, r image.Rectangle, cs []color.NRGBA) {
	w := float64(r.Dx() - 1)
	if w <= 0 {
		w = 1
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		c := stops(cs, float64(x-r.Min.X)/w)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// vertical is a top to bottom two-stop gradient usable as a text source.
type vertical struct {
	top, bottom int
	a, b        color.NRGBA
}

func (v vertical) ColorModel() color.Model { return color.NRGBAModel }

func (v vertical) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (v vertical) At(x, y int) color.Color {
	h := float64(v.bottom - v.top)
	if h <= 0 {
		return v.a
	}
	return lerp(v.a, v.b, clamp(float64(y-v.top)/h, 0, 1))
}
