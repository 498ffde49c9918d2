// Package card renders the shareable joke image and hands it to the
// clipboard, or to a download when the clipboard refuses it.
package card

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/simukka/jokes101/theme"
)

// ErrEmpty is returned when there is no joke to draw.
var ErrEmpty = errors.New("card: nothing to render")

// px converts logical pixels to raster pixels.
func px(v int) int { return v * Scale }

// Render composes the card for a joke under the given palette. The result
// is Width*Scale by Height*Scale pixels.
func Render(t theme.Theme, setup, punchline string) (*image.NRGBA, error) {
	if setup == "" && punchline == "" {
		return nil, ErrEmpty
	}
	from, err := theme.RGBA(t.From)
	if err != nil {
		return nil, err
	}
	to, err := theme.RGBA(t.To)
	if err != nil {
		return nil, err
	}
	fg, err := theme.RGBA(t.Text)
	if err != nil {
		return nil, err
	}
	if err := loadFonts(); err != nil {
		return nil, err
	}

	w, h := px(Width), px(Height)
	img := imaging.New(w, h, color.NRGBA{})
	diagonal(img, from, to)

	panel := image.Rect(px(panelInset), px(panelInset), w-px(panelInset), h-px(panelInset))
	img = shadow(img, panel)

	panelMask := roundRect{r: panel, radius: px(panelRadius)}
	fill(img, panel, panelFill, panelMask)

	bar := image.NewNRGBA(image.Rect(panel.Min.X, panel.Min.Y, panel.Max.X, panel.Min.Y+px(accentH)))
	horizontal(bar, bar.Bounds(), accentStops)
	xdraw.DrawMask(img, bar.Bounds(), bar, bar.Bounds().Min, panelMask, bar.Bounds().Min, xdraw.Over)

	box := image.Rect(panel.Min.X+px(boxInset), px(boxTop), panel.Max.X-px(boxInset), px(boxBottom))
	fill(img, box, boxFill, roundRect{r: box, radius: px(boxRadius)})

	headerFace, err := face(bold, headerSize)
	if err != nil {
		return nil, err
	}
	defer headerFace.Close()
	centered(img, headerFace, image.NewUniform(fg), Header, panel, panel.Min.Y+px(accentH)+px(60))

	if err := jokeText(img, box, fg, setup, punchline); err != nil {
		return nil, err
	}

	footerFace, err := face(regular, footerSize)
	if err != nil {
		return nil, err
	}
	defer footerFace.Close()
	muted := color.NRGBA{R: fg.R, G: fg.G, B: fg.B, A: 204}
	centered(img, footerFace, image.NewUniform(muted), Tagline, panel, box.Max.Y+px(40))
	centered(img, footerFace, image.NewUniform(muted), SiteFooter, panel, box.Max.Y+px(62))
	return img, nil
}

// shadow draws a soft drop shadow under r. The blur runs on a reduced
// layer that is scaled back up.
func shadow(img *image.NRGBA, r image.Rectangle) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	small := imaging.New(w/shadowScale, h/shadowScale, color.NRGBA{})
	off := r.Add(image.Pt(0, px(shadowOffset)))
	off = image.Rect(off.Min.X/shadowScale, off.Min.Y/shadowScale, off.Max.X/shadowScale, off.Max.Y/shadowScale)
	fill(small, off, shadowFill, roundRect{r: off, radius: px(panelRadius) / shadowScale})
	small = imaging.Blur(small, float64(px(shadowBlur))/shadowScale)
	layer := imaging.Resize(small, w, h, imaging.Linear)
	return imaging.Overlay(img, layer, image.Pt(0, 0), 1)
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA, mask image.Image) {
	xdraw.DrawMask(img, r, image.NewUniform(c), image.Point{}, mask, r.Min, xdraw.Over)
}

func centered(img *image.NRGBA, f font.Face, src image.Image, text string, within image.Rectangle, baseline int) {
	width := font.MeasureString(f, text)
	x := fixed.I(within.Min.X+within.Dx()/2) - width/2
	d := font.Drawer{Dst: img, Src: src, Face: f, Dot: fixed.Point26_6{X: x, Y: fixed.I(baseline)}}
	d.DrawString(text)
}

// Joke text shrinks in steps until it fits the box, down to minTextScale.
const (
	textShrinkStep = 0.1
	minTextScale   = 0.5
)

// textLayout is the wrapped joke text at one scale.
type textLayout struct {
	scale     float64
	setupFace font.Face
	punchFace font.Face
	setup     []string
	punchline []string
	setupLead int
	punchLead int
	gap       int
}

func (l *textLayout) height() int {
	h := len(l.setup)*l.setupLead + len(l.punchline)*l.punchLead
	if len(l.setup) > 0 && len(l.punchline) > 0 {
		h += l.gap
	}
	return h
}

func (l *textLayout) close() {
	l.setupFace.Close()
	l.punchFace.Close()
}

// measure wraps the joke for an inner width with fonts scaled by k.
func measure(k float64, width int, setup, punchline string) (*textLayout, error) {
	setupFace, err := face(regular, setupSize*k)
	if err != nil {
		return nil, err
	}
	punchFace, err := face(bold, punchlineSize*k)
	if err != nil {
		setupFace.Close()
		return nil, err
	}
	limit := fixed.I(width)
	return &textLayout{
		scale:     k,
		setupFace: setupFace,
		punchFace: punchFace,
		setup:     Wrap(setupFace, setup, limit),
		punchline: Wrap(punchFace, punchline, limit),
		setupLead: int(math.Round(setupSize * k * 1.5 * Scale)),
		punchLead: int(math.Round(punchlineSize * k * 1.5 * Scale)),
		gap:       int(math.Round(16 * k * Scale)),
	}, nil
}

// fitText picks the largest scale at which the joke fits inner. At
// minTextScale the layout is returned even if it still overflows.
func fitText(inner image.Rectangle, setup, punchline string) (*textLayout, error) {
	for step := 0; ; step++ {
		k := 1 - float64(step)*textShrinkStep
		if k < minTextScale {
			k = minTextScale
		}
		l, err := measure(k, inner.Dx(), setup, punchline)
		if err != nil {
			return nil, err
		}
		if l.height() <= inner.Dy() || k <= minTextScale {
			return l, nil
		}
		l.close()
	}
}

// jokeText lays out the setup above the punchline inside box. Lines still
// running past the bottom at the smallest scale are dropped.
func jokeText(img *image.NRGBA, box image.Rectangle, fg color.NRGBA, setup, punchline string) error {
	inner := box.Inset(px(textPad))
	l, err := fitText(inner, setup, punchline)
	if err != nil {
		return err
	}
	defer l.close()

	y := inner.Min.Y
	if total := l.height(); total < inner.Dy() {
		y += (inner.Dy() - total) / 2
	}

	fgSrc := image.NewUniform(fg)
	for _, line := range l.setup {
		y += l.setupLead
		if y > inner.Max.Y {
			return nil
		}
		centered(img, l.setupFace, fgSrc, line, inner, y-l.setupLead/4)
	}
	if len(l.setup) > 0 {
		y += l.gap
	}
	gold := vertical{top: y, bottom: y + len(l.punchline)*l.punchLead, a: goldFrom, b: goldTo}
	for _, line := range l.punchline {
		y += l.punchLead
		if y > inner.Max.Y {
			return nil
		}
		centered(img, l.punchFace, gold, line, inner, y-l.punchLead/4)
	}
	return nil
}

// EncodePNG rasterizes img to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("card: encode: %w", err)
	}
	return buf.Bytes(), nil
}
