package card

import "image/color"

// Card geometry in logical pixels. The raster is Scale times larger.
const (
	Width  = 800
	Height = 600
	Scale  = 2

	panelInset  = 50
	panelRadius = 20
	accentH     = 6
	boxInset    = 30
	boxTop      = 150
	boxBottom   = 450
	boxRadius   = 12
	textPad     = 24

	headerSize    = 36
	setupSize     = 18
	punchlineSize = 20
	footerSize    = 14

	shadowOffset = 8
	shadowBlur   = 12
	shadowScale  = 4
)

// Filename is the name offered when the card is downloaded.
const Filename = "jokes101-joke.png"

// Fixed card copy.
const (
	Header     = "Jokes 101"
	Tagline    = "Premium AI Comedy"
	SiteFooter = "jokes101.netlify.app"
)

var (
	accentStops = []color.NRGBA{
		{R: 0x63, G: 0x66, B: 0xf1, A: 255},
		{R: 0xec, G: 0x48, B: 0x99, A: 255},
		{R: 0xf5, G: 0x9e, B: 0x0b, A: 255},
		{R: 0x10, G: 0xb9, B: 0x81, A: 255},
	}
	goldFrom = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 255}
	goldTo   = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 255}

	panelFill  = color.NRGBA{R: 255, G: 255, B: 255, A: 38}
	boxFill    = color.NRGBA{R: 0, G: 0, B: 0, A: 51}
	shadowFill = color.NRGBA{R: 0, G: 0, B: 0, A: 77}
)
