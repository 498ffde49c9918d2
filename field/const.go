package field

// Field tuning.
const (
	// Density is the viewport area, in square pixels, per particle.
	Density = 12000

	// LinkDistance is the distance below which two particles are joined.
	LinkDistance = 120.0

	// LinkAlpha is the line opacity of two coincident particles.
	LinkAlpha = 0.3

	// LinkWidth is the stroke width of connection lines.
	LinkWidth = 0.5

	// PointerDivisor sets the repulsion radius to min(W,H)/PointerDivisor.
	PointerDivisor = 15.0

	// PushFactor scales the per-frame repulsion displacement.
	PushFactor = 3.0

	// MaxOpacity caps the opacity boost near the pointer.
	MaxOpacity = 0.8

	// Initial size and opacity ranges, both half-open.
	MinSize, MaxSize           = 1.0, 4.0
	MinOpacity, MaxBaseOpacity = 0.2, 0.7
)

// RGB is a particle base color.
type RGB struct {
	R, G, B uint8
}

// Palette is the fixed set of particle colors.
var Palette = []RGB{
	{255, 255, 255},
	{99, 102, 241},
	{236, 72, 153},
	{245, 158, 11},
	{16, 185, 129},
}
