package core

import "github.com/go-gl/mathgl/mgl64"

// Color holds r, g, b and a channels as floats. Alpha is carried through the
// arithmetic but never read by the tracer.
type Color mgl64.Vec4

// Black is the zero color. Accumulating it onto a clamped color is a no-op.
var Black = Color{0, 0, 0, 0}

// NewColor creates a color from all four channels
func NewColor(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// RGB creates an opaque color
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }
func (c Color) A() float64 { return c[3] }

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color(mgl64.Vec4(c).Add(mgl64.Vec4(other)))
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float64) Color {
	return Color(mgl64.Vec4(c).Mul(s))
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c[0] * other[0], c[1] * other[1], c[2] * other[2], c[3] * other[3]}
}

// Clamp limits every channel to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		mgl64.Clamp(c[0], 0, 1),
		mgl64.Clamp(c[1], 0, 1),
		mgl64.Clamp(c[2], 0, 1),
		mgl64.Clamp(c[3], 0, 1),
	}
}

// Accumulate is a saturating add: the sum is clamped to [0, 1] per channel
func (c Color) Accumulate(other Color) Color {
	return c.Add(other).Clamp()
}

// IsBlack reports whether the color channels are all zero. Alpha is ignored.
func (c Color) IsBlack() bool {
	return c[0] == 0 && c[1] == 0 && c[2] == 0
}
