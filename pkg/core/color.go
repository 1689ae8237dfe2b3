package core

import "github.com/chewxy/math32"

// Color is an RGB triple. Channels may leave [0,1] while light is being
// accumulated; Clamp brings them back into the displayable range.
type Color struct {
	Red, Green, Blue float32
}

// Black is the background color and the result of a terminated ray
var Black = Color{}

// White is full intensity on every channel
var White = Color{1, 1, 1}

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{Red: r, Green: g, Blue: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.Red + other.Red, c.Green + other.Green, c.Blue + other.Blue}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float32) Color {
	return Color{c.Red * scalar, c.Green * scalar, c.Blue * scalar}
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.Red * other.Red, c.Green * other.Green, c.Blue * other.Blue}
}

// Clamp restricts every channel to [0, 1]. NaN channels become 0.
func (c Color) Clamp() Color {
	return Color{
		Red:   clamp01(c.Red),
		Green: clamp01(c.Green),
		Blue:  clamp01(c.Blue),
	}
}

// GammaCorrect raises each channel to 1/gamma
func (c Color) GammaCorrect(gamma float32) Color {
	invGamma := 1.0 / gamma
	return Color{
		Red:   math32.Pow(c.Red, invGamma),
		Green: math32.Pow(c.Green, invGamma),
		Blue:  math32.Pow(c.Blue, invGamma),
	}
}

// IsBlack reports whether every channel is exactly zero
func (c Color) IsBlack() bool {
	return c.Red == 0 && c.Green == 0 && c.Blue == 0
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(0, math32.Min(v, 1))
}
