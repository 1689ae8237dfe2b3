package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ImageBuffer holds linear colors in row-major order
type ImageBuffer struct {
	Width  int
	Height int
	Data   []core.Color // len(Data) == Width*Height
}

// NewImageBuffer creates a black buffer of the given size
func NewImageBuffer(width, height int) *ImageBuffer {
	return &ImageBuffer{
		Width:  width,
		Height: height,
		Data:   make([]core.Color, width*height),
	}
}

func (b *ImageBuffer) At(x, y int) core.Color {
	return b.Data[b.Width*y+x]
}

func (b *ImageBuffer) Set(x, y int, c core.Color) {
	b.Data[b.Width*y+x] = c
}

// Row returns the slice backing row y. Writes through it land in the buffer.
func (b *ImageBuffer) Row(y int) []core.Color {
	return b.Data[b.Width*y : b.Width*(y+1)]
}

// ToRGBA converts the buffer to an 8-bit image, clamping each channel and
// raising it to 1/gamma. A gamma of 1 writes linear values.
func (b *ImageBuffer) ToRGBA(gamma float32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x, c := range b.Row(y) {
			img.SetRGBA(x, y, ColorToRGBA(c, gamma))
		}
	}
	return img
}

// ColorToRGBA converts a linear color to an opaque 8-bit pixel
func ColorToRGBA(c core.Color, gamma float32) color.RGBA {
	c = c.Clamp().GammaCorrect(gamma)
	return color.RGBA{
		R: uint8(255 * c.Red),
		G: uint8(255 * c.Green),
		B: uint8(255 * c.Blue),
		A: 255,
	}
}
