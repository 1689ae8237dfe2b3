package writers

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// DefaultGamma is the display gamma applied when encoding
const DefaultGamma = 2.2

// WritePPM encodes buf as an ASCII (P3) PPM image, one "r g b" triple per
// line after the header
func WritePPM(w io.Writer, buf *renderer.ImageBuffer, gamma float32) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d 255\n", buf.Width, buf.Height); err != nil {
		return err
	}
	for _, c := range buf.Data {
		px := renderer.ColorToRGBA(c, gamma)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", px.R, px.G, px.B); err != nil {
			return err
		}
	}

	return bw.Flush()
}
