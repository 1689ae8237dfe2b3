package writers

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// WritePNG encodes buf as a PNG image
func WritePNG(w io.Writer, buf *renderer.ImageBuffer, gamma float32) error {
	return png.Encode(w, buf.ToRGBA(gamma))
}

// Encoder writes an image buffer in one file format
type Encoder func(w io.Writer, buf *renderer.ImageBuffer, gamma float32) error

var encoders = map[string]Encoder{
	"ppm": WritePPM,
	"png": WritePNG,
}

// ForFormat returns the encoder for a format name ("ppm" or "png")
func ForFormat(format string) (Encoder, error) {
	enc, ok := encoders[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return enc, nil
}

// FormatFromPath derives the format from a file extension, defaulting to png
func FormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, ok := encoders[ext]; ok {
		return ext
	}
	return "png"
}

// SaveImage writes buf to path, creating parent directories as needed
func SaveImage(path, format string, buf *renderer.ImageBuffer, gamma float32) error {
	enc, err := ForFormat(format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := enc(file, buf, gamma); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return file.Close()
}
