package scene

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimensions = errors.New("scene: width and height must be positive")
	ErrInvalidFOV        = errors.New("scene: field of view must be in (0, 180) degrees")
	ErrNegativeDepth     = errors.New("scene: max recursion depth must not be negative")
	ErrInvalidBias       = errors.New("scene: shadow bias must be a finite non-negative number")
	ErrNilElement        = errors.New("scene: nil element")
	ErrNilLight          = errors.New("scene: nil light")
	ErrUnknownScene      = errors.New("scene: unknown scene")
)

// Validate reports every problem that would make the scene unrenderable
func (s *Scene) Validate() error {
	var errs []error

	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, s.Width, s.Height))
	}
	if !(s.FOV > 0 && s.FOV < 180) {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrInvalidFOV, s.FOV))
	}
	if s.MaxRecursionDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrNegativeDepth, s.MaxRecursionDepth))
	}
	if s.ShadowBias < 0 || math.IsNaN(s.ShadowBias) || math.IsInf(s.ShadowBias, 0) {
		errs = append(errs, fmt.Errorf("%w: got %g", ErrInvalidBias, s.ShadowBias))
	}
	for i, e := range s.Elements {
		if e == nil {
			errs = append(errs, fmt.Errorf("%w at index %d", ErrNilElement, i))
		}
	}
	for i, l := range s.Lights {
		if l == nil {
			errs = append(errs, fmt.Errorf("%w at index %d", ErrNilLight, i))
		}
	}

	return errors.Join(errs...)
}
