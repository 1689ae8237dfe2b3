package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. A scene must not be
// mutated while a render is reading it.
type Scene struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Vertical field of view in degrees

	Elements []geometry.Element // Objects in the scene, in trace order
	Lights   []lights.Light     // Lights in the scene

	ShadowBias        float64 // Offset along the normal for secondary ray origins
	MaxRecursionDepth int     // Secondary rays stop at this depth
}

// Intersection records the nearest hit of a trace. ElementIndex refers into
// Scene.Elements.
type Intersection struct {
	Distance     float64
	ElementIndex int
}

// Trace returns the nearest strictly positive hit along ray. When two
// elements hit at the same distance the earlier one wins.
func (s *Scene) Trace(ray core.Ray) (Intersection, bool) {
	closest := Intersection{Distance: math.Inf(1), ElementIndex: -1}

	for i, element := range s.Elements {
		if d, isHit := element.Intersect(ray); isHit && d < closest.Distance {
			closest = Intersection{Distance: d, ElementIndex: i}
		}
	}

	return closest, closest.ElementIndex >= 0
}

// Element returns the element an intersection refers to
func (s *Scene) Element(hit Intersection) geometry.Element {
	return s.Elements[hit.ElementIndex]
}

// Overrides replaces scene tunables; zero fields keep the scene's value
type Overrides struct {
	Width             int
	Height            int
	FOV               float64
	ShadowBias        *float64 // nil keeps the scene's bias, 0 is a valid bias
	MaxRecursionDepth *int     // nil keeps the scene's depth, 0 is a valid depth
}

// WithOverrides returns a copy of the scene with the given tunables replaced.
// Elements and lights are shared with the original.
func (s *Scene) WithOverrides(o Overrides) *Scene {
	clone := *s
	if o.Width > 0 {
		clone.Width = o.Width
	}
	if o.Height > 0 {
		clone.Height = o.Height
	}
	if o.FOV > 0 {
		clone.FOV = o.FOV
	}
	if o.ShadowBias != nil {
		clone.ShadowBias = *o.ShadowBias
	}
	if o.MaxRecursionDepth != nil {
		clone.MaxRecursionDepth = *o.MaxRecursionDepth
	}
	return &clone
}
