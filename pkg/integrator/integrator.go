package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// CastRay returns the color seen along ray. depth counts the bounces
	// taken so far; primary rays start at 0.
	CastRay(s *scene.Scene, ray core.Ray, depth int) core.Color
}
