package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflective surfaces blend their diffuse shading with a mirror reflection
type Reflective struct {
	Reflectivity float32 // Fraction of light taken from the mirror ray, in [0, 1]
}

func (Reflective) Type() SurfaceType { return SurfaceReflective }
func (Reflective) isSurface()        {}

// NewReflective creates a new reflective material
func NewReflective(color core.Color, albedo, reflectivity float32) Material {
	return NewMaterial(color, albedo, Reflective{Reflectivity: reflectivity})
}

// NewReflectionRay mirrors incident about normal. The origin is pushed off the
// surface by bias along the normal so the new ray does not hit the surface it
// starts on.
func NewReflectionRay(normal, incident core.Vec3, hitPoint core.Point, bias float64) core.Ray {
	return core.NewRay(
		hitPoint.Add(normal.Multiply(bias)),
		reflectVector(incident, normal),
	)
}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
