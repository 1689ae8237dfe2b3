package lights

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SphericalLight is a point light radiating equally in all directions
type SphericalLight struct {
	Position core.Point
	Color    core.Color
	Power    float32
}

// NewSphericalLight creates a new spherical light
func NewSphericalLight(position core.Point, color core.Color, intensity float32) *SphericalLight {
	return &SphericalLight{
		Position: position,
		Color:    color,
		Power:    intensity,
	}
}

func (sl *SphericalLight) Type() LightType { return LightTypeSpherical }

// DirectionFrom returns the unit vector from hitPoint to the light. hitPoint
// must not coincide with the light position.
func (sl *SphericalLight) DirectionFrom(hitPoint core.Point) core.Vec3 {
	return sl.Position.Subtract(hitPoint).Normalize()
}

// Intensity falls off with the squared distance, spread over the sphere's
// 4*pi solid angle
func (sl *SphericalLight) Intensity(hitPoint core.Point) float32 {
	r2 := float32(sl.Position.Subtract(hitPoint).LengthSquared())
	return sl.Power / (4.0 * math32.Pi * r2)
}

func (sl *SphericalLight) Distance(hitPoint core.Point) float64 {
	return sl.Position.Subtract(hitPoint).Length()
}

func (sl *SphericalLight) GetColor() core.Color { return sl.Color }

func (sl *SphericalLight) isLight() {}
