package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is infinitely far away and lights every point from the
// same direction with constant intensity
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels
	Color     core.Color
	Power     float32
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Color:     color,
		Power:     intensity,
	}
}

func (dl *DirectionalLight) Type() LightType { return LightTypeDirectional }

// DirectionFrom points back against the light's travel direction
func (dl *DirectionalLight) DirectionFrom(hitPoint core.Point) core.Vec3 {
	return dl.Direction.Negate()
}

func (dl *DirectionalLight) Intensity(hitPoint core.Point) float32 {
	return dl.Power
}

func (dl *DirectionalLight) Distance(hitPoint core.Point) float64 {
	return math.Inf(1)
}

func (dl *DirectionalLight) GetColor() core.Color { return dl.Color }

func (dl *DirectionalLight) isLight() {}
