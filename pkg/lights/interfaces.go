package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpherical   LightType = "spherical"
)

// Light is a source of direct illumination. The set of implementations is
// closed: *DirectionalLight and *SphericalLight.
type Light interface {
	Type() LightType

	// DirectionFrom returns the unit direction FROM hitPoint TO the light
	DirectionFrom(hitPoint core.Point) core.Vec3

	// Intensity returns the light's intensity arriving at hitPoint
	Intensity(hitPoint core.Point) float32

	// Distance returns how far the light is from hitPoint
	Distance(hitPoint core.Point) float64

	// GetColor returns the emitted color
	GetColor() core.Color

	isLight()
}
