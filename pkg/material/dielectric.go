package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refractive represents a transparent material like glass that both reflects
// and transmits light
type Refractive struct {
	Index        float32 // Index of refraction (e.g., 1.5 for glass)
	Transparency float32 // Scale applied to the blended reflection/refraction
}

func (Refractive) Type() SurfaceType { return SurfaceRefractive }
func (Refractive) isSurface()        {}

// NewRefractive creates a new refractive material
func NewRefractive(color core.Color, albedo, index, transparency float32) Material {
	return NewMaterial(color, albedo, Refractive{Index: index, Transparency: transparency})
}

// orient returns the normal facing the incident ray, |cos| of the incidence
// angle and the indices on the incident and transmitted sides
func orient(normal, incident core.Vec3, index float32) (n core.Vec3, cosI, etaI, etaT float64) {
	n = normal
	etaI, etaT = 1.0, float64(index)
	cosI = incident.Dot(normal)
	if cosI < 0 {
		// Entering the material
		cosI = -cosI
	} else {
		// Exiting: flip the normal and swap the media
		n = normal.Negate()
		etaI, etaT = etaT, etaI
	}
	return n, cosI, etaI, etaT
}

// NewTransmissionRay bends incident through the surface using Snell's law.
// It returns false on total internal reflection, when no transmitted ray
// exists.
func NewTransmissionRay(normal, incident core.Vec3, hitPoint core.Point, bias float64, index float32) (core.Ray, bool) {
	n, cosI, etaI, etaT := orient(normal, incident, index)
	eta := etaI / etaT
	k := 1.0 - eta*eta*(1.0-cosI*cosI)
	if k < 0 {
		return core.Ray{}, false
	}

	direction := incident.Add(n.Multiply(cosI)).Multiply(eta).Subtract(n.Multiply(math.Sqrt(k)))
	return core.NewRay(hitPoint.Add(n.Multiply(-bias)), direction), true
}

// Fresnel returns the fraction of light reflected at the boundary, in [0, 1].
// It is exactly 1 under total internal reflection.
func Fresnel(incident, normal core.Vec3, index float32) float64 {
	_, cosI, etaI, etaT := orient(normal, incident, index)

	sinT := etaI / etaT * math.Sqrt(math.Max(1.0-cosI*cosI, 0))
	if sinT > 1.0 {
		return 1.0
	}
	cosT := math.Sqrt(math.Max(1.0-sinT*sinT, 0))

	rs := (etaT*cosI - etaI*cosT) / (etaT*cosI + etaI*cosT)
	rp := (etaI*cosI - etaT*cosT) / (etaI*cosI + etaT*cosT)
	kr := (rs*rs + rp*rp) / 2.0
	if math.IsNaN(kr) {
		// Grazing incidence exactly at the critical angle
		return 1.0
	}
	return math.Max(0, math.Min(kr, 1))
}
