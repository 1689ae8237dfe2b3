package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Point, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere using the geometric
// method: project the center onto the ray and compare the perpendicular
// distance with the radius
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	l := s.Center.Subtract(ray.Origin)

	// Length of the projection of l onto the ray
	adj := l.Dot(ray.Direction)
	d2 := l.Dot(l) - adj*adj
	radius2 := s.Radius * s.Radius
	if d2 >= radius2 {
		return 0, false
	}

	thc := math.Sqrt(radius2 - d2)
	t0 := adj - thc
	t1 := adj + thc

	switch {
	case t0 < 0 && t1 < 0:
		// Sphere is behind the ray
		return 0, false
	case t0 < 0:
		// Ray starts inside the sphere
		return t1, true
	default:
		return math.Min(t0, t1), true
	}
}

// SurfaceNormal returns the outward unit normal at hitPoint
func (s *Sphere) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return hitPoint.Subtract(s.Center).Normalize()
}

// TextureCoords maps hitPoint to longitude/latitude, both in [0, 1]
func (s *Sphere) TextureCoords(hitPoint core.Point) TextureCoords {
	hitVec := hitPoint.Subtract(s.Center)
	return TextureCoords{
		X: float32((1.0 + math.Atan2(hitVec.Z, hitVec.X)/math.Pi) * 0.5),
		Y: float32(math.Acos(hitVec.Y/s.Radius) / math.Pi),
	}
}

// GetMaterial returns the sphere's material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}

func (s *Sphere) isElement() {}
