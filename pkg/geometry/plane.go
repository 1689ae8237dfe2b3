package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon is the smallest normal/direction cosine that still counts
// as a hit
const parallelEpsilon = 1e-6

// Plane represents an infinite one-sided plane defined by a point and normal.
// Rays hit it only when travelling along the stored normal, so the normal
// points away from the visible side.
type Plane struct {
	Origin   core.Point        // A point on the plane
	Normal   core.Vec3         // Normal vector (should be normalized)
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(origin core.Point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Origin:   origin,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Parallel to the plane or approaching from the back
	if denominator <= parallelEpsilon {
		return 0, false
	}

	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// SurfaceNormal returns the negated plane normal, facing incoming rays
func (p *Plane) SurfaceNormal(hitPoint core.Point) core.Vec3 {
	return p.Normal.Negate()
}

// TextureCoords projects hitPoint onto an orthonormal basis in the plane
func (p *Plane) TextureCoords(hitPoint core.Point) TextureCoords {
	xAxis := p.Normal.Cross(core.NewVec3(0, 0, 1))
	if xAxis.LengthSquared() == 0 {
		xAxis = p.Normal.Cross(core.NewVec3(0, 1, 0))
	}
	yAxis := p.Normal.Cross(xAxis)

	hitVec := hitPoint.Subtract(p.Origin)
	return TextureCoords{
		X: float32(hitVec.Dot(xAxis)),
		Y: float32(hitVec.Dot(yAxis)),
	}
}

// GetMaterial returns the plane's material
func (p *Plane) GetMaterial() material.Material {
	return p.Material
}

func (p *Plane) isElement() {}
