package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Element is a renderable primitive. The set of implementations is closed:
// *Sphere and *Plane.
type Element interface {
	// Intersect returns the nearest strictly positive hit distance along ray
	Intersect(ray core.Ray) (float64, bool)

	// SurfaceNormal returns the unit normal used for shading at hitPoint
	SurfaceNormal(hitPoint core.Point) core.Vec3

	// TextureCoords maps hitPoint to 2D surface coordinates
	TextureCoords(hitPoint core.Point) TextureCoords

	// GetMaterial returns the element's material
	GetMaterial() material.Material

	isElement()
}
