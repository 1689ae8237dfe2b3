package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SurfaceType names the closed set of surface kinds
type SurfaceType string

const (
	SurfaceDiffuse    SurfaceType = "diffuse"
	SurfaceReflective SurfaceType = "reflective"
	SurfaceRefractive SurfaceType = "refractive"
)

// Surface classifies how light leaves a material. The set of implementations
// is closed: Diffuse, Reflective and Refractive.
type Surface interface {
	Type() SurfaceType
	isSurface()
}

// Material describes the appearance of an element
type Material struct {
	Color   core.Color // Base surface color
	Albedo  float32    // Diffuse reflectance in (0, 1]
	Surface Surface    // Diffuse, Reflective or Refractive
}

// NewMaterial creates a new material
func NewMaterial(color core.Color, albedo float32, surface Surface) Material {
	return Material{Color: color, Albedo: albedo, Surface: surface}
}
