package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Diffuse surfaces are lit only by direct illumination and spawn no
// secondary rays
type Diffuse struct{}

func (Diffuse) Type() SurfaceType { return SurfaceDiffuse }
func (Diffuse) isSurface()        {}

// NewDiffuse creates a new diffuse material
func NewDiffuse(color core.Color, albedo float32) Material {
	return NewMaterial(color, albedo, Diffuse{})
}
