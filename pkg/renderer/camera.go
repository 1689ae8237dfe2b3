package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera generates primary rays. The eye sits at the origin looking down -z
// with +y up; the image plane is one unit in front of it.
type Camera struct {
	width         int
	height        int
	aspectRatio   float64
	fovAdjustment float64
}

// NewCamera creates a camera for an image of the given size and vertical
// field of view in degrees
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		width:         width,
		height:        height,
		aspectRatio:   float64(width) / float64(height),
		fovAdjustment: math.Tan((fov * math.Pi / 180.0) / 2.0),
	}
}

// GetRay returns the unit-direction ray through the center of pixel (x, y).
// Row 0 is the top of the image.
func (c *Camera) GetRay(x, y int) core.Ray {
	sensorX := (((float64(x)+0.5)/float64(c.width))*2.0 - 1.0) * c.aspectRatio * c.fovAdjustment
	sensorY := (1.0 - ((float64(y)+0.5)/float64(c.height))*2.0) * c.fovAdjustment

	return core.NewRay(core.Origin, core.NewVec3(sensorX, sensorY, -1.0).Normalize())
}

// PrimaryRay returns the camera ray for pixel (x, y) of the scene's image
func PrimaryRay(x, y int, s *scene.Scene) core.Ray {
	return NewCamera(s.Width, s.Height, s.FOV).GetRay(x, y)
}
