package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders pixels of a single scene. It keeps no per-render state
// and can be shared by any number of goroutines.
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer for the scene
func NewRaytracer(s *scene.Scene, integ integrator.Integrator) *Raytracer {
	return &Raytracer{
		scene:      s,
		camera:     NewCamera(s.Width, s.Height, s.FOV),
		integrator: integ,
	}
}

// RenderRow shades every pixel of row y into row, which must hold
// scene.Width colors
func (rt *Raytracer) RenderRow(y int, row []core.Color) {
	for x := range row {
		ray := rt.camera.GetRay(x, y)
		row[x] = rt.integrator.CastRay(rt.scene, ray, 0)
	}
}

// Render renders the whole scene on the calling goroutine, top row first
func Render(s *scene.Scene) *ImageBuffer {
	rt := NewRaytracer(s, integrator.NewWhittedIntegrator())
	buf := NewImageBuffer(s.Width, s.Height)
	for y := 0; y < s.Height; y++ {
		rt.RenderRow(y, buf.Row(y))
	}
	return buf
}
