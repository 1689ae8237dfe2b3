package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the showcase scene: a mirror, a matte and a glass
// sphere over a reflective floor in front of a blue back wall
func NewDefaultScene() *Scene {
	// Create materials
	pinkMirror := material.NewReflective(core.NewColor(0.8, 0.2, 0.4), 0.6, 0.9)
	salmon := material.NewDiffuse(core.NewColor(1.0, 0.4, 0.4), 0.7)
	blueGlass := material.NewRefractive(core.NewColor(0.4, 0.4, 0.8), 0.5, 2.0, 0.9)
	floorMirror := material.NewReflective(core.NewColor(1.0, 1.0, 1.0), 0.18, 0.5)
	wallBlue := material.NewDiffuse(core.NewColor(0.2, 0.3, 1.0), 0.38)

	return &Scene{
		Width:  1024,
		Height: 1024,
		FOV:    90,
		Elements: []geometry.Element{
			geometry.NewSphere(core.NewPoint(1.0, -1.0, -7.0), 1.0, pinkMirror),
			geometry.NewSphere(core.NewPoint(-2.0, 1.0, -10.0), 3.0, salmon),
			geometry.NewSphere(core.NewPoint(3.0, 2.0, -5.0), 2.0, blueGlass),
			geometry.NewPlane(core.NewPoint(0.0, -2.0, -5.0), core.NewVec3(0, -1, 0), floorMirror),
			geometry.NewPlane(core.NewPoint(0.0, 0.0, -20.0), core.NewVec3(0, 0, -1), wallBlue),
		},
		Lights: []lights.Light{
			lights.NewSphericalLight(core.NewPoint(5.0, 10.0, -3.0), core.White, 16000),
			lights.NewSphericalLight(core.NewPoint(-3.0, 3.0, -5.0), core.NewColor(0.3, 0.3, 1.0), 1000),
			lights.NewDirectionalLight(core.NewVec3(0.0, -1.0, -1.0), core.NewColor(0.8, 0.8, 0.8), 0.2),
		},
		ShadowBias:        1e-13,
		MaxRecursionDepth: 10,
	}
}
