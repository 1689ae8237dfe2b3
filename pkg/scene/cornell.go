package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates an open-fronted box built from one-sided planes
// holding a mirror sphere and a glass sphere, lit from near the ceiling
func NewCornellScene() *Scene {
	// Create materials
	white := material.NewDiffuse(core.NewColor(0.73, 0.73, 0.73), 0.6)
	red := material.NewDiffuse(core.NewColor(0.65, 0.05, 0.05), 0.6)
	green := material.NewDiffuse(core.NewColor(0.12, 0.45, 0.15), 0.6)
	mirror := material.NewReflective(core.White, 0.3, 0.85)
	glass := material.NewRefractive(core.White, 0.3, 1.5, 0.95)

	// Box spans [-half, half] in x and y, from the camera to depth
	half := 2.0
	depth := 8.0

	// Plane normals point out of the box so rays from inside hit them
	return &Scene{
		Width:  400,
		Height: 400,
		FOV:    70,
		Elements: []geometry.Element{
			geometry.NewPlane(core.NewPoint(0, -half, 0), core.NewVec3(0, -1, 0), white), // floor
			geometry.NewPlane(core.NewPoint(0, half, 0), core.NewVec3(0, 1, 0), white),   // ceiling
			geometry.NewPlane(core.NewPoint(0, 0, -depth), core.NewVec3(0, 0, -1), white), // back
			geometry.NewPlane(core.NewPoint(-half, 0, 0), core.NewVec3(-1, 0, 0), red),    // left
			geometry.NewPlane(core.NewPoint(half, 0, 0), core.NewVec3(1, 0, 0), green),    // right
			geometry.NewSphere(core.NewPoint(-0.8, -1.3, -6), 0.7, mirror),
			geometry.NewSphere(core.NewPoint(0.8, -1.4, -4.8), 0.6, glass),
		},
		Lights: []lights.Light{
			lights.NewSphericalLight(core.NewPoint(0, half-0.2, -5), core.NewColor(1.0, 0.95, 0.85), 300),
		},
		ShadowBias:        1e-9,
		MaxRecursionDepth: 8,
	}
}
