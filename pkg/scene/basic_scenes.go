package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSimpleScene creates a single matte white sphere on the camera axis lit
// by a directional light shining along the view direction
func NewSimpleScene() *Scene {
	return &Scene{
		Width:  64,
		Height: 64,
		FOV:    90,
		Elements: []geometry.Element{
			geometry.NewSphere(core.NewPoint(0, 0, -5), 1.5, material.NewDiffuse(core.White, 1.0)),
		},
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.White, 1.0),
		},
		ShadowBias:        1e-9,
		MaxRecursionDepth: 1,
	}
}

// NewMirrorScene creates a perfect mirror sphere with no lights. Every pixel
// renders black.
func NewMirrorScene() *Scene {
	return &Scene{
		Width:  64,
		Height: 64,
		FOV:    90,
		Elements: []geometry.Element{
			geometry.NewSphere(core.NewPoint(0, 0, -4), 2.0, material.NewReflective(core.White, 0.5, 1.0)),
		},
		ShadowBias:        1e-9,
		MaxRecursionDepth: 5,
	}
}

// NewGlassScene creates a glass sphere in front of a lit wall and floor,
// exercising refraction, Fresnel blending and total internal reflection
func NewGlassScene() *Scene {
	glass := material.NewRefractive(core.White, 0.5, 1.5, 1.0)
	red := material.NewDiffuse(core.NewColor(0.9, 0.2, 0.2), 0.6)
	grey := material.NewDiffuse(core.NewColor(0.8, 0.8, 0.8), 0.4)

	return &Scene{
		Width:  320,
		Height: 240,
		FOV:    60,
		Elements: []geometry.Element{
			geometry.NewSphere(core.NewPoint(0, 0, -5), 1.2, glass),
			geometry.NewSphere(core.NewPoint(-1.5, -0.5, -9), 1.0, red),
			geometry.NewPlane(core.NewPoint(0, -1.5, 0), core.NewVec3(0, -1, 0), grey),
			geometry.NewPlane(core.NewPoint(0, 0, -14), core.NewVec3(0, 0, -1), grey),
		},
		Lights: []lights.Light{
			lights.NewSphericalLight(core.NewPoint(2, 6, -3), core.White, 8000),
			lights.NewDirectionalLight(core.NewVec3(-0.3, -1, -0.5), core.White, 0.3),
		},
		ShadowBias:        1e-9,
		MaxRecursionDepth: 8,
	}
}

// NewEmptyScene creates a scene with nothing in it
func NewEmptyScene() *Scene {
	return &Scene{
		Width:             64,
		Height:            64,
		FOV:               90,
		ShadowBias:        1e-9,
		MaxRecursionDepth: 5,
	}
}
