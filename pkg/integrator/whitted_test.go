package integrator

import (
	"math"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const testBias = 1e-4

// createFloorScene creates a matte floor at y=-1 lit from straight above
func createFloorScene(albedo float32, extra ...geometry.Element) *scene.Scene {
	floor := geometry.NewPlane(core.NewPoint(0, -1, 0), core.NewVec3(0, -1, 0), material.NewDiffuse(core.White, albedo))
	return &scene.Scene{
		Width:             16,
		Height:            16,
		FOV:               90,
		Elements:          append([]geometry.Element{floor}, extra...),
		Lights:            []lights.Light{lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.White, 1)},
		ShadowBias:        testBias,
		MaxRecursionDepth: 3,
	}
}

// floorRay hits the floor at (1, -1, 0) without passing above it
var floorRay = core.NewRay(core.NewPoint(2, 0, 0), core.NewVec3(-1, -1, 0).Normalize())

func assertColor(t *testing.T, got, want core.Color) {
	t.Helper()
	const tolerance = 1e-5
	if math32.Abs(got.Red-want.Red) > tolerance ||
		math32.Abs(got.Green-want.Green) > tolerance ||
		math32.Abs(got.Blue-want.Blue) > tolerance {
		t.Errorf("Expected color %v, got %v", want, got)
	}
}

// TestWhittedLambertian checks the exact diffuse term albedo/pi * cos * intensity
func TestWhittedLambertian(t *testing.T) {
	w := NewWhittedIntegrator()

	testCases := []struct {
		name   string
		albedo float32
	}{
		{"dim", 0.18},
		{"half", 0.5},
		{"full", 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := w.CastRay(createFloorScene(tc.albedo), floorRay, 0)
			expected := tc.albedo / math32.Pi
			assertColor(t, got, core.NewColor(expected, expected, expected))
		})
	}
}

// TestWhittedShadow checks that an occluder between the surface and the light
// removes its contribution
func TestWhittedShadow(t *testing.T) {
	w := NewWhittedIntegrator()
	blocker := geometry.NewSphere(core.NewPoint(1, 3, 0), 0.5, material.NewDiffuse(core.White, 1))

	got := w.CastRay(createFloorScene(0.5, blocker), floorRay, 0)
	if !got.IsBlack() {
		t.Errorf("Expected shadowed point to be black, got %v", got)
	}
}

// TestWhittedOccluderBeyondLight checks that geometry behind a spherical light
// does not shadow
func TestWhittedOccluderBeyondLight(t *testing.T) {
	w := NewWhittedIntegrator()
	beyond := geometry.NewSphere(core.NewPoint(1, 3, 0), 0.5, material.NewDiffuse(core.White, 1))

	s := createFloorScene(0.5, beyond)
	// Two units above the hit point; power 16*pi gives unit intensity there
	s.Lights = []lights.Light{lights.NewSphericalLight(core.NewPoint(1, 1, 0), core.White, 16*math32.Pi)}

	got := w.CastRay(s, floorRay, 0)
	expected := float32(0.5) / math32.Pi
	assertColor(t, got, core.NewColor(expected, expected, expected))
}

func TestWhittedLightBehindSurface(t *testing.T) {
	w := NewWhittedIntegrator()
	s := createFloorScene(1)
	s.Lights = []lights.Light{lights.NewDirectionalLight(core.NewVec3(0, 1, 0), core.White, 1)}

	if got := w.CastRay(s, floorRay, 0); !got.IsBlack() {
		t.Errorf("Expected light from below the floor to contribute nothing, got %v", got)
	}
}

func TestWhittedClampsDiffuse(t *testing.T) {
	w := NewWhittedIntegrator()
	s := createFloorScene(1)
	s.Lights = []lights.Light{lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.White, 1000)}

	assertColor(t, w.CastRay(s, floorRay, 0), core.White)
}

// TestWhittedTermination checks that every surface kind returns black once
// the depth limit is reached
func TestWhittedTermination(t *testing.T) {
	w := NewWhittedIntegrator()

	materials := map[string]material.Material{
		"diffuse":    material.NewDiffuse(core.White, 1),
		"reflective": material.NewReflective(core.White, 1, 0.5),
		"refractive": material.NewRefractive(core.White, 1, 1.5, 1),
	}

	for name, mat := range materials {
		t.Run(name, func(t *testing.T) {
			s := createFloorScene(1)
			s.Elements = append(s.Elements, geometry.NewSphere(core.NewPoint(0, 0, -3), 1, mat))
			ray := core.NewRay(core.Origin, core.NewVec3(0, 0, -1))

			for _, depth := range []int{s.MaxRecursionDepth, s.MaxRecursionDepth + 1} {
				if got := w.CastRay(s, ray, depth); !got.IsBlack() {
					t.Errorf("depth %d: expected black, got %v", depth, got)
				}
			}

			s.MaxRecursionDepth = 0
			if got := w.CastRay(s, ray, 0); !got.IsBlack() {
				t.Errorf("zero recursion depth: expected black, got %v", got)
			}
		})
	}
}

func TestWhittedMiss(t *testing.T) {
	w := NewWhittedIntegrator()
	ray := core.NewRay(core.Origin, core.NewVec3(0, 1, 0))

	if got := w.CastRay(createFloorScene(1), ray, 0); !got.IsBlack() {
		t.Errorf("Expected miss to be black, got %v", got)
	}
	if got := w.CastRay(scene.NewEmptyScene(), ray, 0); !got.IsBlack() {
		t.Errorf("Expected empty scene to be black, got %v", got)
	}
}

// TestWhittedMirrorWithoutLights checks that mirrors reflect only light that
// exists somewhere in the scene
func TestWhittedMirrorWithoutLights(t *testing.T) {
	w := NewWhittedIntegrator()
	s := scene.NewMirrorScene()

	for _, x := range []float64{-0.4, -0.1, 0, 0.2, 0.45} {
		for _, y := range []float64{-0.4, 0, 0.3} {
			ray := core.NewRay(core.Origin, core.NewVec3(x, y, -1).Normalize())
			if got := w.CastRay(s, ray, 0); !got.IsBlack() {
				t.Errorf("ray (%v, %v): expected black, got %v", x, y, got)
			}
		}
	}
}

func TestWhittedReflectivityBlend(t *testing.T) {
	w := NewWhittedIntegrator()
	diffuse := w.CastRay(createFloorScene(0.5), floorRay, 0)

	testCases := []struct {
		name         string
		reflectivity float32
		expected     core.Color
	}{
		// The mirror ray points up into empty space
		{"no reflection", 0, diffuse},
		{"half", 0.5, diffuse.Multiply(0.5)},
		{"perfect mirror", 1, core.Black},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := createFloorScene(0.5)
			s.Elements[0] = geometry.NewPlane(core.NewPoint(0, -1, 0), core.NewVec3(0, -1, 0), material.NewReflective(core.White, 0.5, tc.reflectivity))
			assertColor(t, w.CastRay(s, floorRay, 0), tc.expected)
		})
	}
}

func TestWhittedReflectionSeesLitSurface(t *testing.T) {
	w := NewWhittedIntegrator()
	// A vertical mirror wall at x=3 facing the origin
	wall := geometry.NewPlane(core.NewPoint(3, 0, 0), core.NewVec3(1, 0, 0), material.NewReflective(core.White, 0.5, 1))
	s := createFloorScene(0.5, wall)

	ray := core.NewRay(core.Origin, core.NewVec3(1, -0.2, 0).Normalize())
	if got := w.CastRay(s, ray, 0); got.IsBlack() {
		t.Error("Expected mirror to reflect the lit floor")
	}
}

func TestWhittedRefractive(t *testing.T) {
	w := NewWhittedIntegrator()
	ray := core.NewRay(core.NewPoint(0, 2, 0), core.NewVec3(0, -1, 0))

	t.Run("opaque", func(t *testing.T) {
		s := createFloorScene(0.5, geometry.NewSphere(core.NewPoint(0, 0, 0), 0.5, material.NewRefractive(core.White, 1, 1.5, 0)))
		if got := w.CastRay(s, ray, 0); !got.IsBlack() {
			t.Errorf("Expected zero transparency to be black, got %v", got)
		}
	})

	// Light arrives at 45 degrees so the floor under the sphere is not in its shadow
	sideLight := []lights.Light{lights.NewDirectionalLight(core.NewVec3(-1, -1, 0), core.White, 1)}

	t.Run("see through", func(t *testing.T) {
		s := createFloorScene(0.5, geometry.NewSphere(core.NewPoint(0, 0, 0), 0.5, material.NewRefractive(core.White, 1, 1.5, 1)))
		s.Lights = sideLight
		s.MaxRecursionDepth = 6
		got := w.CastRay(s, ray, 0)
		if got.IsBlack() {
			t.Error("Expected light transmitted from the floor")
		}
		if got.Red > 1 || got.Green > 1 || got.Blue > 1 {
			t.Errorf("Expected transmitted light to stay bounded, got %v", got)
		}
	})

	t.Run("index one is invisible", func(t *testing.T) {
		s := createFloorScene(0.5, geometry.NewSphere(core.NewPoint(0, 0, 0), 0.5, material.NewRefractive(core.White, 1, 1, 1)))
		s.Lights = sideLight
		s.MaxRecursionDepth = 6

		bare := createFloorScene(0.5)
		bare.Lights = sideLight
		assertColor(t, w.CastRay(s, ray, 0), w.CastRay(bare, ray, 0))
	})
}

// TestWhittedTotalInternalReflection casts a grazing ray from inside a glass
// sphere, where no transmitted ray exists
func TestWhittedTotalInternalReflection(t *testing.T) {
	w := NewWhittedIntegrator()
	s := createFloorScene(0.5, geometry.NewSphere(core.NewPoint(0, 0, 0), 0.9, material.NewRefractive(core.White, 1, 1.5, 1)))
	s.MaxRecursionDepth = 5

	ray := core.NewRay(core.NewPoint(0, 0.85, 0), core.NewVec3(1, 0, 0))
	got := w.CastRay(s, ray, 0)

	for _, c := range []float32{got.Red, got.Green, got.Blue} {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) || c < 0 {
			t.Fatalf("Expected finite non-negative color under total internal reflection, got %v", got)
		}
	}
}
