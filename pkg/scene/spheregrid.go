package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(float32(r), float32(g), float32(blue)).Clamp()
}

// NewSphereGridScene creates a grid of colored spheres standing on a mirror
// floor. Hue varies across columns, chroma across rows, and every third
// sphere is a mirror.
func NewSphereGridScene() *Scene {
	s := &Scene{
		Width:             640,
		Height:            360,
		FOV:               60,
		ShadowBias:        1e-9,
		MaxRecursionDepth: 6,
	}

	floor := material.NewReflective(core.NewColor(0.5, 0.5, 0.5), 0.3, 0.3)
	s.Elements = append(s.Elements,
		geometry.NewPlane(core.NewPoint(0, -1.5, 0), core.NewVec3(0, -1, 0), floor))

	columns, rows := 8, 5
	spacing := 1.1
	radius := spacing * 0.4

	// OKLCH parameters for color variation
	baseLightness := 0.7
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < columns; i++ {
		for j := 0; j < rows; j++ {
			x := (float64(i) - float64(columns-1)/2.0) * spacing
			z := -5.0 - float64(j)*spacing
			center := core.NewPoint(x, -1.5+radius, z)

			hue := (float64(i) / float64(columns-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(rows-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat material.Material
			if (i+j)%3 == 0 {
				mat = material.NewReflective(color, 0.5, 0.7)
			} else {
				mat = material.NewDiffuse(color, 0.8)
			}
			s.Elements = append(s.Elements, geometry.NewSphere(center, radius, mat))
		}
	}

	s.Lights = append(s.Lights,
		lights.NewSphericalLight(core.NewPoint(-4, 6, -2), core.NewColor(1.0, 0.95, 0.9), 6000),
		lights.NewDirectionalLight(core.NewVec3(0.5, -1, -0.5), core.NewColor(0.6, 0.7, 1.0), 0.4),
	)

	return s
}
