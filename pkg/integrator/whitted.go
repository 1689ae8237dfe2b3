package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements classic recursive ray tracing: direct
// lighting with hard shadows plus perfect mirror reflection and refraction.
// It holds no state and is safe for concurrent use.
type WhittedIntegrator struct{}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{}
}

// CastRay computes the color for a single ray. Rays at or past the scene's
// recursion limit, and rays that hit nothing, are black.
func (w *WhittedIntegrator) CastRay(s *scene.Scene, ray core.Ray, depth int) core.Color {
	if depth >= s.MaxRecursionDepth {
		return core.Black
	}

	hit, isHit := s.Trace(ray)
	if !isHit {
		return core.Black
	}

	return w.getColor(s, ray, hit, depth)
}

// getColor shades the hit according to the element's surface kind
func (w *WhittedIntegrator) getColor(s *scene.Scene, ray core.Ray, hit scene.Intersection, depth int) core.Color {
	hitPoint := ray.At(hit.Distance)
	element := s.Element(hit)
	normal := element.SurfaceNormal(hitPoint)
	mat := element.GetMaterial()

	switch surface := mat.Surface.(type) {
	case material.Reflective:
		return w.calculateReflectiveColor(s, ray, element, hitPoint, normal, surface, depth)
	case material.Refractive:
		return w.calculateRefractiveColor(s, ray, mat, hitPoint, normal, surface, depth)
	default:
		return w.shadeDiffuse(s, element, hitPoint, normal)
	}
}

// calculateReflectiveColor blends diffuse shading with the mirror ray by the
// surface's reflectivity
func (w *WhittedIntegrator) calculateReflectiveColor(s *scene.Scene, ray core.Ray, element geometry.Element, hitPoint core.Point, normal core.Vec3, surface material.Reflective, depth int) core.Color {
	diffuse := w.shadeDiffuse(s, element, hitPoint, normal)
	reflectionRay := material.NewReflectionRay(normal, ray.Direction, hitPoint, s.ShadowBias)
	reflected := w.CastRay(s, reflectionRay, depth+1)

	return diffuse.Multiply(1 - surface.Reflectivity).Add(reflected.Multiply(surface.Reflectivity))
}

// calculateRefractiveColor blends reflection and transmission by the Fresnel
// term, then tints by transparency and surface color. Under total internal
// reflection only the reflected ray contributes.
func (w *WhittedIntegrator) calculateRefractiveColor(s *scene.Scene, ray core.Ray, mat material.Material, hitPoint core.Point, normal core.Vec3, surface material.Refractive, depth int) core.Color {
	kr := float32(material.Fresnel(ray.Direction, normal, surface.Index))

	refractionColor := core.Black
	if kr < 1 {
		if transmissionRay, ok := material.NewTransmissionRay(normal, ray.Direction, hitPoint, s.ShadowBias, surface.Index); ok {
			refractionColor = w.CastRay(s, transmissionRay, depth+1)
		}
	}

	reflectionRay := material.NewReflectionRay(normal, ray.Direction, hitPoint, s.ShadowBias)
	reflectionColor := w.CastRay(s, reflectionRay, depth+1)

	color := reflectionColor.Multiply(kr).Add(refractionColor.Multiply(1 - kr))
	return color.Multiply(surface.Transparency).MultiplyColor(mat.Color)
}

// shadeDiffuse sums the Lambertian contribution of every unoccluded light
func (w *WhittedIntegrator) shadeDiffuse(s *scene.Scene, element geometry.Element, hitPoint core.Point, normal core.Vec3) core.Color {
	mat := element.GetMaterial()
	reflected := mat.Albedo / math32.Pi
	color := core.Black

	for _, light := range s.Lights {
		directionToLight := light.DirectionFrom(hitPoint)

		if w.inShadow(s, hitPoint, normal, directionToLight, light.Distance(hitPoint)) {
			continue
		}

		cosine := float32(normal.Dot(directionToLight))
		if cosine <= 0 {
			// Light is behind the surface
			continue
		}

		power := cosine * light.Intensity(hitPoint)
		lightColor := light.GetColor().Multiply(power * reflected)
		color = color.Add(mat.Color.MultiplyColor(lightColor))
	}

	return color.Clamp()
}

// inShadow reports whether an element sits strictly between the biased hit
// point and the light. An occluder exactly at the light's distance does not
// block it.
func (w *WhittedIntegrator) inShadow(s *scene.Scene, hitPoint core.Point, normal, directionToLight core.Vec3, lightDistance float64) bool {
	shadowRay := core.NewRay(hitPoint.Add(normal.Multiply(s.ShadowBias)), directionToLight)
	blocker, blocked := s.Trace(shadowRay)
	return blocked && blocker.Distance < lightDistance
}
