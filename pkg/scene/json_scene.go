package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewJSONScene creates a scene from a JSON scene file
func NewJSONScene(filepath string) (*Scene, error) {
	desc, err := loaders.LoadJSON(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to load JSON scene: %w", err)
	}
	return FromDescription(desc)
}

// FromDescription converts a parsed scene description and validates the result
func FromDescription(desc *loaders.SceneDescription) (*Scene, error) {
	s := &Scene{
		Width:             desc.Width,
		Height:            desc.Height,
		FOV:               desc.FOV,
		ShadowBias:        desc.ShadowBias,
		MaxRecursionDepth: desc.MaxRecursionDepth,
		Elements:          make([]geometry.Element, 0, len(desc.Elements)),
		Lights:            make([]lights.Light, 0, len(desc.Lights)),
	}

	for i, e := range desc.Elements {
		element, err := convertElement(e)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		s.Elements = append(s.Elements, element)
	}

	for i, l := range desc.Lights {
		light, err := convertLight(l)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.Lights = append(s.Lights, light)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func convertElement(e loaders.ElementDescription) (geometry.Element, error) {
	mat := convertMaterial(e.Material)

	switch e.Type {
	case "sphere":
		if e.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %g", e.Radius)
		}
		return geometry.NewSphere(toPoint(e.Center), e.Radius, mat), nil
	case "plane":
		normal := toVec3(e.Normal)
		if normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("plane normal must not be zero")
		}
		return geometry.NewPlane(toPoint(e.Origin), normal, mat), nil
	default:
		return nil, fmt.Errorf("%w %q", loaders.ErrUnknownElementType, e.Type)
	}
}

func convertMaterial(m loaders.MaterialDescription) material.Material {
	color := core.NewColor(m.Color[0], m.Color[1], m.Color[2])

	switch m.Surface {
	case "reflective":
		return material.NewReflective(color, m.Albedo, m.Reflectivity)
	case "refractive":
		return material.NewRefractive(color, m.Albedo, m.Index, m.Transparency)
	default:
		return material.NewDiffuse(color, m.Albedo)
	}
}

func convertLight(l loaders.LightDescription) (lights.Light, error) {
	color := core.NewColor(l.Color[0], l.Color[1], l.Color[2])

	switch l.Type {
	case "directional":
		direction := toVec3(l.Direction)
		if direction.LengthSquared() == 0 {
			return nil, fmt.Errorf("directional light direction must not be zero")
		}
		return lights.NewDirectionalLight(direction, color, l.Intensity), nil
	case "spherical":
		return lights.NewSphericalLight(toPoint(l.Position), color, l.Intensity), nil
	default:
		return nil, fmt.Errorf("%w %q", loaders.ErrUnknownLightType, l.Type)
	}
}

func toPoint(v [3]float64) core.Point {
	return core.NewPoint(v[0], v[1], v[2])
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
