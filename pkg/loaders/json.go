package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrUnknownElementType = errors.New("loaders: unknown element type")
	ErrUnknownLightType   = errors.New("loaders: unknown light type")
	ErrUnknownSurfaceType = errors.New("loaders: unknown surface type")
)

// SceneDescription is the on-disk JSON form of a scene
type SceneDescription struct {
	// Metadata used by scene discovery
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group,omitempty"`

	Width             int     `json:"width"`
	Height            int     `json:"height"`
	FOV               float64 `json:"fov"`
	ShadowBias        float64 `json:"shadowBias"`
	MaxRecursionDepth int     `json:"maxRecursionDepth"`

	Elements []ElementDescription `json:"elements"`
	Lights   []LightDescription   `json:"lights"`
}

// ElementDescription describes a sphere or a plane
type ElementDescription struct {
	Type     string              `json:"type"`             // "sphere" or "plane"
	Center   [3]float64          `json:"center,omitempty"` // sphere
	Radius   float64             `json:"radius,omitempty"` // sphere
	Origin   [3]float64          `json:"origin,omitempty"` // plane
	Normal   [3]float64          `json:"normal,omitempty"` // plane
	Material MaterialDescription `json:"material"`
}

// MaterialDescription describes a material and its surface kind
type MaterialDescription struct {
	Color        [3]float32 `json:"color"`
	Albedo       float32    `json:"albedo"`
	Surface      string     `json:"surface"` // "diffuse", "reflective" or "refractive"
	Reflectivity float32    `json:"reflectivity,omitempty"`
	Index        float32    `json:"index,omitempty"`
	Transparency float32    `json:"transparency,omitempty"`
}

// LightDescription describes a directional or spherical light
type LightDescription struct {
	Type      string     `json:"type"`                // "directional" or "spherical"
	Direction [3]float64 `json:"direction,omitempty"` // directional
	Position  [3]float64 `json:"position,omitempty"`  // spherical
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
}

// LoadJSON loads a scene description from a JSON file
func LoadJSON(filename string) (*SceneDescription, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := ParseJSON(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return desc, nil
}

// ParseJSON parses a scene description from an io.Reader
func ParseJSON(reader io.Reader) (*SceneDescription, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var desc SceneDescription
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}

	if err := desc.validateTypes(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// validateTypes checks the type tags; numeric ranges are checked once the
// scene is built
func (d *SceneDescription) validateTypes() error {
	for i, e := range d.Elements {
		switch e.Type {
		case "sphere", "plane":
		default:
			return fmt.Errorf("element %d: %w %q", i, ErrUnknownElementType, e.Type)
		}
		switch e.Material.Surface {
		case "", "diffuse", "reflective", "refractive":
		default:
			return fmt.Errorf("element %d: %w %q", i, ErrUnknownSurfaceType, e.Material.Surface)
		}
	}
	for i, l := range d.Lights {
		switch l.Type {
		case "directional", "spherical":
		default:
			return fmt.Errorf("light %d: %w %q", i, ErrUnknownLightType, l.Type)
		}
	}
	return nil
}
