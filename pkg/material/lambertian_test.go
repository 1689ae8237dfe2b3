package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSurfaceTypes(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		expected SurfaceType
	}{
		{"diffuse", NewDiffuse(core.White, 0.18), SurfaceDiffuse},
		{"reflective", NewReflective(core.White, 0.18, 0.5), SurfaceReflective},
		{"refractive", NewRefractive(core.White, 0.18, 1.5, 0.9), SurfaceRefractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.material.Surface.Type(); got != tt.expected {
				t.Errorf("Expected surface %q, got %q", tt.expected, got)
			}
			if tt.material.Albedo != 0.18 {
				t.Errorf("Expected albedo 0.18, got %f", tt.material.Albedo)
			}
		})
	}
}
