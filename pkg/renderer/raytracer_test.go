package renderer

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func assertMirrored(t *testing.T, buf *ImageBuffer) {
	t.Helper()
	const tolerance = 1e-6
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width/2; x++ {
			left, right := buf.At(x, y), buf.At(buf.Width-1-x, y)
			d := left.Add(right.Multiply(-1))
			if d.Red > tolerance || d.Red < -tolerance ||
				d.Green > tolerance || d.Green < -tolerance ||
				d.Blue > tolerance || d.Blue < -tolerance {
				t.Errorf("Pixels (%d,%d) and (%d,%d) differ: %v vs %v", x, y, buf.Width-1-x, y, left, right)
			}
		}
	}
}

// TestRenderSingleSphere renders a lit sphere on the camera axis
func TestRenderSingleSphere(t *testing.T) {
	s := scene.NewSimpleScene().WithOverrides(scene.Overrides{Width: 8, Height: 8})
	buf := Render(s)

	if buf.Width != 8 || buf.Height != 8 || len(buf.Data) != 64 {
		t.Fatalf("Unexpected buffer shape %dx%d (%d cells)", buf.Width, buf.Height, len(buf.Data))
	}

	for _, p := range [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		if buf.At(p[0], p[1]).IsBlack() {
			t.Errorf("Expected center pixel (%d,%d) to be lit", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{0, 0}, {7, 0}, {0, 7}, {7, 7}} {
		if !buf.At(p[0], p[1]).IsBlack() {
			t.Errorf("Expected corner pixel (%d,%d) to be black, got %v", p[0], p[1], buf.At(p[0], p[1]))
		}
	}
	assertMirrored(t, buf)
}

// TestRenderTwoByTwo covers a sphere that fills a 2x2 image
func TestRenderTwoByTwo(t *testing.T) {
	s := scene.NewSimpleScene().WithOverrides(scene.Overrides{Width: 2, Height: 2})
	s.Elements = []geometry.Element{
		geometry.NewSphere(core.NewPoint(0, 0, -2), 1.5, material.NewDiffuse(core.White, 1)),
	}

	buf := Render(s)
	for i, c := range buf.Data {
		if c.IsBlack() {
			t.Errorf("Expected pixel %d to be lit", i)
		}
	}
	assertMirrored(t, buf)
}

func TestRenderZeroDepthIsBlack(t *testing.T) {
	zero := 0
	s := scene.NewSimpleScene().WithOverrides(scene.Overrides{Width: 8, Height: 8, MaxRecursionDepth: &zero})

	for i, c := range Render(s).Data {
		if !c.IsBlack() {
			t.Fatalf("Expected pixel %d to be black with zero recursion depth, got %v", i, c)
		}
	}
}

func TestRenderBlackScenes(t *testing.T) {
	testCases := []struct {
		name  string
		scene *scene.Scene
	}{
		{"empty", scene.NewEmptyScene()},
		{"mirror without lights", scene.NewMirrorScene()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.scene.WithOverrides(scene.Overrides{Width: 16, Height: 16})
			for i, c := range Render(s).Data {
				if !c.IsBlack() {
					t.Fatalf("Expected pixel %d to be black, got %v", i, c)
				}
			}
		})
	}
}

// TestRenderDeterministic renders the same scene twice
func TestRenderDeterministic(t *testing.T) {
	s := scene.NewDefaultScene().WithOverrides(scene.Overrides{Width: 24, Height: 24})

	first := Render(s)
	second := Render(s)

	for i := range first.Data {
		if first.Data[i] != second.Data[i] {
			t.Fatalf("Pixel %d differs between renders: %v vs %v", i, first.Data[i], second.Data[i])
		}
	}
}
