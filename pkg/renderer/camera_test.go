package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCameraRayDirections(t *testing.T) {
	tolerance := 1e-12
	tan45 := math.Tan(math.Pi / 4)

	testCases := []struct {
		name          string
		width, height int
		fov           float64
		x, y          int
		expected      core.Vec3
	}{
		{"center of odd image", 3, 3, 90, 1, 1, core.NewVec3(0, 0, -1)},
		{"top left", 2, 2, 90, 0, 0, core.NewVec3(-0.5*tan45, 0.5*tan45, -1).Normalize()},
		{"bottom right", 2, 2, 90, 1, 1, core.NewVec3(0.5*tan45, -0.5*tan45, -1).Normalize()},
		{"wide aspect", 4, 2, 90, 3, 0, core.NewVec3(1.5*tan45, 0.5*tan45, -1).Normalize()},
		{"narrow fov", 1, 1, 60, 0, 0, core.NewVec3(0, 0, -1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ray := NewCamera(tc.width, tc.height, tc.fov).GetRay(tc.x, tc.y)

			if ray.Origin != core.Origin {
				t.Errorf("Expected ray from the origin, got %v", ray.Origin)
			}
			if math.Abs(ray.Direction.Length()-1) > tolerance {
				t.Errorf("Expected unit direction, got length %v", ray.Direction.Length())
			}
			d := ray.Direction.Subtract(tc.expected)
			if d.Length() > tolerance {
				t.Errorf("Expected direction %v, got %v", tc.expected, ray.Direction)
			}
		})
	}
}

func TestCameraFieldOfView(t *testing.T) {
	// The fov spans the image height: the bottom edge of a 90 degree view is
	// 45 degrees below the axis and pixel centers sit half a pixel inside it
	height := 1000
	ray := NewCamera(1, height, 90).GetRay(0, height-1)

	angle := math.Atan2(-ray.Direction.Y, -ray.Direction.Z) * 180 / math.Pi
	if angle < 44.9 || angle >= 45 {
		t.Errorf("Expected edge ray just inside 45 degrees, got %v", angle)
	}
	if ray.Direction.X != 0 {
		t.Errorf("Expected centered column to have no x component, got %v", ray.Direction.X)
	}
}

func TestCameraHorizontalExtentScalesWithAspect(t *testing.T) {
	// A 2:1 image with a 90 degree vertical fov reaches tan = 2 horizontally
	width := 2000
	ray := NewCamera(width, 1000, 90).GetRay(width-1, 500)

	tangent := ray.Direction.X / -ray.Direction.Z
	if tangent < 1.99 || tangent >= 2 {
		t.Errorf("Expected horizontal edge tangent just inside 2, got %v", tangent)
	}
}

func TestCameraSymmetry(t *testing.T) {
	c := NewCamera(8, 6, 70)
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			left := c.GetRay(x, y).Direction
			right := c.GetRay(7-x, y).Direction
			if left.X != -right.X || left.Y != right.Y || left.Z != right.Z {
				t.Errorf("Rays (%d,%d) and (%d,%d) are not mirror images: %v vs %v", x, y, 7-x, y, left, right)
			}
		}
	}
}
