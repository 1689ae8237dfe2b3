package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	if got := NewVec3(1, 2, 3).Dot(NewVec3(4, -5, 6)); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := NewVec3(1, 0, 0).Dot(NewVec3(0, 1, 0)); got != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()

	const tolerance = 1e-12
	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	expected := NewVec3(3.0/13.0, 4.0/13.0, 12.0/13.0)
	if v.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestVec3_NormalizeZeroIsDegenerate(t *testing.T) {
	v := Vec3{}.Normalize()
	if !math.IsNaN(v.X) || !math.IsNaN(v.Y) || !math.IsNaN(v.Z) {
		t.Errorf("Expected NaN components for zero vector, got %v", v)
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := NewPoint(1, 1, 1)
	q := NewPoint(4, 5, 1)

	if got := q.Subtract(p); got != NewVec3(3, 4, 0) {
		t.Errorf("Expected point difference (3,4,0), got %v", got)
	}
	if got := p.Add(NewVec3(3, 4, 0)); got != q {
		t.Errorf("Expected %v, got %v", q, got)
	}
	if got := q.Subtract(p).Length(); got != 5 {
		t.Errorf("Expected distance 5, got %f", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(Origin, NewVec3(0, 0, -1))
	if got := ray.At(2.5); got != NewPoint(0, 0, -2.5) {
		t.Errorf("Expected (0,0,-2.5), got %v", got)
	}
}
