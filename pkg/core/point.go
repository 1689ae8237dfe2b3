package core

// Point is a position in world space. It is kept distinct from Vec3 so that
// adding two points does not type check.
type Point struct {
	X, Y, Z float64
}

// Origin is the world-space zero point where the camera sits
var Origin = Point{}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Subtract returns the vector pointing from other to p
func (p Point) Subtract(other Point) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Add returns the point displaced by v
func (p Point) Add(v Vec3) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Vec returns the position vector of p relative to the origin
func (p Point) Vec() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}
