package geometry

// TextureCoords are 2D surface coordinates of a hit point
type TextureCoords struct {
	X, Y float32
}
