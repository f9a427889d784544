package geom

import "math"

// Point is a position in world space (screen units, y grows downward)
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared returns the squared distance without sqrt
// Use when comparing distances to avoid the sqrt cost
func DistanceSquared(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Rotate rotates p about the origin by angle degrees,
// clockwise-positive in screen space (y down)
func (p Point) Rotate(degrees float64) Point {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
