package geom

// Pose is the position and heading of a movable entity
// Rotation is in degrees, clockwise-positive in screen space
type Pose struct {
	X, Y     float64
	Rotation float64
}

// Rect is a rectangle with its origin at the top-left corner.
// Rotation is applied about the origin, not the geometric center;
// use CornersCentered for center-pivot rotation.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the geometric center of the unrotated footprint
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners returns the four corner points in world space, in local
// order (0,0), (w,0), (w,h), (0,h): rotate about the origin, then
// translate. With Rotation == 0 this is exactly the axis-aligned
// corner set.
func Corners(r Rect) [4]Point {
	local := [4]Point{
		{0, 0},
		{r.Width, 0},
		{r.Width, r.Height},
		{0, r.Height},
	}
	var out [4]Point
	for i, p := range local {
		rp := p.Rotate(r.Rotation)
		out[i] = Point{X: r.X + rp.X, Y: r.Y + rp.Y}
	}
	return out
}

// CornersCentered returns the corners of a w×h rectangle rotated
// about its geometric center at c
func CornersCentered(c Point, w, h, rotation float64) [4]Point {
	local := [4]Point{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{w / 2, h / 2},
		{-w / 2, h / 2},
	}
	var out [4]Point
	for i, p := range local {
		rp := p.Rotate(rotation)
		out[i] = Point{X: c.X + rp.X, Y: c.Y + rp.Y}
	}
	return out
}

// ContainsPoint reports whether p lies within the closed bounds of
// zone, ignoring zone rotation. Boundary equality counts as inside.
func ContainsPoint(zone Rect, p Point) bool {
	return p.X >= zone.Left() && p.X <= zone.Right() &&
		p.Y >= zone.Top() && p.Y <= zone.Bottom()
}

// ContainsPoints reports whether every point lies within zone's
// closed bounds. Partial overlap is never contained.
func ContainsPoints(zone Rect, pts []Point) bool {
	for _, p := range pts {
		if !ContainsPoint(zone, p) {
			return false
		}
	}
	return true
}

// ContainsRect reports whether r lies fully within zone, comparing
// axis-aligned edges with inclusive bounds. Rotation on either rect
// is ignored; callers must ensure r is axis-aligned at test time.
func ContainsRect(zone, r Rect) bool {
	return r.Left() >= zone.Left() && r.Right() <= zone.Right() &&
		r.Top() >= zone.Top() && r.Bottom() <= zone.Bottom()
}

// Contains reports whether p lies inside r, accounting for r's
// rotation about its origin. Used for cell-sampling a rotated body.
func (r Rect) Contains(p Point) bool {
	// Inverse-rotate p into the rect's local frame
	local := p.Sub(Point{X: r.X, Y: r.Y}).Rotate(-r.Rotation)
	return local.X >= 0 && local.X <= r.Width &&
		local.Y >= 0 && local.Y <= r.Height
}
