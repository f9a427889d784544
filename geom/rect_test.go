package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

// TestCornersUnrotated verifies rotation 0 reproduces the axis-aligned corners
func TestCornersUnrotated(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 40, Height: 30}
	got := Corners(r)
	want := [4]Point{
		{10, 20},
		{50, 20},
		{50, 50},
		{10, 50},
	}
	for i := range want {
		if !pointsClose(got[i], want[i]) {
			t.Errorf("Corner %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestCornersQuarterTurn verifies a 90° clockwise rotation about the origin
func TestCornersQuarterTurn(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 40, Height: 30, Rotation: 90}
	got := Corners(r)
	// (w,0) rotates to (0,w); (w,h) to (-h,w); (0,h) to (-h,0)
	want := [4]Point{
		{0, 0},
		{0, 40},
		{-30, 40},
		{-30, 0},
	}
	for i := range want {
		if !pointsClose(got[i], want[i]) {
			t.Errorf("Corner %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestCornersTranslated verifies rotate-then-translate ordering
func TestCornersTranslated(t *testing.T) {
	r := Rect{X: 100, Y: 200, Width: 10, Height: 10, Rotation: 180}
	got := Corners(r)
	want := [4]Point{
		{100, 200},
		{90, 200},
		{90, 190},
		{100, 190},
	}
	for i := range want {
		if !pointsClose(got[i], want[i]) {
			t.Errorf("Corner %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestCornersCentered(t *testing.T) {
	got := CornersCentered(Point{50, 50}, 20, 10, 0)
	want := [4]Point{
		{40, 45},
		{60, 45},
		{60, 55},
		{40, 55},
	}
	for i := range want {
		if !pointsClose(got[i], want[i]) {
			t.Errorf("Corner %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// A half turn about the center maps each corner onto its opposite
	rot := CornersCentered(Point{50, 50}, 20, 10, 180)
	for i := range rot {
		if !pointsClose(rot[i], want[(i+2)%4]) {
			t.Errorf("Rotated corner %d: expected %v, got %v", i, want[(i+2)%4], rot[i])
		}
	}
}

// TestContainsPointsInclusive verifies boundary equality counts as contained
func TestContainsPointsInclusive(t *testing.T) {
	zone := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	inside := []Point{{10, 10}, {90, 10}, {90, 90}, {10, 90}}
	if !ContainsPoints(zone, inside) {
		t.Error("Expected interior corners to be contained")
	}

	onEdge := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	if !ContainsPoints(zone, onEdge) {
		t.Error("Expected points exactly on the zone boundary to be contained")
	}
}

// TestContainsPointsFlip verifies moving one point a unit past any edge
// flips the result
func TestContainsPointsFlip(t *testing.T) {
	zone := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	base := []Point{{10, 10}, {90, 10}, {90, 90}, {10, 90}}

	outside := []Point{
		{-1, 10},  // past left
		{101, 10}, // past right
		{10, -1},  // past top
		{10, 101}, // past bottom
	}
	for _, o := range outside {
		pts := append([]Point{o}, base[1:]...)
		if ContainsPoints(zone, pts) {
			t.Errorf("Expected point %v outside zone to break containment", o)
		}
	}
}

func TestContainsRect(t *testing.T) {
	zone := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"interior", Rect{X: 10, Y: 10, Width: 80, Height: 80}, true},
		{"exact fit", Rect{X: 0, Y: 0, Width: 100, Height: 100}, true},
		{"past right edge", Rect{X: 10, Y: 10, Width: 100, Height: 80}, false},
		{"past left edge", Rect{X: -1, Y: 10, Width: 80, Height: 80}, false},
		{"past bottom edge", Rect{X: 10, Y: 30, Width: 80, Height: 80}, false},
		{"fully outside", Rect{X: 200, Y: 200, Width: 10, Height: 10}, false},
	}

	for _, tt := range tests {
		if got := ContainsRect(zone, tt.r); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

// TestContainsRectIgnoresRotation pins the axis-aligned precondition:
// the reduction never inspects rotation, even when set
func TestContainsRectIgnoresRotation(t *testing.T) {
	zone := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	r := Rect{X: 10, Y: 10, Width: 80, Height: 80, Rotation: 45}
	if !ContainsRect(zone, r) {
		t.Error("Expected rotation to be ignored by the axis-aligned reduction")
	}
}

func TestRectContainsRotated(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 40, Height: 30, Rotation: 90}
	// The rotated body occupies x in [-30,0], y in [0,40]
	if !r.Contains(Point{-15, 20}) {
		t.Error("Expected point inside rotated body to be contained")
	}
	if r.Contains(Point{15, 20}) {
		t.Error("Expected point in the unrotated footprint to be outside the rotated body")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Point{0, 0}, Point{80, 0}, 80},
		{Point{0, 0}, Point{3, 4}, 5},
		{Point{-1, -1}, Point{-1, -1}, 0},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Distance(%v, %v): expected %f, got %f", tt.a, tt.b, tt.want, got)
		}
		if got := DistanceSquared(tt.a, tt.b); math.Abs(got-tt.want*tt.want) > epsilon {
			t.Errorf("DistanceSquared(%v, %v): expected %f, got %f", tt.a, tt.b, tt.want*tt.want, got)
		}
	}
}
