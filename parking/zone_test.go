package parking

import (
	"testing"

	"github.com/lixenwraith/parksense/geom"
)

func TestCarParked(t *testing.T) {
	z := Zone{Bounds: geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, Label: "P1"}

	inside := [4]geom.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}
	if !CarParked(z, inside) {
		t.Error("Expected corners inside the zone to count as parked")
	}

	// Same rectangle shifted so two corners cross the right edge
	shifted := [4]geom.Point{{X: 10, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 90}, {X: 10, Y: 90}}
	if CarParked(z, shifted) {
		t.Error("Expected partial overlap to not count as parked")
	}

	// Corners exactly on the boundary are parked (inclusive bounds)
	onEdge := [4]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	if !CarParked(z, onEdge) {
		t.Error("Expected corners exactly on the zone edge to count as parked")
	}
}

func TestOccupied(t *testing.T) {
	z := Zone{Bounds: geom.Rect{X: 200, Y: 100, Width: 120, Height: 80}}

	if !Occupied(z, geom.Rect{X: 220, Y: 110, Width: 60, Height: 40}) {
		t.Error("Expected footprint inside the zone to occupy it")
	}
	if Occupied(z, geom.Rect{X: 290, Y: 110, Width: 60, Height: 40}) {
		t.Error("Expected footprint crossing the zone edge to not occupy it")
	}
}

// TestOccupiedIgnoresRotation pins the axis-aligned variant's
// behavior for a rotated pose: the test inspects only the unrotated
// footprint edges, even though a 45° body would poke outside
func TestOccupiedIgnoresRotation(t *testing.T) {
	z := Zone{Bounds: geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}}
	footprint := geom.Rect{X: 20, Y: 20, Width: 60, Height: 60, Rotation: 45}
	if !Occupied(z, footprint) {
		t.Error("Expected rotation to be ignored by the occupancy test")
	}
}

func TestLotFindSlot(t *testing.T) {
	lot := Lot{Zones: []Zone{
		{Bounds: geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, Label: "P1"},
		{Bounds: geom.Rect{X: 200, Y: 0, Width: 100, Height: 100}, Label: "P2"},
	}}

	corners := [4]geom.Point{{X: 210, Y: 10}, {X: 290, Y: 10}, {X: 290, Y: 90}, {X: 210, Y: 90}}
	z, ok := lot.FindSlot(corners)
	if !ok || z.Label != "P2" {
		t.Errorf("Expected slot P2, got %q (found=%v)", z.Label, ok)
	}

	outside := [4]geom.Point{{X: 150, Y: 10}, {X: 190, Y: 10}, {X: 190, Y: 90}, {X: 150, Y: 90}}
	if _, ok := lot.FindSlot(outside); ok {
		t.Error("Expected no slot for corners between zones")
	}
}

func TestLotOccupiedSlots(t *testing.T) {
	lot := Lot{Zones: []Zone{
		{Bounds: geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}, Label: "P1"},
		{Bounds: geom.Rect{X: 0, Y: 0, Width: 400, Height: 400}, Label: "LOT"},
	}}

	labels := lot.OccupiedSlots(geom.Rect{X: 10, Y: 10, Width: 50, Height: 50})
	if len(labels) != 2 || labels[0] != "P1" || labels[1] != "LOT" {
		t.Errorf("Expected [P1 LOT], got %v", labels)
	}
}
