package parking

import "github.com/lixenwraith/parksense/geom"

// Zone is a static axis-aligned parking slot. Bounds never change
// after construction.
type Zone struct {
	Bounds geom.Rect
	Label  string
}

// CarParked reports whether all four corners lie within the zone's
// closed bounds. Partial overlap is not parked.
func CarParked(z Zone, corners [4]geom.Point) bool {
	return geom.ContainsPoints(z.Bounds, corners[:])
}

// Occupied reports whether the axis-aligned footprint lies fully
// within the zone. The footprint's rotation is ignored; callers must
// pass an axis-aligned rect (the car's unrotated bounding box).
func Occupied(z Zone, footprint geom.Rect) bool {
	return geom.ContainsRect(z.Bounds, footprint)
}

// Lot is the collection of parking slots in a scenario
type Lot struct {
	Zones []Zone
}

// FindSlot returns the first zone fully containing the corners
func (l Lot) FindSlot(corners [4]geom.Point) (Zone, bool) {
	for _, z := range l.Zones {
		if CarParked(z, corners) {
			return z, true
		}
	}
	return Zone{}, false
}

// OccupiedSlots returns the labels of zones fully containing the
// axis-aligned footprint
func (l Lot) OccupiedSlots(footprint geom.Rect) []string {
	var labels []string
	for _, z := range l.Zones {
		if Occupied(z, footprint) {
			labels = append(labels, z.Label)
		}
	}
	return labels
}
