package proximity

import (
	"math"

	"github.com/lixenwraith/parksense/geom"
)

// Obstacle is a static circular obstacle; Radius 0 is a point obstacle
type Obstacle struct {
	Pos    geom.Point
	Radius float64
}

// MinDistance returns the minimum pairwise Euclidean distance between
// sensor and obstacle positions. Returns +Inf when either set is empty
// so the result always maps to TierNone.
func MinDistance(sensors, obstacles []geom.Point) float64 {
	minDist := math.Inf(1)
	for _, s := range sensors {
		for _, o := range obstacles {
			if d := geom.Distance(s, o); d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}

// MinObstacleDistance returns the minimum distance from any sensor to
// any obstacle edge. Distance inside a circle clamps to 0.
func MinObstacleDistance(sensors []geom.Point, obstacles []Obstacle) float64 {
	minDist := math.Inf(1)
	for _, s := range sensors {
		for _, o := range obstacles {
			d := geom.Distance(s, o.Pos) - o.Radius
			if d < 0 {
				d = 0
			}
			if d < minDist {
				minDist = d
			}
		}
	}
	return minDist
}
