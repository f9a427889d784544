package sim

import (
	"time"

	"github.com/lixenwraith/parksense/config"
	"github.com/lixenwraith/parksense/geom"
	"github.com/lixenwraith/parksense/input"
	"github.com/lixenwraith/parksense/parking"
	"github.com/lixenwraith/parksense/proximity"
)

// SensorReading is one sensor indicator for this frame: the world-space
// rect to draw and the anchor point distances are measured from
type SensorReading struct {
	Rect geom.Rect
	Pos  geom.Point
}

// FrameReport is the outcome of one simulation step
type FrameReport struct {
	MinDistance float64
	Tier        proximity.Tier
	Beep        bool

	Parked   bool
	Slot     string
	Occupied []string

	Sensors []SensorReading
	Corners [4]geom.Point
}

// Simulation is the unified frame-stepped world: one car, static
// obstacles and zones, and the proximity feedback state. All state is
// touched only by Step between renders; the only values carried across
// frames are the car pose, the sweep position, and the limiter clock.
type Simulation struct {
	arena  config.ArenaConfig
	mounts []config.SensorMount

	car        Car
	thresholds proximity.Thresholds
	limiter    *proximity.Limiter
	obstacles  []proximity.Obstacle
	lot        parking.Lot
	sweep      *sweep
}

// New builds a simulation from a validated scenario
func New(sc *config.Scenario) *Simulation {
	s := &Simulation{
		arena:  sc.Arena,
		mounts: sc.Sensors,
		car:    newCar(sc.Car),
		thresholds: proximity.Thresholds{
			Danger:  sc.Thresholds.Danger,
			Warning: sc.Thresholds.Warning,
			Caution: sc.Thresholds.Caution,
		},
		limiter: proximity.NewLimiter(proximity.Intervals{
			Danger:  sc.Thresholds.DangerInterval(),
			Warning: sc.Thresholds.WarningInterval(),
			Caution: sc.Thresholds.CautionInterval(),
		}),
	}

	for _, o := range sc.Obstacles {
		s.obstacles = append(s.obstacles, proximity.Obstacle{
			Pos:    geom.Point{X: o.X, Y: o.Y},
			Radius: o.Radius,
		})
	}
	for _, z := range sc.Zones {
		s.lot.Zones = append(s.lot.Zones, parking.Zone{
			Bounds: geom.Rect{X: z.X, Y: z.Y, Width: z.Width, Height: z.Height},
			Label:  z.Label,
		})
	}
	if sc.Sweep != nil {
		s.sweep = newSweep(*sc.Sweep)
	}
	return s
}

// Step runs one frame: update the pose from held intents, recompute
// sensor geometry, evaluate proximity and containment, and decide
// whether a beep fires at now
func (s *Simulation) Step(in input.Intents, dt float64, now time.Time) FrameReport {
	s.car.Steer(in, dt)
	s.clampToArena()

	corners := s.car.Corners()
	sensors := s.sensorReadings()

	var minDist float64
	if s.sweep != nil {
		minDist = s.sweep.next()
	} else {
		minDist = proximity.MinObstacleDistance(sensorPositions(sensors), s.obstacles)
	}

	tier := s.thresholds.TierFor(minDist)

	report := FrameReport{
		MinDistance: minDist,
		Tier:        tier,
		Beep:        s.limiter.Fire(tier, now),
		Occupied:    s.lot.OccupiedSlots(s.car.Footprint()),
		Sensors:     sensors,
		Corners:     corners,
	}
	if slot, ok := s.lot.FindSlot(corners); ok {
		report.Parked = true
		report.Slot = slot.Label
	}
	return report
}

// sensorReadings places each mount relative to the current pose:
// offsets rotate with the car, mount angles add to the heading
func (s *Simulation) sensorReadings() []SensorReading {
	center := s.car.Center()
	readings := make([]SensorReading, 0, len(s.mounts))
	for _, m := range s.mounts {
		anchor := center.Add(geom.Point{X: m.OffsetX, Y: m.OffsetY}.Rotate(s.car.Pose.Rotation))
		readings = append(readings, SensorReading{
			Pos: anchor,
			Rect: geom.Rect{
				X:        anchor.X,
				Y:        anchor.Y,
				Width:    m.Width,
				Height:   m.Height,
				Rotation: s.car.Pose.Rotation + m.Angle,
			},
		})
	}
	return readings
}

func sensorPositions(readings []SensorReading) []geom.Point {
	pts := make([]geom.Point, len(readings))
	for i, r := range readings {
		pts[i] = r.Pos
	}
	return pts
}

// clampToArena keeps the car center inside the world bounds
func (s *Simulation) clampToArena() {
	halfW := s.car.Width / 2
	halfH := s.car.Height / 2
	if s.car.Pose.X < halfW {
		s.car.Pose.X = halfW
	}
	if s.car.Pose.X > s.arena.Width-halfW {
		s.car.Pose.X = s.arena.Width - halfW
	}
	if s.car.Pose.Y < halfH {
		s.car.Pose.Y = halfH
	}
	if s.car.Pose.Y > s.arena.Height-halfH {
		s.car.Pose.Y = s.arena.Height - halfH
	}
}

// Car returns the current car state
func (s *Simulation) Car() Car {
	return s.car
}

// Arena returns the world extent
func (s *Simulation) Arena() config.ArenaConfig {
	return s.arena
}

// Obstacles returns the static obstacle set
func (s *Simulation) Obstacles() []proximity.Obstacle {
	return s.obstacles
}

// Lot returns the parking slots
func (s *Simulation) Lot() parking.Lot {
	return s.lot
}
