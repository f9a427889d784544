package sim

import (
	"math"

	"github.com/lixenwraith/parksense/config"
	"github.com/lixenwraith/parksense/geom"
	"github.com/lixenwraith/parksense/input"
)

// DriveMode selects how movement intents steer the car
type DriveMode uint8

const (
	DriveAxis     DriveMode = iota // intents move along x/y, heading fixed
	DriveRotation                  // up/down throttle along heading, left/right steer
)

// Car is the moving entity. Pose is the geometric center; heading 0
// faces up the screen, degrees clockwise-positive.
type Car struct {
	Pose          geom.Pose
	Width, Height float64
	Speed         float64 // units per second
	TurnRate      float64 // degrees per second, rotation drive only
	Drive         DriveMode
}

func newCar(cfg config.CarConfig) Car {
	drive := DriveAxis
	if cfg.Drive == config.DriveRotation {
		drive = DriveRotation
	}
	return Car{
		Pose:     geom.Pose{X: cfg.StartX, Y: cfg.StartY},
		Width:    cfg.Width,
		Height:   cfg.Height,
		Speed:    cfg.Speed,
		TurnRate: cfg.TurnRate,
		Drive:    drive,
	}
}

// Steer advances the pose by one frame of held intents
func (c *Car) Steer(in input.Intents, dt float64) {
	switch c.Drive {
	case DriveRotation:
		if in.Left {
			c.Pose.Rotation -= c.TurnRate * dt
		}
		if in.Right {
			c.Pose.Rotation += c.TurnRate * dt
		}
		heading := c.Pose.Rotation * math.Pi / 180
		sin, cos := math.Sincos(heading)
		if in.Forward {
			c.Pose.X += sin * c.Speed * dt
			c.Pose.Y -= cos * c.Speed * dt
		}
		if in.Reverse {
			c.Pose.X -= sin * c.Speed * dt
			c.Pose.Y += cos * c.Speed * dt
		}
	default:
		if in.Forward {
			c.Pose.Y -= c.Speed * dt
		}
		if in.Reverse {
			c.Pose.Y += c.Speed * dt
		}
		if in.Left {
			c.Pose.X -= c.Speed * dt
		}
		if in.Right {
			c.Pose.X += c.Speed * dt
		}
	}
}

// Center returns the car's center point
func (c Car) Center() geom.Point {
	return geom.Point{X: c.Pose.X, Y: c.Pose.Y}
}

// Footprint returns the axis-aligned unrotated bounding rect
func (c Car) Footprint() geom.Rect {
	return geom.Rect{
		X:      c.Pose.X - c.Width/2,
		Y:      c.Pose.Y - c.Height/2,
		Width:  c.Width,
		Height: c.Height,
	}
}

// Body returns the rotated body rect, pivoting about the center
func (c Car) Body() geom.Rect {
	// Rect rotation pivots about the origin, so place the origin at the
	// rotated position of the local top-left corner
	topLeft := geom.Point{X: -c.Width / 2, Y: -c.Height / 2}.Rotate(c.Pose.Rotation)
	return geom.Rect{
		X:        c.Pose.X + topLeft.X,
		Y:        c.Pose.Y + topLeft.Y,
		Width:    c.Width,
		Height:   c.Height,
		Rotation: c.Pose.Rotation,
	}
}

// Corners returns the rotated body corners in world space
func (c Car) Corners() [4]geom.Point {
	return geom.CornersCentered(c.Center(), c.Width, c.Height, c.Pose.Rotation)
}
