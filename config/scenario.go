package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Drive modes for the car
const (
	DriveAxis     = "axis"     // WASD moves along x/y
	DriveRotation = "rotation" // up/down throttle, left/right steer
)

// Scenario is the full immutable description of one simulation run:
// arena, car, sensor layout, tier table, obstacles, and zones.
// Threshold and speed values live here, never in module-level state.
type Scenario struct {
	Name  string      `yaml:"name"`
	Arena ArenaConfig `yaml:"arena"`
	Car   CarConfig   `yaml:"car"`

	Sensors    []SensorMount   `yaml:"sensors"`
	Thresholds ThresholdConfig `yaml:"thresholds"`

	Obstacles []ObstacleConfig `yaml:"obstacles,omitempty"`
	Zones     []ZoneConfig     `yaml:"zones,omitempty"`
	Sweep     *SweepConfig     `yaml:"sweep,omitempty"`

	Audio AudioConfig `yaml:"audio"`
}

// ArenaConfig is the world extent in screen units
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CarConfig describes the moving entity
type CarConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // units per second
	TurnRate float64 `yaml:"turn_rate"` // degrees per second, rotation drive only
	Drive    string  `yaml:"drive"`     // axis | rotation
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
}

// SensorMount is an entity-relative sensor indicator: offset from the
// car center and angle relative to the car heading, both applied after
// the car's own rotation
type SensorMount struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Angle   float64 `yaml:"angle"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// ThresholdConfig is the tier table plus per-tier beep cadence
type ThresholdConfig struct {
	Danger  float64 `yaml:"danger"`
	Warning float64 `yaml:"warning"`
	Caution float64 `yaml:"caution"`

	DangerBeepMs  int `yaml:"danger_beep_ms"`
	WarningBeepMs int `yaml:"warning_beep_ms"`
	CautionBeepMs int `yaml:"caution_beep_ms"`
}

// DangerInterval returns the danger-tier beep interval
func (t ThresholdConfig) DangerInterval() time.Duration {
	return time.Duration(t.DangerBeepMs) * time.Millisecond
}

// WarningInterval returns the warning-tier beep interval
func (t ThresholdConfig) WarningInterval() time.Duration {
	return time.Duration(t.WarningBeepMs) * time.Millisecond
}

// CautionInterval returns the caution-tier beep interval
func (t ThresholdConfig) CautionInterval() time.Duration {
	return time.Duration(t.CautionBeepMs) * time.Millisecond
}

// ObstacleConfig is a static circular obstacle; radius 0 is a point
type ObstacleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// ZoneConfig is a static axis-aligned parking slot
type ZoneConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Label  string  `yaml:"label"`
}

// SweepConfig enables the synthetic distance sweep: the reading ramps
// from Max down by Decrease each frame and wraps back at Min
type SweepConfig struct {
	Max      float64 `yaml:"max"`
	Min      float64 `yaml:"min"`
	Decrease float64 `yaml:"decrease"`
}

// AudioConfig controls beep playback
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	BeepPath   string  `yaml:"beep_path"`
	SampleRate int     `yaml:"sample_rate"`
}

// Load reads a scenario file, applies PARKSENSE_* env overrides, and
// validates the result
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	applyEnv(sc)

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return sc, nil
}

// Validate checks the scenario for values the simulation cannot run with
func (s *Scenario) Validate() error {
	if s.Arena.Width <= 0 || s.Arena.Height <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %gx%g", s.Arena.Width, s.Arena.Height)
	}
	if s.Car.Width <= 0 || s.Car.Height <= 0 {
		return fmt.Errorf("car dimensions must be positive, got %gx%g", s.Car.Width, s.Car.Height)
	}
	if s.Car.Speed <= 0 {
		return fmt.Errorf("car speed must be positive, got %g", s.Car.Speed)
	}
	if s.Car.Drive != DriveAxis && s.Car.Drive != DriveRotation {
		return fmt.Errorf("unknown drive mode %q", s.Car.Drive)
	}
	if s.Car.Drive == DriveRotation && s.Car.TurnRate <= 0 {
		return fmt.Errorf("rotation drive requires a positive turn rate, got %g", s.Car.TurnRate)
	}

	t := s.Thresholds
	if !(t.Danger > 0 && t.Danger < t.Warning && t.Warning < t.Caution) {
		return fmt.Errorf("thresholds must satisfy 0 < danger < warning < caution, got %g/%g/%g",
			t.Danger, t.Warning, t.Caution)
	}
	if t.DangerBeepMs <= 0 || t.WarningBeepMs <= 0 || t.CautionBeepMs <= 0 {
		return fmt.Errorf("beep intervals must be positive")
	}

	for i, m := range s.Sensors {
		if m.Width <= 0 || m.Height <= 0 {
			return fmt.Errorf("sensor %d dimensions must be positive", i)
		}
	}
	for i, z := range s.Zones {
		if z.Width <= 0 || z.Height <= 0 {
			return fmt.Errorf("zone %d dimensions must be positive", i)
		}
	}
	for i, o := range s.Obstacles {
		if o.Radius < 0 {
			return fmt.Errorf("obstacle %d radius must be non-negative", i)
		}
	}
	if s.Sweep != nil {
		if s.Sweep.Max <= s.Sweep.Min || s.Sweep.Decrease <= 0 {
			return fmt.Errorf("sweep requires max > min and a positive decrease")
		}
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0,1], got %g", s.Audio.Volume)
	}
	return nil
}
