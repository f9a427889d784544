package config

// Stock simulation values: a 1920x1080 arena, four 30x100 corner
// sensors, 300 units/s car.
const (
	defaultArenaWidth  = 1920
	defaultArenaHeight = 1080

	defaultCarWidth  = 480
	defaultCarHeight = 500
	defaultCarSpeed  = 300
	defaultTurnRate  = 120

	defaultSensorWidth  = 30
	defaultSensorHeight = 100

	defaultDanger  = 80
	defaultWarning = 180
	defaultCaution = 300

	defaultDangerBeepMs  = 100
	defaultWarningBeepMs = 350
	defaultCautionBeepMs = 700

	defaultVolume     = 0.5
	defaultSampleRate = 44100
	defaultBeepPath   = "assets/beep.mp3"
)

// DefaultScenario returns a runnable parking scenario used when no
// file is given and as the base overridden by scenario files
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:  "parking",
		Arena: ArenaConfig{Width: defaultArenaWidth, Height: defaultArenaHeight},
		Car: CarConfig{
			Width:  defaultCarWidth,
			Height: defaultCarHeight,
			Speed:  defaultCarSpeed,
			Drive:  DriveAxis,
			StartX: defaultArenaWidth / 2,
			StartY: defaultArenaHeight / 2,
		},
		Sensors: defaultSensorMounts(),
		Thresholds: ThresholdConfig{
			Danger:        defaultDanger,
			Warning:       defaultWarning,
			Caution:       defaultCaution,
			DangerBeepMs:  defaultDangerBeepMs,
			WarningBeepMs: defaultWarningBeepMs,
			CautionBeepMs: defaultCautionBeepMs,
		},
		Zones: []ZoneConfig{
			{X: 160, Y: 240, Width: 560, Height: 600, Label: "P1"},
			{X: 1200, Y: 240, Width: 560, Height: 600, Label: "P2"},
		},
		Obstacles: []ObstacleConfig{
			{X: 960, Y: 120, Radius: 40},
			{X: 960, Y: 960, Radius: 40},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     defaultVolume,
			BeepPath:   defaultBeepPath,
			SampleRate: defaultSampleRate,
		},
	}
}

// defaultSensorMounts places one angled sensor at each car corner
func defaultSensorMounts() []SensorMount {
	halfW := float64(defaultCarWidth) / 2
	halfH := float64(defaultCarHeight) / 2
	return []SensorMount{
		{OffsetX: -halfW, OffsetY: -halfH, Angle: 45, Width: defaultSensorWidth, Height: defaultSensorHeight},
		{OffsetX: halfW, OffsetY: -halfH, Angle: -45, Width: defaultSensorWidth, Height: defaultSensorHeight},
		{OffsetX: -halfW, OffsetY: halfH, Angle: 135, Width: defaultSensorWidth, Height: defaultSensorHeight},
		{OffsetX: halfW, OffsetY: halfH, Angle: -135, Width: defaultSensorWidth, Height: defaultSensorHeight},
	}
}
