package config

import (
	"os"
	"strconv"
)

// applyEnv overlays PARKSENSE_* environment overrides onto a loaded
// scenario. Malformed values are ignored and the file value stands.
func applyEnv(sc *Scenario) {
	if enabled := os.Getenv("PARKSENSE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			sc.Audio.Enabled = val
		}
	}

	// Volume is given as 0-100 and converted to 0.0-1.0
	if volume := os.Getenv("PARKSENSE_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			v := float64(val) / 100.0
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			sc.Audio.Volume = v
		}
	}

	if path := os.Getenv("PARKSENSE_BEEP"); path != "" {
		sc.Audio.BeepPath = path
	}

	if rate := os.Getenv("PARKSENSE_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			sc.Audio.SampleRate = val
		}
	}
}
