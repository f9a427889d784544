package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/parksense/config"
)

// Fallback tone used when the beep asset cannot be loaded
const (
	fallbackFrequency = 880.0
	fallbackDuration  = 60 * time.Millisecond
)

// Beeper plays the proximity alert sound. Any failure degrades to
// silence; audio never aborts the simulation.
type Beeper struct {
	cfg   config.AudioConfig
	buf   *beep.Buffer
	ready bool
}

// NewBeeper creates a beeper from audio settings. Call Init before Beep.
func NewBeeper(cfg config.AudioConfig) *Beeper {
	return &Beeper{cfg: cfg}
}

// Init opens the speaker and buffers the alert sound. A missing or
// undecodable asset logs the resolved path to stderr and falls back to
// a generated sine tone. A speaker failure leaves the beeper in silent
// mode; the returned error is informational only.
func (b *Beeper) Init() error {
	if !b.cfg.Enabled {
		return nil
	}

	sampleRate := beep.SampleRate(b.cfg.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	b.buf = loadBeepBuffer(b.cfg.BeepPath, sampleRate)
	b.ready = true
	return nil
}

// loadBeepBuffer decodes the mp3 asset into a reusable buffer, or
// synthesizes the fallback tone
func loadBeepBuffer(path string, sampleRate beep.SampleRate) *beep.Buffer {
	f, err := os.Open(path)
	if err != nil {
		logAssetError(path, err)
		return fallbackBuffer(sampleRate)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		logAssetError(path, err)
		return fallbackBuffer(sampleRate)
	}
	defer streamer.Close()

	// Resample to the speaker rate so the buffer format matches playback
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	return buf
}

func fallbackBuffer(sampleRate beep.SampleRate) *beep.Buffer {
	sine, err := generators.SineTone(sampleRate, fallbackFrequency)
	if err != nil {
		return nil
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(beep.Take(sampleRate.N(fallbackDuration), sine))
	return buf
}

func logAssetError(path string, err error) {
	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		abs = path
	}
	fmt.Fprintf(os.Stderr, "Error: failed to load sound from %s: %v\n", abs, err)
}

// Beep plays one alert. Non-blocking; overlapping beeps mix.
func (b *Beeper) Beep() {
	if !b.ready || b.buf == nil || b.cfg.Volume <= 0 {
		return
	}

	streamer := b.buf.Streamer(0, b.buf.Len())
	if b.cfg.Volume >= 1 {
		speaker.Play(streamer)
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(b.cfg.Volume),
	})
}

// Close shuts the speaker down
func (b *Beeper) Close() {
	if b.ready {
		speaker.Close()
	}
}
