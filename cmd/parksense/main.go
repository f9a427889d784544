package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/parksense/audio"
	"github.com/lixenwraith/parksense/config"
	"github.com/lixenwraith/parksense/input"
	"github.com/lixenwraith/parksense/render"
	"github.com/lixenwraith/parksense/sim"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	scenarioFlag = flag.String("scenario", "", "Scenario file (yaml); defaults to the bundled parking scenario")
	logFlag      = flag.String("log", "parksense.log", "Log file path")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	scenario := config.DefaultScenario()
	if *scenarioFlag != "" {
		scenario, err = config.Load(*scenarioFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load scenario: %v\n", err)
			os.Exit(1)
		}
	}
	logger.Info("scenario loaded",
		zap.String("name", scenario.Name),
		zap.String("drive", scenario.Car.Drive),
		zap.Int("sensors", len(scenario.Sensors)),
		zap.Int("zones", len(scenario.Zones)),
		zap.Int("obstacles", len(scenario.Obstacles)))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPARKSENSE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	beeper := audio.NewBeeper(scenario.Audio)
	if err := beeper.Init(); err != nil {
		// Non-fatal, the simulation runs without sound
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer beeper.Close()

	run(screen, scenario, beeper, logger)
}

func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	// The terminal belongs to tcell; all logging goes to the file
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func run(screen tcell.Screen, scenario *config.Scenario, beeper *audio.Beeper, logger *zap.Logger) {
	simulation := sim.New(scenario)
	renderer := render.New(screen, scenario.Arena.Width, scenario.Arena.Height)
	tracker := input.NewTracker(input.DefaultHoldWindow)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	lastFrame := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if tracker.HandleKey(ev, time.Now()) == input.IntentQuit {
					logger.Info("quit requested")
					return
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now

			report := simulation.Step(tracker.Snapshot(now), dt, now)
			if report.Beep {
				beeper.Beep()
			}
			renderer.Frame(simulation, report)
		}
	}
}
