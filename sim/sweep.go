package sim

import "github.com/lixenwraith/parksense/config"

// sweep is the synthetic distance source: the reading ramps down by a
// fixed step every frame and wraps back to max below min, independent
// of frame timing
type sweep struct {
	max, min, decrease float64
	current            float64
}

func newSweep(cfg config.SweepConfig) *sweep {
	return &sweep{
		max:      cfg.Max,
		min:      cfg.Min,
		decrease: cfg.Decrease,
		current:  cfg.Max,
	}
}

func (s *sweep) next() float64 {
	s.current -= s.decrease
	if s.current < s.min {
		s.current = s.max
	}
	return s.current
}
