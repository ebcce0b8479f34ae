package sim

import (
	"fmt"

	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
)

type Config struct {
	Dt    float64
	Ticks int
	// FrameEvery records one frame per this many ticks.
	FrameEvery int
	// Spawn overrides the host spawner's Enabled flag when non-nil.
	Spawn         *bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 60,
		Ticks:         600,
		FrameEvery:    1,
		ValidateState: true,
	}
}

func (c Config) Validate() error {
	if !(c.Dt > 0) {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", c.Ticks)
	}
	if c.FrameEvery < 1 {
		return fmt.Errorf("frame stride must be at least 1, got %d", c.FrameEvery)
	}
	return nil
}

// Frame is a recorded snapshot of the renderable state.
type Frame struct {
	Tick      int
	Time      float64
	Center    vec.Vec2
	Radius    float64
	Particles []verlet.ParticleView
}

type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	Series     map[string][]float64
	StepsTaken int
	Spawned    int
	Degenerate int
	Errors     []error
}

// Timeline supplies scripted input for a tick.
type Timeline interface {
	EventsAt(tick int) []Action
}

// Action is either a pointer event or an explicit spawn request.
type Action struct {
	Event host.Event
	Spawn bool
}

// Script is a map-backed Timeline.
type Script map[int][]Action

func (s Script) EventsAt(tick int) []Action { return s[tick] }

// Add appends actions at tick.
func (s Script) Add(tick int, actions ...Action) {
	s[tick] = append(s[tick], actions...)
}

type SimError struct {
	Tick    int
	Time    float64
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f): %s", e.Tick, e.Time, e.Message)
}
