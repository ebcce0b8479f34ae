package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/verletsim/internal/config"
	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/metrics"
	"github.com/san-kum/verletsim/internal/sim"
	"github.com/san-kum/verletsim/internal/vec"
)

// Scenario is a scripted run: a preset plus pointer input at fixed ticks.
type Scenario struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Preset      string          `yaml:"preset"`
	Ticks       int             `yaml:"ticks"`
	Spawn       *bool           `yaml:"auto_spawn"`
	Events      []ScenarioEvent `yaml:"events"`
}

// ScenarioEvent kinds are move, down, up and spawn. X and Y are only read
// for move.
type ScenarioEvent struct {
	Tick int     `yaml:"tick"`
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &scenario, nil
}

// Timeline converts the event list into a sim.Timeline.
func (sc *Scenario) Timeline() (sim.Timeline, error) {
	script := sim.Script{}
	for i, ev := range sc.Events {
		if ev.Tick < 0 {
			return nil, fmt.Errorf("event %d: negative tick %d", i, ev.Tick)
		}
		var a sim.Action
		switch ev.Kind {
		case "move":
			a.Event = host.Moved(vec.New(ev.X, ev.Y))
		case "down":
			a.Event = host.Down()
		case "up":
			a.Event = host.Up()
		case "spawn":
			a.Spawn = true
		default:
			return nil, fmt.Errorf("event %d: unknown kind %q", i, ev.Kind)
		}
		script.Add(ev.Tick, a)
	}
	return script, nil
}

// Config resolves the preset and applies the scenario overrides.
func (sc *Scenario) Config() (*config.Config, error) {
	name := sc.Preset
	if name == "" {
		name = "default"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	if sc.Ticks > 0 {
		cfg.Ticks = sc.Ticks
	}
	if sc.Spawn != nil {
		cfg.Spawn.Enabled = *sc.Spawn
	}
	return cfg, cfg.Validate()
}

// RunScenario executes the scenario with the default metric set.
func RunScenario(ctx context.Context, sc *Scenario, logger *slog.Logger) (*sim.Result, error) {
	cfg, err := sc.Config()
	if err != nil {
		return nil, err
	}
	tl, err := sc.Timeline()
	if err != nil {
		return nil, err
	}
	h, err := cfg.NewHost()
	if err != nil {
		return nil, err
	}

	logger.Info("running scenario", "name", sc.Name, "preset", cfg.Name, "ticks", cfg.Ticks, "events", len(sc.Events))

	r := sim.New(h).WithLogger(logger.With("scenario", sc.Name))
	for _, m := range metrics.Default() {
		r.AddMetric(m)
	}
	return r.Run(ctx, cfg.SimConfig(), tl)
}
