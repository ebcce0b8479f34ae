package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/verletsim/internal/host"
	"github.com/san-kum/verletsim/internal/sim"
	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
)

const (
	DefaultDt         = 1.0 / 60
	DefaultTicks      = 600
	DefaultFrameEvery = 2
	DefaultIntervalMS = 500
)

type Config struct {
	Name       string          `yaml:"name"`
	Dt         float64         `yaml:"dt"`
	Ticks      int             `yaml:"ticks"`
	FrameEvery int             `yaml:"frame_every"`
	Gravity    Point           `yaml:"gravity"`
	Boundary   BoundaryConfig  `yaml:"boundary"`
	Particles  ParticleConfig  `yaml:"particles"`
	Collision  CollisionConfig `yaml:"collision"`
	Spawn      SpawnConfig     `yaml:"spawn"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vec() vec.Vec2 { return vec.New(p.X, p.Y) }

type BoundaryConfig struct {
	Center Point   `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

type ParticleConfig struct {
	Max    int     `yaml:"max"`
	Radius float64 `yaml:"radius"`
	Tag    uint8   `yaml:"tag"`
}

type CollisionConfig struct {
	Response float64 `yaml:"response"`
	Padding  float64 `yaml:"padding"`
}

type SpawnConfig struct {
	Enabled    bool  `yaml:"enabled"`
	IntervalMS int   `yaml:"interval_ms"`
	Offset     Point `yaml:"offset"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:       "default",
		Dt:         DefaultDt,
		Ticks:      DefaultTicks,
		FrameEvery: DefaultFrameEvery,
		Gravity:    Point{0, -1000},
		Boundary: BoundaryConfig{
			Radius: verlet.DefaultBoundary,
		},
		Particles: ParticleConfig{
			Max:    verlet.DefaultMax,
			Radius: verlet.DefaultRadius,
		},
		Collision: CollisionConfig{
			Response: verlet.DefaultResponse,
			Padding:  verlet.DefaultPadding,
		},
		Spawn: SpawnConfig{
			Enabled:    true,
			IntervalMS: DefaultIntervalMS,
			Offset:     Point{host.DefaultSpawnOffset.X, host.DefaultSpawnOffset.Y},
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(DefaultConfig(), path)
}

// LoadOver reads a YAML file on top of a copy of base. Keys missing from the
// file keep the base values.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy, so presets are never mutated.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) Validate() error {
	if err := c.SimConfig().Validate(); err != nil {
		return err
	}
	if c.Spawn.IntervalMS <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %d ms", c.Spawn.IntervalMS)
	}
	return c.Params().Validate()
}

func (c *Config) Params() verlet.Params {
	return verlet.Params{
		Gravity:        c.Gravity.Vec(),
		BoundaryCenter: c.Boundary.Center.Vec(),
		BoundaryRadius: c.Boundary.Radius,
		MaxParticles:   c.Particles.Max,
		DefaultRadius:  c.Particles.Radius,
		DefaultTag:     verlet.Tag(c.Particles.Tag),
		Response:       c.Collision.Response,
		Padding:        c.Collision.Padding,
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:            c.Dt,
		Ticks:         c.Ticks,
		FrameEvery:    c.FrameEvery,
		ValidateState: true,
	}
}

func (c *Config) SpawnInterval() time.Duration {
	return time.Duration(c.Spawn.IntervalMS) * time.Millisecond
}

// NewHost builds a fresh simulation and host from the configuration.
func (c *Config) NewHost() (*host.Host, error) {
	s, err := verlet.New(c.Params())
	if err != nil {
		return nil, err
	}
	sp := host.NewSpawner(c.SpawnInterval(), c.Spawn.Offset.Vec())
	sp.Enabled = c.Spawn.Enabled
	return host.New(s, sp), nil
}
