package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"drop": func() *Config {
		c := DefaultConfig()
		c.Name = "drop"
		c.Ticks = 300
		c.FrameEvery = 1
		c.Particles.Max = 1
		return c
	}(),
	"crowd": func() *Config {
		c := DefaultConfig()
		c.Name = "crowd"
		c.Ticks = 3600
		c.Particles.Max = 40
		c.Particles.Radius = 14
		c.Spawn.IntervalMS = 150
		return c
	}(),
	"pebbles": func() *Config {
		c := DefaultConfig()
		c.Name = "pebbles"
		c.Ticks = 2400
		c.Particles.Max = 60
		c.Particles.Radius = 8
		c.Collision.Padding = 1
		c.Spawn.IntervalMS = 80
		c.Spawn.Offset = Point{40, 150}
		return c
	}(),
	"zero_g": func() *Config {
		c := DefaultConfig()
		c.Name = "zero_g"
		c.Gravity = Point{}
		c.Spawn.IntervalMS = 250
		c.Spawn.Offset = Point{0, 0}
		return c
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
