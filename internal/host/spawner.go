package host

import (
	"time"

	"github.com/san-kum/verletsim/internal/vec"
)

const (
	DefaultSpawnInterval = 500 * time.Millisecond
	PaletteSize          = 8
)

// DefaultSpawnOffset is where new particles appear relative to the boundary
// center.
var DefaultSpawnOffset = vec.New(100, 200)

// Spawner decides when the host should add a particle. It only measures the
// elapsed time it is given, so headless runs stay deterministic.
type Spawner struct {
	Interval time.Duration
	Offset   vec.Vec2
	Enabled  bool

	since time.Duration
}

// NewSpawner falls back to DefaultSpawnInterval for a non-positive interval.
func NewSpawner(interval time.Duration, offset vec.Vec2) *Spawner {
	if interval <= 0 {
		interval = DefaultSpawnInterval
	}
	return &Spawner{Interval: interval, Offset: offset, Enabled: true}
}

// Due accumulates elapsed and reports whether a spawn should be attempted.
func (s *Spawner) Due(elapsed time.Duration) bool {
	if !s.Enabled {
		return false
	}
	s.since += elapsed
	return s.since >= s.Interval
}

// Fired restarts the interval after a successful spawn.
func (s *Spawner) Fired() { s.since = 0 }
