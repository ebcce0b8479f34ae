package host

import (
	"time"

	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
)

// Host owns a Simulation and translates pointer input and elapsed time into
// the calls the simulation understands.
type Host struct {
	sim     *verlet.Simulation
	spawner *Spawner
	pressed bool
	nextTag verlet.Tag
	spawned int
}

func New(sim *verlet.Simulation, spawner *Spawner) *Host {
	if spawner == nil {
		spawner = NewSpawner(DefaultSpawnInterval, DefaultSpawnOffset)
	}
	return &Host{sim: sim, spawner: spawner}
}

func (h *Host) Simulation() *verlet.Simulation { return h.sim }
func (h *Host) Spawner() *Spawner              { return h.spawner }
func (h *Host) Pressed() bool                  { return h.pressed }
func (h *Host) Spawned() int                   { return h.spawned }

// Handle applies a pointer event. The boundary follows the pointer only
// while the button is held.
func (h *Host) Handle(ev Event) {
	switch ev.Kind {
	case PointerDown:
		h.pressed = true
	case PointerUp:
		h.pressed = false
	case PointerMoved:
		if h.pressed {
			h.sim.SetBoundaryCenter(ev.Point)
		}
	}
}

func (h *Host) HandleAll(events []Event) {
	for _, ev := range events {
		h.Handle(ev)
	}
}

// SpawnNow adds a particle at the spawn offset from the boundary center,
// cycling through the tag palette.
func (h *Host) SpawnNow() bool {
	pos := h.sim.BoundaryCenter().Add(h.spawner.Offset)
	if !h.sim.SpawnTagged(pos, h.nextTag) {
		return false
	}
	h.nextTag = (h.nextTag + 1) % PaletteSize
	h.spawned++
	return true
}

// Advance runs the spawn timer for elapsed and then steps the simulation
// by dt.
func (h *Host) Advance(elapsed time.Duration, dt float64) {
	if h.sim.Len() < h.sim.MaxParticles() && h.spawner.Due(elapsed) {
		if h.SpawnNow() {
			h.spawner.Fired()
		}
	}
	h.sim.Step(dt)
}

// Nudge moves the boundary by delta as a press-move-release gesture.
func (h *Host) Nudge(delta vec.Vec2) {
	wasPressed := h.pressed
	h.Handle(Down())
	h.Handle(Moved(h.sim.BoundaryCenter().Add(delta)))
	if !wasPressed {
		h.Handle(Up())
	}
}

// FrameDuration converts a step size in seconds to a duration.
func FrameDuration(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}
