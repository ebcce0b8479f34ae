package metrics

import (
	"math"
	"testing"

	"github.com/onsi/gomega"

	"github.com/san-kum/verletsim/internal/vec"
	"github.com/san-kum/verletsim/internal/verlet"
)

const dt = 1.0 / 60

func newSim(t *testing.T, gravity vec.Vec2) *verlet.Simulation {
	t.Helper()
	p := verlet.DefaultParams()
	p.Gravity = gravity
	s, err := verlet.New(p)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestKineticEnergyAtRest(t *testing.T) {
	s := newSim(t, vec.Zero)
	s.Spawn(vec.New(0, 0))

	m := NewKineticEnergy()
	m.Observe(s, dt, 0)
	if m.Value() != 0 {
		t.Errorf("expected zero energy at rest, got %f", m.Value())
	}
}

func TestKineticEnergyFalling(t *testing.T) {
	g := gomega.NewWithT(t)
	s := newSim(t, vec.New(0, -1000))
	s.Spawn(vec.New(0, 0))

	m := NewKineticEnergy()
	for i := 0; i < 10; i++ {
		s.Step(dt)
		m.Observe(s, dt, float64(i+1)*dt)
	}

	// After n steps the implied speed is n·g·dt, mass is the radius.
	speed := 10 * 1000 * dt
	g.Expect(m.Last()).To(gomega.BeNumerically("~", 0.5*20*speed*speed, 1e-6))
	g.Expect(m.Value()).To(gomega.BeNumerically("<", m.Last()))
	g.Expect(TotalKinetic(s, dt)).To(gomega.Equal(m.Last()))
}

func TestKineticEnergyReset(t *testing.T) {
	s := newSim(t, vec.New(0, -1000))
	s.Spawn(vec.New(0, 0))
	s.Step(dt)

	m := NewKineticEnergy()
	m.Observe(s, dt, dt)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestMeanSpeed(t *testing.T) {
	s := newSim(t, vec.New(0, -600))
	s.Spawn(vec.New(-100, 0))
	s.Spawn(vec.New(100, 0))
	s.Step(dt)

	m := NewMeanSpeed()
	m.Observe(s, dt, dt)
	if math.Abs(m.Value()-600*dt) > 1e-9 {
		t.Errorf("mean speed = %f, want %f", m.Value(), 600*dt)
	}
}
