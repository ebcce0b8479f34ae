package verlet

import (
	"math"
	"testing"

	"github.com/san-kum/verletsim/internal/vec"
)

func TestParticleIntegrate(t *testing.T) {
	p := NewParticle(vec.New(0, 0), 1, 0)
	p.Accelerate(vec.New(0, -10))
	p.Accelerate(vec.New(2, 0))

	p.Integrate(0.1)

	want := vec.New(0.02, -0.1)
	if p.Pos.Dist(want) > 1e-12 {
		t.Errorf("pos = %v, want %v", p.Pos, want)
	}
	if p.Prev != (vec.Vec2{}) {
		t.Errorf("prev = %v, want origin", p.Prev)
	}
}

func TestParticleAccumulatorReset(t *testing.T) {
	p := NewParticle(vec.New(5, 5), 1, 0)
	p.Accelerate(vec.New(3, 4))
	p.Integrate(0.5)

	if p.Acc != vec.Zero {
		t.Fatalf("accumulator = %v after integrate, want exactly zero", p.Acc)
	}

	// A second integrate with no accelerate is pure inertia.
	before := p.Pos.Sub(p.Prev)
	p.Integrate(0.5)
	after := p.Pos.Sub(p.Prev)
	if before != after {
		t.Errorf("displacement changed without acceleration: %v -> %v", before, after)
	}
}

func TestParticleVelocitySettersMutateInPlace(t *testing.T) {
	dt := 1.0 / 60
	particles := []Particle{NewParticle(vec.New(10, 10), 1, 0)}

	particles[0].SetVelocity(vec.New(60, 0), dt)
	if v := particles[0].Velocity(dt); math.Abs(v.X-60) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Fatalf("SetVelocity not applied to stored particle: velocity %v", v)
	}

	particles[0].AddVelocity(vec.New(0, 30), dt)
	v := particles[0].Velocity(dt)
	if math.Abs(v.X-60) > 1e-9 || math.Abs(v.Y-30) > 1e-9 {
		t.Errorf("AddVelocity not applied to stored particle: velocity %v", v)
	}
}

func TestParticleVelocityIsReadOnly(t *testing.T) {
	p := NewParticle(vec.New(1, 1), 1, 0)
	p.Prev = vec.New(0, 0)
	snapshot := p

	_ = p.Velocity(0.1)

	if p != snapshot {
		t.Errorf("Velocity mutated particle: %+v -> %+v", snapshot, p)
	}
}
