package verlet

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/verletsim/internal/vec"
)

const tickDt = 1.0 / 60

func newTestSim(t *testing.T, mutate func(*Params)) *Simulation {
	t.Helper()
	p := DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	s, err := New(p)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	return s
}

func TestNewInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero boundary", func(p *Params) { p.BoundaryRadius = 0 }},
		{"negative radius", func(p *Params) { p.DefaultRadius = -1 }},
		{"radius exceeds boundary", func(p *Params) { p.DefaultRadius = 400 }},
		{"negative cap", func(p *Params) { p.MaxParticles = -1 }},
		{"zero response", func(p *Params) { p.Response = 0 }},
		{"response above one", func(p *Params) { p.Response = 1.5 }},
		{"negative padding", func(p *Params) { p.Padding = -2 }},
		{"NaN gravity", func(p *Params) { p.Gravity = vec.New(math.NaN(), 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			_, err := New(p)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestBallisticConsistency(t *testing.T) {
	g := NewWithT(t)
	s := newTestSim(t, func(p *Params) {
		p.Gravity = vec.Zero
		p.BoundaryRadius = 1e6
	})
	g.Expect(s.Spawn(vec.New(0, 0))).To(BeTrue())
	s.particles[0].SetVelocity(vec.New(120, -45), tickDt)

	start := s.Particle(0).Pos
	v0 := s.Particle(0).Velocity(tickDt)
	for i := 1; i <= 200; i++ {
		s.Step(tickDt)
		p := s.Particle(0)
		v := p.Velocity(tickDt)
		g.Expect(v.X).To(BeNumerically("~", v0.X, 1e-6))
		g.Expect(v.Y).To(BeNumerically("~", v0.Y, 1e-6))

		expected := start.Add(v0.Scale(float64(i) * tickDt))
		g.Expect(p.Pos.Dist(expected)).To(BeNumerically("<", 1e-6))
	}
}

func TestAccumulatorZeroAfterStep(t *testing.T) {
	g := NewWithT(t)
	s := newTestSim(t, nil)
	s.Spawn(vec.New(0, 0))
	s.Spawn(vec.New(50, 0))

	s.Step(tickDt)

	for i := 0; i < s.Len(); i++ {
		g.Expect(s.Particle(i).Acc).To(Equal(vec.Zero))
	}
}

func TestCollisionSymmetry(t *testing.T) {
	g := NewWithT(t)
	s := newTestSim(t, nil)
	s.Spawn(vec.New(-10, 5))
	s.Spawn(vec.New(10, 5))

	a0, b0 := s.Particle(0).Pos, s.Particle(1).Pos
	mid0 := a0.Add(b0).Scale(0.5)

	s.SolveCollisions()

	a1, b1 := s.Particle(0).Pos, s.Particle(1).Pos
	da, db := a1.Sub(a0), b1.Sub(b0)

	g.Expect(da.Add(db).Len()).To(BeNumerically("<", 1e-12))
	g.Expect(da.Len()).To(BeNumerically(">", 0))
	g.Expect(a1.Add(b1).Scale(0.5).Dist(mid0)).To(BeNumerically("<", 1e-12))
	// 0.5 * 0.8 * (42 - 20) split evenly.
	g.Expect(da.X).To(BeNumerically("~", -4.4, 1e-9))
	g.Expect(db.X).To(BeNumerically("~", 4.4, 1e-9))
}

func TestCollisionMassRatio(t *testing.T) {
	s := newTestSim(t, nil)
	s.particles = append(s.particles,
		NewParticle(vec.New(0, 0), 10, 0),
		NewParticle(vec.New(20, 0), 30, 0),
	)
	a0, b0 := s.particles[0].Pos, s.particles[1].Pos

	s.SolveCollisions()

	moveSmall := s.particles[0].Pos.Dist(a0)
	moveLarge := s.particles[1].Pos.Dist(b0)
	if moveSmall <= moveLarge {
		t.Errorf("small particle moved %.4f, large moved %.4f; small should move more", moveSmall, moveLarge)
	}
	if ratio := moveSmall / moveLarge; math.Abs(ratio-3) > 1e-9 {
		t.Errorf("displacement ratio = %.6f, want 3", ratio)
	}
}

func TestCollisionSeparatedPairUntouched(t *testing.T) {
	s := newTestSim(t, nil)
	s.Spawn(vec.New(0, 0))
	s.Spawn(vec.New(42.5, 0))

	s.SolveCollisions()

	if s.Particle(0).Pos != vec.New(0, 0) || s.Particle(1).Pos != vec.New(42.5, 0) {
		t.Errorf("non-overlapping pair moved: %v %v", s.Particle(0).Pos, s.Particle(1).Pos)
	}
}

func TestCollisionCoincidentCenters(t *testing.T) {
	g := NewWithT(t)
	s := newTestSim(t, nil)
	s.Spawn(vec.New(3, 3))
	s.Spawn(vec.New(3, 3))

	s.SolveCollisions()

	a, b := s.Particle(0).Pos, s.Particle(1).Pos
	g.Expect(a.IsFinite()).To(BeTrue())
	g.Expect(b.IsFinite()).To(BeTrue())
	g.Expect(a.Dist(b)).To(BeNumerically(">", 0))
	g.Expect(s.Degenerate()).To(Equal(1))
}

func TestBoundaryContainment(t *testing.T) {
	s := newTestSim(t, func(p *Params) {
		p.MaxParticles = 64
		p.BoundaryCenter = vec.New(40, -25)
	})
	for i := 0; i < 64; i++ {
		angle := float64(i) * 0.37
		dist := float64(i) * 9
		s.Spawn(s.BoundaryCenter().Add(vec.New(math.Cos(angle), math.Sin(angle)).Scale(dist)))
	}

	s.ApplyConstraints()

	const eps = 1e-9
	for i := 0; i < s.Len(); i++ {
		p := s.Particle(i)
		d := s.BoundaryCenter().Dist(p.Pos)
		if d > s.BoundaryRadius()-p.Radius+eps {
			t.Errorf("particle %d at distance %.6f exceeds %.6f", i, d, s.BoundaryRadius()-p.Radius)
		}
	}
}

func TestBoundaryFollowsCenter(t *testing.T) {
	s := newTestSim(t, nil)
	s.Spawn(vec.New(0, 0))
	s.SetBoundaryCenter(vec.New(1000, 0))

	s.ApplyConstraints()

	got := s.Particle(0).Pos
	if got.Dist(vec.New(720, 0)) > 1e-9 {
		t.Errorf("clamped position = %v, want (720, 0)", got)
	}
}

func TestStepCorrectsBeforeIntegrating(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.Gravity = vec.Zero })
	s.Spawn(vec.New(500, 0))

	s.Step(tickDt)

	// Clamping happens before integration, so the clamped position becomes
	// the history and the step continues from the corrected point.
	p := s.Particle(0)
	if p.Prev.Dist(vec.New(280, 0)) > 1e-9 {
		t.Errorf("prev = %v, want clamped (280, 0)", p.Prev)
	}
	if p.Pos.Dist(vec.New(60, 0)) > 1e-9 {
		t.Errorf("pos = %v, want (60, 0)", p.Pos)
	}
}

func TestSpawnCap(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.MaxParticles = 5 })

	spawned := 0
	for i := 0; i < 50; i++ {
		if s.Spawn(vec.New(float64(i), 0)) {
			spawned++
		}
		if s.Len() > s.MaxParticles() {
			t.Fatalf("particle count %d exceeds cap %d", s.Len(), s.MaxParticles())
		}
	}
	if spawned != 5 || s.Len() != 5 {
		t.Errorf("spawned %d, len %d; want 5", spawned, s.Len())
	}
}

func TestSpawnDefaults(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.DefaultTag = 7 })
	s.Spawn(vec.New(1, 2))
	s.SpawnTagged(vec.New(3, 4), 9)

	p := s.Particle(0)
	if p.Radius != DefaultRadius || p.Acc != vec.Zero || p.Prev != p.Pos || p.Tag != 7 {
		t.Errorf("unexpected spawned particle: %+v", p)
	}
	if s.Particle(1).Tag != 9 {
		t.Errorf("tag = %d, want 9", s.Particle(1).Tag)
	}
}

func TestParticlesViewIsCopy(t *testing.T) {
	s := newTestSim(t, nil)
	s.Spawn(vec.New(1, 2))

	view := s.Particles()
	view[0].Pos = vec.New(99, 99)

	if s.Particle(0).Pos != vec.New(1, 2) {
		t.Error("mutating the view changed simulation state")
	}
}

func runScript(t *testing.T) []Particle {
	s := newTestSim(t, nil)
	for tick := 0; tick < 240; tick++ {
		if tick%20 == 0 {
			s.Spawn(s.BoundaryCenter().Add(vec.New(100, 200)))
		}
		if tick == 90 {
			s.SetBoundaryCenter(vec.New(30, -10))
		}
		s.Step(tickDt)
	}
	out := make([]Particle, s.Len())
	for i := range out {
		out[i] = s.Particle(i)
	}
	return out
}

func TestDeterminism(t *testing.T) {
	g := NewWithT(t)
	a := runScript(t)
	b := runScript(t)
	g.Expect(a).To(HaveLen(12))
	g.Expect(a).To(Equal(b))
}

func TestEndToEndSettlesOnBoundary(t *testing.T) {
	s := newTestSim(t, nil)
	spawn := vec.New(100, 200)
	s.Spawn(spawn)

	const eps = 0.5
	for tick := 1; tick <= 300; tick++ {
		s.Step(tickDt)
		if tick < 120 {
			continue
		}
		d := s.Particle(0).Pos.Dist(s.BoundaryCenter())
		if math.Abs(d-280) > eps {
			t.Fatalf("tick %d: distance %.4f not within %.2f of 280", tick, d, eps)
		}
	}

	if y := s.Particle(0).Pos.Y; y >= spawn.Y {
		t.Errorf("final y = %.4f, want below spawn height %.1f", y, spawn.Y)
	}
	if s.Tick() != 300 {
		t.Errorf("tick = %d, want 300", s.Tick())
	}
}

func TestValidateDetectsNonFinite(t *testing.T) {
	s := newTestSim(t, nil)
	s.Spawn(vec.New(0, 0))
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.particles[0].Pos = vec.New(math.Inf(1), 0)
	if err := s.Validate(); !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
}
