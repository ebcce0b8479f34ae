package verlet

import (
	"fmt"

	"github.com/san-kum/verletsim/internal/vec"
)

// fallbackNormal separates pairs whose centers coincide.
var fallbackNormal = vec.New(1, 0)

type Simulation struct {
	particles []Particle
	params    Params
	center    vec.Vec2
	tick      int

	degenerate int
}

func New(params Params) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		particles: make([]Particle, 0, params.MaxParticles),
		params:    params,
		center:    params.BoundaryCenter,
	}, nil
}

// MustNew is New for parameters known to be valid.
func MustNew(params Params) *Simulation {
	s, err := New(params)
	if err != nil {
		panic(err)
	}
	return s
}

// Step advances the simulation by dt. The phase order is fixed.
func (s *Simulation) Step(dt float64) {
	s.ApplyGravity()
	s.SolveCollisions()
	s.ApplyConstraints()
	s.IntegrateAll(dt)
	s.tick++
}

func (s *Simulation) ApplyGravity() {
	for i := range s.particles {
		s.particles[i].Accelerate(s.params.Gravity)
	}
}

// SolveCollisions runs one relaxation pass over every pair i < j. Residual
// overlap in dense clusters is left for later ticks.
func (s *Simulation) SolveCollisions() {
	response := s.params.Response
	padding := s.params.Padding
	n := len(s.particles)

	for i := 0; i < n; i++ {
		a := &s.particles[i]
		for j := i + 1; j < n; j++ {
			b := &s.particles[j]

			d := a.Pos.Sub(b.Pos)
			dist2 := d.LenSq()
			minDist := a.Radius + b.Radius + padding
			if dist2 >= minDist*minDist {
				continue
			}

			normal, err := d.Unit()
			if err != nil {
				normal = fallbackNormal
				s.degenerate++
			}
			dist := d.Len()

			total := a.Radius + b.Radius
			ratioA := a.Radius / total
			ratioB := b.Radius / total
			delta := 0.5 * response * (dist - minDist)

			a.Pos = a.Pos.Sub(normal.Scale(ratioB * delta))
			b.Pos = b.Pos.Add(normal.Scale(ratioA * delta))
		}
	}
}

// ApplyConstraints clamps every particle back inside the boundary.
func (s *Simulation) ApplyConstraints() {
	radius := s.params.BoundaryRadius
	for i := range s.particles {
		p := &s.particles[i]
		v := s.center.Sub(p.Pos)
		limit := radius - p.Radius
		if v.Len() <= limit {
			continue
		}
		n, err := v.Unit()
		if err != nil {
			s.degenerate++
			continue
		}
		p.Pos = s.center.Sub(n.Scale(limit))
	}
}

func (s *Simulation) IntegrateAll(dt float64) {
	for i := range s.particles {
		s.particles[i].Integrate(dt)
	}
}

// Spawn adds a particle at pos with the default tag. It is a no-op once the
// particle cap is reached.
func (s *Simulation) Spawn(pos vec.Vec2) bool {
	return s.SpawnTagged(pos, s.params.DefaultTag)
}

func (s *Simulation) SpawnTagged(pos vec.Vec2, tag Tag) bool {
	if len(s.particles) >= s.params.MaxParticles {
		return false
	}
	s.particles = append(s.particles, NewParticle(pos, s.params.DefaultRadius, tag))
	return true
}

func (s *Simulation) SetBoundaryCenter(p vec.Vec2) { s.center = p }

func (s *Simulation) BoundaryCenter() vec.Vec2 { return s.center }
func (s *Simulation) BoundaryRadius() float64  { return s.params.BoundaryRadius }
func (s *Simulation) Gravity() vec.Vec2        { return s.params.Gravity }
func (s *Simulation) MaxParticles() int        { return s.params.MaxParticles }
func (s *Simulation) Params() Params           { return s.params }
func (s *Simulation) Len() int                 { return len(s.particles) }
func (s *Simulation) Tick() int                { return s.tick }

// Degenerate counts the corrections skipped or redirected because of
// zero-length geometry.
func (s *Simulation) Degenerate() int { return s.degenerate }

// Particles returns a copy of the renderable particle state.
func (s *Simulation) Particles() []ParticleView {
	views := make([]ParticleView, len(s.particles))
	for i, p := range s.particles {
		views[i] = p.View()
	}
	return views
}

// Particle returns a copy of the full state of particle i.
func (s *Simulation) Particle(i int) Particle {
	return s.particles[i]
}

// Validate reports the first particle with a non-finite state.
func (s *Simulation) Validate() error {
	for i, p := range s.particles {
		if !p.IsFinite() {
			return fmt.Errorf("%w: particle %d at %v", ErrNonFinite, i, p.Pos)
		}
	}
	return nil
}
