package metrics

import (
	"math"

	"github.com/san-kum/verletsim/internal/verlet"
)

// Containment tracks the worst distance a particle ends a tick beyond its
// allowed radius. Integration runs after the constraint, so small positive
// values are expected.
type Containment struct {
	name  string
	worst float64
}

func NewContainment() *Containment {
	return &Containment{name: "max_overshoot"}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(s *verlet.Simulation, dt, t float64) {
	center := s.BoundaryCenter()
	for i := 0; i < s.Len(); i++ {
		p := s.Particle(i)
		over := center.Dist(p.Pos) - (s.BoundaryRadius() - p.Radius)
		c.worst = math.Max(c.worst, over)
	}
}

func (c *Containment) Value() float64 { return c.worst }
func (c *Containment) Reset()         { c.worst = 0 }

// Penetration tracks the worst pair overlap, ignoring collision padding.
type Penetration struct {
	name  string
	worst float64
}

func NewPenetration() *Penetration {
	return &Penetration{name: "max_penetration"}
}

func (p *Penetration) Name() string { return p.name }

func (p *Penetration) Observe(s *verlet.Simulation, dt, t float64) {
	n := s.Len()
	for i := 0; i < n; i++ {
		a := s.Particle(i)
		for j := i + 1; j < n; j++ {
			b := s.Particle(j)
			overlap := a.Radius + b.Radius - a.Pos.Dist(b.Pos)
			p.worst = math.Max(p.worst, overlap)
		}
	}
}

func (p *Penetration) Value() float64 { return p.worst }
func (p *Penetration) Reset()         { p.worst = 0 }

type Population struct {
	name  string
	count int
}

func NewPopulation() *Population {
	return &Population{name: "particles"}
}

func (p *Population) Name() string                                { return p.name }
func (p *Population) Observe(s *verlet.Simulation, dt, t float64) { p.count = s.Len() }
func (p *Population) Value() float64                              { return float64(p.count) }
func (p *Population) Reset()                                      { p.count = 0 }
