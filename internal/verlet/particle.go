package verlet

import "github.com/san-kum/verletsim/internal/vec"

// Particle holds the integration state of one circular body. Velocity is
// implicit in the difference between Pos and Prev.
type Particle struct {
	Pos    vec.Vec2
	Prev   vec.Vec2
	Acc    vec.Vec2
	Radius float64
	Tag    Tag
}

// NewParticle returns a particle at rest at pos.
func NewParticle(pos vec.Vec2, radius float64, tag Tag) Particle {
	return Particle{
		Pos:    pos,
		Prev:   pos,
		Radius: radius,
		Tag:    tag,
	}
}

// Accelerate adds a to the accumulator.
func (p *Particle) Accelerate(a vec.Vec2) {
	p.Acc = p.Acc.Add(a)
}

// Integrate advances the particle by one Verlet step and clears the
// accumulator. Exactly one Integrate must follow the Accelerate calls of a
// tick.
func (p *Particle) Integrate(dt float64) {
	delta := p.Pos.Sub(p.Prev)
	p.Prev = p.Pos
	p.Pos = p.Pos.Add(delta).Add(p.Acc.Scale(dt * dt))
	p.Acc = vec.Zero
}

// Velocity derives the velocity implied by the position history.
func (p Particle) Velocity(dt float64) vec.Vec2 {
	return p.Pos.Sub(p.Prev).Div(dt)
}

// SetVelocity rewrites the position history so the next step moves at v.
func (p *Particle) SetVelocity(v vec.Vec2, dt float64) {
	p.Prev = p.Pos.Sub(v.Scale(dt))
}

// AddVelocity adds v to the implied velocity.
func (p *Particle) AddVelocity(v vec.Vec2, dt float64) {
	p.Prev = p.Prev.Sub(v.Scale(dt))
}

func (p Particle) View() ParticleView {
	return ParticleView{Pos: p.Pos, Radius: p.Radius, Tag: p.Tag}
}

func (p Particle) IsFinite() bool {
	return p.Pos.IsFinite() && p.Prev.IsFinite()
}
