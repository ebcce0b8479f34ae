package verlet

import (
	"fmt"
	"math"

	"github.com/san-kum/verletsim/internal/vec"
)

// Tag is an opaque visual identifier carried by a particle. The simulation
// never interprets it.
type Tag uint8

const (
	DefaultRadius   = 20.0
	DefaultResponse = 0.8
	DefaultPadding  = 2.0
	DefaultMax      = 20
	DefaultBoundary = 300.0
)

// Params is the static configuration of a Simulation.
type Params struct {
	Gravity        vec.Vec2
	BoundaryCenter vec.Vec2
	BoundaryRadius float64
	MaxParticles   int
	DefaultRadius  float64
	DefaultTag     Tag
	// Response scales the positional correction of an overlapping pair.
	Response float64
	// Padding is added to the contact distance of every pair.
	Padding float64
}

func DefaultParams() Params {
	return Params{
		Gravity:        vec.New(0, -1000),
		BoundaryRadius: DefaultBoundary,
		MaxParticles:   DefaultMax,
		DefaultRadius:  DefaultRadius,
		Response:       DefaultResponse,
		Padding:        DefaultPadding,
	}
}

// Validate checks the ranges New relies on.
func (p Params) Validate() error {
	switch {
	case !p.Gravity.IsFinite():
		return fmt.Errorf("%w: gravity must be finite, got %v", ErrInvalidParams, p.Gravity)
	case !p.BoundaryCenter.IsFinite():
		return fmt.Errorf("%w: boundary center must be finite, got %v", ErrInvalidParams, p.BoundaryCenter)
	case !(p.BoundaryRadius > 0) || math.IsInf(p.BoundaryRadius, 0):
		return fmt.Errorf("%w: boundary radius must be positive, got %f", ErrInvalidParams, p.BoundaryRadius)
	case !(p.DefaultRadius > 0):
		return fmt.Errorf("%w: particle radius must be positive, got %f", ErrInvalidParams, p.DefaultRadius)
	case p.DefaultRadius >= p.BoundaryRadius:
		return fmt.Errorf("%w: particle radius %f does not fit boundary radius %f", ErrInvalidParams, p.DefaultRadius, p.BoundaryRadius)
	case p.MaxParticles < 0:
		return fmt.Errorf("%w: max particles must be non-negative, got %d", ErrInvalidParams, p.MaxParticles)
	case !(p.Response > 0) || p.Response > 1:
		return fmt.Errorf("%w: response must be in (0, 1], got %f", ErrInvalidParams, p.Response)
	case p.Padding < 0 || math.IsNaN(p.Padding):
		return fmt.Errorf("%w: padding must be non-negative, got %f", ErrInvalidParams, p.Padding)
	}
	return nil
}

// ParticleView is the read-only part of a particle a renderer needs.
type ParticleView struct {
	Pos    vec.Vec2
	Radius float64
	Tag    Tag
}

type Metric interface {
	Name() string
	Observe(s *Simulation, dt, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s *Simulation, tick int, t float64)
}
