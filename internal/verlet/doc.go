// Package verlet implements a 2D position-based particle simulation.
//
// The package defines the core types for stepping circular particles under
// constant gravity inside a movable circular boundary:
//
//   - [Particle]: Verlet integration state for one body
//   - [Simulation]: owns the particles and runs the per-tick pipeline
//   - [Params]: static configuration supplied at construction
//   - [Metric], [Observer]: hooks used by headless runners
//
// Each call to [Simulation.Step] runs, in order: gravity accumulation, one
// relaxation pass of pairwise collision resolution, boundary clamping and
// Verlet integration. Collisions and the boundary operate on pre-integration
// positions so integration re-derives velocity from the corrected history.
//
// # Example
//
//	s, _ := verlet.New(verlet.DefaultParams())
//	s.Spawn(vec.New(100, 200))
//	for i := 0; i < 300; i++ {
//		s.Step(1.0 / 60)
//	}
//
// # Thread Safety
//
// A Simulation is NOT safe for concurrent use. Independent Simulation values
// share nothing and may be stepped on separate goroutines.
package verlet
