package verlet

import "errors"

// Domain errors for simulation construction.
var (
	// ErrInvalidParams indicates a Params value outside its valid range.
	ErrInvalidParams = errors.New("verlet: invalid simulation parameters")

	// ErrNonFinite indicates a particle position containing NaN or Inf.
	ErrNonFinite = errors.New("verlet: non-finite particle state")
)
