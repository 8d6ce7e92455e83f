// Package pbo: sentinel errors for the pseudo-Boolean optimization encoder,
// serializer, and decoder.
package pbo

import "errors"

var (
	// ErrUnsatisfiable indicates the solver proved the encoded model infeasible.
	ErrUnsatisfiable = errors.New("pbo: solver reports model unsatisfiable")

	// ErrInconsistentSolution indicates the solver's reported assignment
	// violates route-reconstruction invariants: a broken arc chain, a
	// customer visited twice, or a customer count mismatch.
	ErrInconsistentSolution = errors.New("pbo: decoded assignment violates route invariants")

	// ErrMalformedOutput indicates a `v` line token could not be parsed as a
	// signed literal, or no `v` lines were present at all.
	ErrMalformedOutput = errors.New("pbo: malformed solver output")

	// ErrNoVehicles indicates an encode was attempted with zero vehicles.
	ErrNoVehicles = errors.New("pbo: vehicle count must be positive")
)
