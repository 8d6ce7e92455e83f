// Package kneighbors: sentinel errors for candidate-edge construction.
package kneighbors

import "errors"

var (
	// ErrNeighborsUnavailable indicates fewer than k neighbors could be
	// assembled for some customer, even after falling back to the full
	// distance-matrix row.
	ErrNeighborsUnavailable = errors.New("kneighbors: cannot assemble k neighbors for customer")

	// ErrInvalidK indicates a non-positive neighbor count was requested.
	ErrInvalidK = errors.New("kneighbors: k must be positive")
)
