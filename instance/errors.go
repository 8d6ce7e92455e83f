// Package instance: sentinel errors for instance construction and validation.
package instance

import "errors"

var (
	// ErrDimensionMismatch indicates the demand vector or distance matrix does
	// not have the expected n entries / n×n shape.
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("instance: distance matrix is not square")

	// ErrAsymmetricDistance indicates D[i][j] != D[j][i] for some i,j.
	ErrAsymmetricDistance = errors.New("instance: distance matrix is not symmetric")

	// ErrNonZeroDiagonal indicates some D[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("instance: distance matrix has a non-zero diagonal entry")

	// ErrNegativeDistance indicates a negative entry was found in the distance matrix.
	ErrNegativeDistance = errors.New("instance: negative distance encountered")

	// ErrNegativeDemand indicates a negative customer demand.
	ErrNegativeDemand = errors.New("instance: negative demand encountered")

	// ErrDemandExceedsCapacity indicates some customer's demand exceeds vehicle capacity Q,
	// making the instance infeasible for any single-vehicle visit.
	ErrDemandExceedsCapacity = errors.New("instance: customer demand exceeds vehicle capacity")

	// ErrDepotDemand indicates the depot (index 0) was given a non-zero demand.
	ErrDepotDemand = errors.New("instance: depot demand must be zero")

	// ErrTooFewNodes indicates n < 2 (no customers besides the depot).
	ErrTooFewNodes = errors.New("instance: instance must contain at least one customer")
)
