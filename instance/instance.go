// Package instance holds the immutable problem data for the Capacitated
// Vehicle Routing Problem: node count, vehicle capacity, per-node demand,
// and the symmetric integer distance matrix. Everything downstream (route,
// clarkewright, twoopt, kneighbors, pbo) borrows an *Instance read-only.
//
// Design:
//   - Validation runs once, at construction (NewInstance); nothing in this
//     package mutates an Instance afterward.
//   - Strict sentinel errors only, per errors.go. No fmt.Errorf in hot paths.
//   - Index 0 is always the depot; customers occupy [1, N).
package instance

import "github.com/kvikrouting/cvrp-pbo/matrix"

// Instance is the immutable CVRP problem description.
//
// Invariants (enforced by NewInstance):
//   - N >= 2 (depot plus at least one customer).
//   - Capacity >= 0.
//   - len(Demand) == N, Demand[0] == 0, Demand[c] >= 0, Demand[c] <= Capacity for c in [1,N).
//   - Dist is N×N, symmetric, zero diagonal, non-negative.
type Instance struct {
	N        int           // total node count, depot included
	Capacity int           // vehicle capacity Q
	Demand   []int         // demand[0..N), demand[0] == 0
	Dist     *matrix.Dense // N×N symmetric distance matrix, zero diagonal
}

// NewInstance validates and constructs an Instance from already-parsed data.
// The caller (an external TSPLIB parser, out of scope for this package) owns
// turning raw instance files into n, capacity, demand and dist.
//
// Complexity: O(n²) for the distance-matrix scan.
func NewInstance(n, capacity int, demand []int, dist *matrix.Dense) (*Instance, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if len(demand) != n {
		return nil, ErrDimensionMismatch
	}
	if dist == nil || dist.Rows() != dist.Cols() {
		return nil, ErrNonSquare
	}
	if dist.Rows() != n {
		return nil, ErrDimensionMismatch
	}
	if demand[0] != 0 {
		return nil, ErrDepotDemand
	}

	var (
		i, j int
		dij  int
		dji  int
		err  error
	)

	for i = 0; i < n; i++ {
		dij, err = dist.At(i, i)
		if err != nil {
			return nil, ErrDimensionMismatch
		}
		if dij != 0 {
			return nil, ErrNonZeroDiagonal
		}
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dij, err = dist.At(i, j)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			dji, err = dist.At(j, i)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			if dij < 0 || dji < 0 {
				return nil, ErrNegativeDistance
			}
			if dij != dji {
				return nil, ErrAsymmetricDistance
			}
		}
	}

	for i = 1; i < n; i++ {
		if demand[i] < 0 {
			return nil, ErrNegativeDemand
		}
		if demand[i] > capacity {
			return nil, ErrDemandExceedsCapacity
		}
	}

	demandCopy := make([]int, n)
	copy(demandCopy, demand)

	return &Instance{
		N:        n,
		Capacity: capacity,
		Demand:   demandCopy,
		Dist:     dist,
	}, nil
}

// CustomerCount returns the number of non-depot customers (N-1).
func (inst *Instance) CustomerCount() int {
	return inst.N - 1
}

// Distance returns D[i][j], panicking only if i or j is out of [0,N) —
// a programmer error, since every caller in this module derives indices
// from inst.N or a Route built against this same Instance.
func (inst *Instance) Distance(i, j int) int {
	return inst.Dist.MustAt(i, j)
}
