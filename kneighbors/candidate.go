package kneighbors

import (
	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/matrix"
	"github.com/kvikrouting/cvrp-pbo/route"
)

// ForbiddenEdge is the candidate-matrix sentinel marking an arc excluded
// from a route's vehicle in the PBO model.
const ForbiddenEdge = -1

// CandidateMatrix builds M_r for route r: an n×n
// matrix initialized to ForbiddenEdge with a zero diagonal, populated with
// the true distance on:
//   - the two depot-boundary edges (0,r[0]) and (r[-1],0),
//   - every consecutive edge (r[t],r[t+1]),
//   - for every customer c in r and every v in N(c), the edge (c,v).
//
// All writes are symmetric. neighbors must contain an entry for every
// customer appearing in r (as built by NeighborLists).
//
// Complexity: O(n²) to allocate and initialize, O(len(r)·k) to populate.
func CandidateMatrix(inst *instance.Instance, r *route.Route, neighbors map[int][]int) (*matrix.Dense, error) {
	n := inst.N
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := m.Set(i, j, ForbiddenEdge); err != nil {
				return nil, err
			}
		}
	}

	writeEdge := func(i, j int) error {
		w := inst.Distance(i, j)
		if err := m.Set(i, j, w); err != nil {
			return err
		}

		return m.Set(j, i, w)
	}

	seq := r.Seq
	if err := writeEdge(0, seq[0]); err != nil {
		return nil, err
	}
	if err := writeEdge(seq[len(seq)-1], 0); err != nil {
		return nil, err
	}
	for t := 0; t < len(seq)-1; t++ {
		if err := writeEdge(seq[t], seq[t+1]); err != nil {
			return nil, err
		}
	}
	for _, c := range seq {
		for _, v := range neighbors[c] {
			if err := writeEdge(c, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// BuildAll constructs a candidate matrix for every live route in rs, keyed
// by the route's RouteSet slot.
func BuildAll(inst *instance.Instance, rs *route.RouteSet, k int) (map[int]*matrix.Dense, error) {
	neighbors, err := NeighborLists(inst, k)
	if err != nil {
		return nil, err
	}

	out := make(map[int]*matrix.Dense, rs.Count())
	for _, slot := range rs.Slots() {
		r, ok := rs.Get(slot)
		if !ok {
			continue
		}
		mr, err := CandidateMatrix(inst, r, neighbors)
		if err != nil {
			return nil, err
		}
		out[slot] = mr
	}

	return out, nil
}
