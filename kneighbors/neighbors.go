package kneighbors

import (
	"sort"

	"github.com/kvikrouting/cvrp-pbo/instance"
)

// NeighborLists builds N(c) for every customer c in [1,n), each of size k:
//  1. Take c's neighbors in the global MST, sorted ascending by tree-edge
//     weight (ties ascending by neighbor index), up to k.
//  2. If fewer than k, extend from c's row in D, sorted ascending by
//     D[c,·] (ties ascending by index), excluding c and already-chosen,
//     until reaching k or exhausting candidates.
//  3. If still short of k, fail with ErrNeighborsUnavailable.
//
// Returns a map keyed by customer index; NeighborLists[c] has length exactly
// k for every customer c in [1,n).
//
// Complexity: O(n² log n) to build the MST once, O(n log n) per customer for the
// distance-row fallback sort, O(n² log n) overall.
func NeighborLists(inst *instance.Instance, k int) (map[int][]int, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	mst := buildMST(inst)
	mstNeighbors := make(map[int][]mstEdge, inst.N)
	for _, e := range mst {
		mstNeighbors[e.I] = append(mstNeighbors[e.I], e)
		mstNeighbors[e.J] = append(mstNeighbors[e.J], e)
	}

	out := make(map[int][]int, inst.CustomerCount())
	for c := 1; c < inst.N; c++ {
		list, err := neighborsFor(inst, c, k, mstNeighbors[c])
		if err != nil {
			return nil, err
		}
		out[c] = list
	}

	return out, nil
}

// neighborsFor assembles N(c) per the two-stage rule above.
func neighborsFor(inst *instance.Instance, c, k int, treeEdges []mstEdge) ([]int, error) {
	type cand struct{ other, weight int }

	fromTree := make([]cand, 0, len(treeEdges))
	for _, e := range treeEdges {
		other := e.I
		if other == c {
			other = e.J
		}
		fromTree = append(fromTree, cand{other: other, weight: e.Weight})
	}
	sort.Slice(fromTree, func(a, b int) bool {
		if fromTree[a].weight != fromTree[b].weight {
			return fromTree[a].weight < fromTree[b].weight
		}
		return fromTree[a].other < fromTree[b].other
	})

	chosen := make([]int, 0, k)
	seen := make(map[int]bool, k)
	for _, cd := range fromTree {
		if len(chosen) == k {
			break
		}
		chosen = append(chosen, cd.other)
		seen[cd.other] = true
	}

	if len(chosen) < k {
		fallback := make([]cand, 0, inst.N-1)
		for v := 0; v < inst.N; v++ {
			if v == c || seen[v] {
				continue
			}
			fallback = append(fallback, cand{other: v, weight: inst.Distance(c, v)})
		}
		sort.Slice(fallback, func(a, b int) bool {
			if fallback[a].weight != fallback[b].weight {
				return fallback[a].weight < fallback[b].weight
			}
			return fallback[a].other < fallback[b].other
		})
		for _, cd := range fallback {
			if len(chosen) == k {
				break
			}
			chosen = append(chosen, cd.other)
			seen[cd.other] = true
		}
	}

	if len(chosen) < k {
		return nil, ErrNeighborsUnavailable
	}

	return chosen, nil
}
