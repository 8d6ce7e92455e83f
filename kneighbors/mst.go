package kneighbors

import (
	"sort"

	"github.com/kvikrouting/cvrp-pbo/instance"
)

// mstEdge is one tree edge of the global minimum spanning tree, i<j.
type mstEdge struct {
	I, J, Weight int
}

// buildMST computes a minimum spanning tree over the complete graph on all n
// nodes (depot included) with edge weights D[i,j], using Kruskal's algorithm
// with a union-find over plain integer node ids (the instance's nodes are
// already a dense [0,n) range, so no string vertex-id map is needed) and
// deterministic tie-breaking by (weight, i, j) ascending.
//
// Complexity: O(n²) edges, O(n² log n) to sort, O(n² α(n)) for union-find.
func buildMST(inst *instance.Instance) []mstEdge {
	n := inst.N
	edges := make([]mstEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, mstEdge{I: i, J: j, Weight: inst.Distance(i, j)})
		}
	}
	sortEdges(edges)

	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	var find func(int) int
	find = func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}

		return v
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	mst := make([]mstEdge, 0, n-1)
	for _, e := range edges {
		if find(e.I) != find(e.J) {
			union(e.I, e.J)
			mst = append(mst, e)
			if len(mst) == n-1 {
				break
			}
		}
	}

	return mst
}

// sortEdges sorts edges ascending by (Weight, I, J) — the complete graph on
// an Instance is always connected, so no disconnected-graph error kind is
// needed here (unlike Kruskal over an arbitrary core.Graph).
func sortEdges(edges []mstEdge) {
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].Weight != edges[b].Weight {
			return edges[a].Weight < edges[b].Weight
		}
		if edges[a].I != edges[b].I {
			return edges[a].I < edges[b].I
		}
		return edges[a].J < edges[b].J
	})
}
