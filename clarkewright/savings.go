// Package clarkewright implements the classical parallel Clarke-Wright
// savings heuristic: savings list construction, a merge pass that greedily
// joins routes by descending saving, and a reduction pass that collapses the
// resulting route count down to the target fleet size K.
//
// Route lookups during the merge pass go through the RouteSet owner map,
// so each savings entry costs O(1) to test and the whole pass stays O(n²).
package clarkewright

import (
	"sort"

	"github.com/kvikrouting/cvrp-pbo/instance"
)

// saving holds one candidate merge (i,j) and its Clarke-Wright saving value
// s = D[0,i] + D[0,j] - D[i,j].
type saving struct {
	S, I, J int
}

// computeSavings builds the full savings list for every unordered customer
// pair (i,j), 1<=i<j<n, sorted by descending saving with ties broken
// ascending by (i,j), so identical instances always merge identically.
//
// Complexity: O(n²) pairs, O(n² log n) to sort.
func computeSavings(inst *instance.Instance) []saving {
	n := inst.N
	savings := make([]saving, 0, n*(n-1)/2)

	for i := 1; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := inst.Distance(0, i) + inst.Distance(0, j) - inst.Distance(i, j)
			savings = append(savings, saving{S: s, I: i, J: j})
		}
	}

	sort.Slice(savings, func(a, b int) bool {
		if savings[a].S != savings[b].S {
			return savings[a].S > savings[b].S // descending saving
		}
		if savings[a].I != savings[b].I {
			return savings[a].I < savings[b].I // ascending i
		}
		return savings[a].J < savings[b].J // ascending j
	})

	return savings
}
