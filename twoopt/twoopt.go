// Package twoopt implements deterministic best-improvement 2-opt local
// search over a single route's customer sequence, leaving the customer set
// (and therefore capacity feasibility) of every route unchanged.
//
// Each full pass scans every candidate cut (i,j), keeps the single best
// improving reversal found, applies it, then rescans from scratch; the route
// is a local optimum under the 2-opt neighborhood once a full pass finds
// nothing. Moves are scored with the Δ-cost shortcut rather than a full
// cost recomputation.
//
// Contracts:
//   - inst is the borrowed, read-only Instance backing every Route in play.
//   - Reversal uses route.Route.Reverse's half-open [i,j) convention; a
//     candidate cut (i,j) with 0<=i<j<len(seq) reverses the closed interval
//     seq[i..j] by calling Reverse(i, j+1).
//
// Complexity: O(len²) candidate checks per pass, O(passes·len²) overall;
// each accepted move costs O(len) to rebuild the reversed sequence.
package twoopt

import (
	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/route"
)

// Improve runs 2-opt to a local optimum on r and returns the improved route.
// r itself is never mutated; the result may be r unchanged if no improving
// move exists.
func Improve(inst *instance.Instance, r *route.Route) *route.Route {
	cur := r
	for {
		i, j, delta := bestMove(inst, cur)
		if delta >= 0 {
			return cur
		}
		next, err := cur.Reverse(i, j+1)
		if err != nil {
			return cur // defensive; bestMove only returns in-range cuts
		}
		cur = next
	}
}

// ImproveAll runs Improve over every live route in rs, replacing each one in
// place via RouteSet.Replace.
func ImproveAll(inst *instance.Instance, rs *route.RouteSet) {
	for _, slot := range rs.Slots() {
		r, ok := rs.Get(slot)
		if !ok {
			continue
		}
		improved := Improve(inst, r)
		_ = rs.Replace(slot, improved) // Replace cannot fail: same customer set
	}
}

// bestMove scans every candidate cut (i,j), 0<=i<j<len(seq), and returns the
// one with the most negative Δ-cost, using the depot in place of any
// out-of-range neighbor. delta>=0 means no improving move exists.
//
// Δ = -D[a,b] - D[c,d] + D[a,c] + D[b,d], where a=seq[i-1] (or depot),
// b=seq[i], c=seq[j], d=seq[j+1] (or depot).
func bestMove(inst *instance.Instance, r *route.Route) (bestI, bestJ, bestDelta int) {
	seq := r.Seq
	n := len(seq)
	bestDelta = 0
	bestI, bestJ = -1, -1

	var a, b, c, d, delta int
	for i := 0; i < n-1; i++ {
		if i == 0 {
			a = 0
		} else {
			a = seq[i-1]
		}
		b = seq[i]
		for j := i + 1; j < n; j++ {
			c = seq[j]
			if j == n-1 {
				d = 0
			} else {
				d = seq[j+1]
			}
			delta = -inst.Distance(a, b) - inst.Distance(c, d) + inst.Distance(a, c) + inst.Distance(b, d)
			if delta < bestDelta {
				bestDelta = delta
				bestI = i
				bestJ = j
			}
		}
	}

	return bestI, bestJ, bestDelta
}
