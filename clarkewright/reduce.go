package clarkewright

import (
	"sort"

	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/route"
)

// ReduceToK collapses rs down to exactly k live routes by repeatedly
// eliminating the smallest route and redistributing its customers into the
// remaining routes, reinserting each customer into the route with the
// smallest radial load D[0,c'] among those with spare capacity.
//
// Each elimination attempt is tried against a RouteSet snapshot; if any
// customer from the candidate route cannot be placed, the snapshot is
// restored and the next-smallest candidate is tried. Returns
// ErrReductionInfeasible if no live route can be eliminated.
func ReduceToK(inst *instance.Instance, rs *route.RouteSet, k int) error {
	for rs.Count() > k {
		if !eliminateSmallest(inst, rs) {
			return ErrReductionInfeasible
		}
	}

	return nil
}

// eliminateSmallest tries each live route, smallest (by customer count, ties
// by ascending slot) first, as a candidate for removal. Returns true and
// leaves rs mutated once a candidate is fully redistributed; returns false
// and leaves rs unchanged if no candidate can be eliminated.
func eliminateSmallest(inst *instance.Instance, rs *route.RouteSet) bool {
	candidates := rs.Slots()
	sort.Slice(candidates, func(a, b int) bool {
		ra, _ := rs.Get(candidates[a])
		rb, _ := rs.Get(candidates[b])
		if ra.Len() != rb.Len() {
			return ra.Len() < rb.Len()
		}
		return candidates[a] < candidates[b]
	})

	for _, slot := range candidates {
		if tryEliminate(inst, rs, slot) {
			return true
		}
	}

	return false
}

// tryEliminate attempts to remove the route at slot and reinsert every one
// of its customers elsewhere. On any failure it restores rs from a
// pre-attempt snapshot and returns false.
func tryEliminate(inst *instance.Instance, rs *route.RouteSet, slot int) bool {
	snap := rs.Clone()

	removed, err := rs.RemoveSlot(slot)
	if err != nil {
		return false
	}

	for _, c := range removed.Seq {
		if !reinsert(inst, rs, c) {
			rs.Restore(snap)
			return false
		}
	}

	return true
}

// reinsert appends customer c to a remaining live route: candidate routes
// are tried in ascending order of radial load sum_{c' in route} D[0,c']
// (ties broken by ascending slot), and c goes to the first route whose
// demand, including c, still fits capacity.
func reinsert(inst *instance.Instance, rs *route.RouteSet, c int) bool {
	slots := rs.Slots()
	sort.Slice(slots, func(a, b int) bool {
		ra, _ := rs.Get(slots[a])
		rb, _ := rs.Get(slots[b])
		loadA := radialLoad(inst, ra)
		loadB := radialLoad(inst, rb)
		if loadA != loadB {
			return loadA < loadB
		}
		return slots[a] < slots[b]
	})

	for _, slot := range slots {
		r, _ := rs.Get(slot)
		if r.Demand(inst)+inst.Demand[c] > inst.Capacity {
			continue
		}
		if err := rs.Replace(slot, r.Append(c)); err == nil {
			return true
		}
	}

	return false
}

// radialLoad sums D[0,c'] over every customer c' in r.
func radialLoad(inst *instance.Instance, r *route.Route) int {
	total := 0
	for _, c := range r.Seq {
		total += inst.Distance(0, c)
	}

	return total
}
