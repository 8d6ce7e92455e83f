package clarkewright

import (
	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/route"
)

// Build runs the full Clarke-Wright pipeline: initial singleton routes,
// a savings-ordered merge pass, then a reduction to exactly k routes.
// Returns a RouteSet with Count() == k on success.
//
// Complexity: O(n² log n) for the savings sort, O(n²) for the merge pass,
// O(k·n·log n) for the reduction (see reduce.go).
func Build(inst *instance.Instance, k int) (*route.RouteSet, error) {
	if k <= 0 {
		return nil, ErrTargetNotPositive
	}
	if k > inst.CustomerCount() {
		return nil, ErrTargetExceedsCustomers
	}

	rs := initialRoutes(inst)
	combineRoutes(inst, rs)

	if err := ReduceToK(inst, rs, k); err != nil {
		return nil, err
	}

	return rs, nil
}

// initialRoutes seeds one singleton route [c] per customer, c in [1,n).
func initialRoutes(inst *instance.Instance) *route.RouteSet {
	rs := route.NewRouteSet(inst.N)
	for c := 1; c < inst.N; c++ {
		r, _ := route.New([]int{c}) // single customer, always valid
		_, _ = rs.Add(r)            // singleton customers are never double-owned
	}

	return rs
}

// combineRoutes iterates the savings list in order, merging routes R_i and
// R_j whenever i and j sit at mergeable endpoints and the combined demand
// fits capacity.
func combineRoutes(inst *instance.Instance, rs *route.RouteSet) {
	for _, sv := range computeSavings(inst) {
		if sv.S < 0 {
			continue // negative savings are never applied
		}

		slotI, foundI := rs.FindOwner(sv.I)
		slotJ, foundJ := rs.FindOwner(sv.J)
		if !foundI || !foundJ || slotI == slotJ {
			continue
		}

		routeI, _ := rs.Get(slotI)
		routeJ, _ := rs.Get(slotJ)

		// Reverse R_i if i sits at its head, R_j if j sits at its tail, so
		// that concatenation puts i at R_i's tail and j at R_j's head.
		if routeI.Seq[0] == sv.I {
			routeI, _ = routeI.Reverse(0, routeI.Len())
		}
		if routeJ.Seq[routeJ.Len()-1] == sv.J {
			routeJ, _ = routeJ.Reverse(0, routeJ.Len())
		}
		if routeI.Seq[routeI.Len()-1] != sv.I || routeJ.Seq[0] != sv.J {
			continue // endpoint condition not achievable
		}

		merged := route.Merge(routeI, routeJ)
		if merged.Demand(inst) > inst.Capacity {
			continue
		}

		// Release R_j's customers before installing the concatenation, so
		// Replace sees them unowned; in the other order it would reject the
		// merged route as double-owned.
		if _, err := rs.RemoveSlot(slotJ); err != nil {
			continue
		}
		_ = rs.Replace(slotI, merged) // cannot fail: R_j released, R_i owned by slotI
	}
}
