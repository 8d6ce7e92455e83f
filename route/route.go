// Package route defines Route (an ordered sequence of customers served by one
// vehicle) and RouteSet (the partition of all customers across a fleet).
//
// Design:
//   - Cost and Demand are pure functions of Seq and an *instance.Instance,
//     recomputed on every call. Routes hold at most a few hundred customers,
//     so O(len) recomputation stays cheap and there is no cache to
//     invalidate around Append/Remove/Reverse.
//   - Reverse and Merge return a new Route rather than mutating in place.
package route

import "github.com/kvikrouting/cvrp-pbo/instance"

// Route is a non-empty ordered sequence of customer indices (never the
// depot). Cost and Demand are derived from Seq against a given Instance.
type Route struct {
	Seq []int
}

// New constructs a Route from seq, rejecting an empty or depot-containing sequence.
func New(seq []int) (*Route, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyRoute
	}
	for _, c := range seq {
		if c == 0 {
			return nil, ErrDepotInSequence
		}
	}
	cp := make([]int, len(seq))
	copy(cp, seq)

	return &Route{Seq: cp}, nil
}

// Len returns the number of customers in the route.
func (r *Route) Len() int {
	return len(r.Seq)
}

// Cost computes D[0,seq[0]] + sum(D[seq[i],seq[i+1]]) + D[seq[-1],0].
// Complexity: O(len(r.Seq)).
func (r *Route) Cost(inst *instance.Instance) int {
	n := len(r.Seq)
	cost := inst.Distance(0, r.Seq[0])
	for i := 0; i < n-1; i++ {
		cost += inst.Distance(r.Seq[i], r.Seq[i+1])
	}
	cost += inst.Distance(r.Seq[n-1], 0)

	return cost
}

// Demand computes the total demand of all customers in the route.
// Complexity: O(len(r.Seq)).
func (r *Route) Demand(inst *instance.Instance) int {
	var total int
	for _, c := range r.Seq {
		total += inst.Demand[c]
	}

	return total
}

// Clone returns a deep copy of r.
func (r *Route) Clone() *Route {
	cp := make([]int, len(r.Seq))
	copy(cp, r.Seq)

	return &Route{Seq: cp}
}

// Append adds customer c to the tail of the route, returning a new Route.
func (r *Route) Append(c int) *Route {
	out := make([]int, len(r.Seq)+1)
	copy(out, r.Seq)
	out[len(r.Seq)] = c

	return &Route{Seq: out}
}

// Remove returns a new Route with the first occurrence of customer c removed.
func (r *Route) Remove(c int) (*Route, error) {
	idx := -1
	for i, v := range r.Seq {
		if v == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCustomerNotFound
	}
	if len(r.Seq) == 1 {
		return nil, ErrEmptyRoute
	}
	out := make([]int, 0, len(r.Seq)-1)
	out = append(out, r.Seq[:idx]...)
	out = append(out, r.Seq[idx+1:]...)

	return &Route{Seq: out}, nil
}

// Reverse returns a new Route whose subrange [i,j) is reversed; i and j are
// half-open bounds into r.Seq, so Reverse(0, Len()) reverses the entire
// route — an equivalent route, since the depot brackets both ends.
func (r *Route) Reverse(i, j int) (*Route, error) {
	n := len(r.Seq)
	if i < 0 || j > n || i > j {
		return nil, ErrIndexOutOfRange
	}
	out := make([]int, n)
	copy(out, r.Seq)
	for l, h := i, j-1; l < h; l, h = l+1, h-1 {
		out[l], out[h] = out[h], out[l]
	}

	return &Route{Seq: out}, nil
}

// Merge concatenates r (tail) with other (head) into a new Route: r's
// customers first, then other's, in order. Both inputs are left unmodified.
func Merge(r, other *Route) *Route {
	out := make([]int, 0, len(r.Seq)+len(other.Seq))
	out = append(out, r.Seq...)
	out = append(out, other.Seq...)

	return &Route{Seq: out}
}
