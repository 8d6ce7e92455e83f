package route

// RouteSet is an unordered collection of Routes whose sequences partition
// {1..n-1}. RouteSet exclusively owns its Routes; Routes borrow the Instance
// read-only (the Instance itself is never stored here).
//
// Design: a dense indexed vector of slots with stable indices during a merge
// pass, marking removed slots nil rather than compacting, plus an
// owner[customer] -> slot map kept in lock-step so "which route holds
// customer c" is O(1) instead of a linear scan over all routes. FindOwner
// returns (slot int, found bool) rather than a zero-valued sentinel, since
// slot 0 is a perfectly valid owner.
type RouteSet struct {
	slots []*Route // nil entries are removed slots, kept to preserve stable indices
	owner []int    // owner[c] = slot index owning customer c, or -1 if unowned
	live  int      // number of non-nil slots
}

// NewRouteSet allocates a RouteSet for an instance with n total nodes
// (depot included); owner is sized n so customer indices index directly.
func NewRouteSet(n int) *RouteSet {
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}

	return &RouteSet{owner: owner}
}

// Add inserts r as a new slot, claiming ownership of every customer in it.
// Returns ErrCustomerAlreadyOwned without mutating the set if any customer
// in r is already owned by another slot.
func (rs *RouteSet) Add(r *Route) (int, error) {
	for _, c := range r.Seq {
		if rs.owner[c] != -1 {
			return 0, ErrCustomerAlreadyOwned
		}
	}
	slot := len(rs.slots)
	rs.slots = append(rs.slots, r)
	for _, c := range r.Seq {
		rs.owner[c] = slot
	}
	rs.live++

	return slot, nil
}

// Get returns the route at slot, or (nil, false) if the slot was removed or
// never allocated.
func (rs *RouteSet) Get(slot int) (*Route, bool) {
	if slot < 0 || slot >= len(rs.slots) || rs.slots[slot] == nil {
		return nil, false
	}

	return rs.slots[slot], true
}

// Replace swaps the route at slot for newRoute, reassigning ownership of
// every customer: old customers are released, newRoute's are claimed.
// Used by ClarkeWright's merge pass, which replaces R_i with the R_i⊕R_j
// concatenation in place rather than allocating a fresh slot.
func (rs *RouteSet) Replace(slot int, newRoute *Route) error {
	old, ok := rs.Get(slot)
	if !ok {
		return ErrUnknownSlot
	}
	for _, c := range newRoute.Seq {
		if owner := rs.owner[c]; owner != -1 && owner != slot {
			return ErrCustomerAlreadyOwned
		}
	}
	for _, c := range old.Seq {
		rs.owner[c] = -1
	}
	rs.slots[slot] = newRoute
	for _, c := range newRoute.Seq {
		rs.owner[c] = slot
	}

	return nil
}

// RemoveSlot deletes the route at slot, releasing ownership of its
// customers, and returns the removed route. The slot index is marked nil
// rather than compacted, so other slot indices remain stable.
func (rs *RouteSet) RemoveSlot(slot int) (*Route, error) {
	r, ok := rs.Get(slot)
	if !ok {
		return nil, ErrUnknownSlot
	}
	for _, c := range r.Seq {
		rs.owner[c] = -1
	}
	rs.slots[slot] = nil
	rs.live--

	return r, nil
}

// FindOwner returns the slot owning customer c and true, or (0, false) if c
// is currently unowned. Callers MUST check the bool, never treat slot 0 as
// "not found".
func (rs *RouteSet) FindOwner(c int) (int, bool) {
	slot := rs.owner[c]
	if slot == -1 {
		return 0, false
	}

	return slot, true
}

// Count returns the number of live (non-removed) routes.
func (rs *RouteSet) Count() int {
	return rs.live
}

// Routes returns the live routes in ascending slot order. The returned slice
// is a fresh copy of pointers; mutating it does not affect the RouteSet.
func (rs *RouteSet) Routes() []*Route {
	out := make([]*Route, 0, rs.live)
	for _, r := range rs.slots {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

// Slots returns the live slot indices in ascending order, paired with
// Routes() by position — Slots()[i] is the slot index of Routes()[i].
func (rs *RouteSet) Slots() []int {
	out := make([]int, 0, rs.live)
	for i, r := range rs.slots {
		if r != nil {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns a deep copy of rs, independent of the original: mutating the
// clone (Add/Replace/RemoveSlot) never affects rs. Used by clarkewright's
// reduction pass to try a tentative elimination and cheaply discard it if
// some customer in the eliminated route cannot be placed under capacity,
// rather than hand-rolling an undo log for each mutation performed.
func (rs *RouteSet) Clone() *RouteSet {
	slots := make([]*Route, len(rs.slots))
	for i, r := range rs.slots {
		if r != nil {
			slots[i] = r.Clone()
		}
	}
	owner := make([]int, len(rs.owner))
	copy(owner, rs.owner)

	return &RouteSet{slots: slots, owner: owner, live: rs.live}
}

// Restore replaces rs's state with snap's (a prior Clone()), discarding
// whatever mutations happened to rs since the snapshot was taken.
func (rs *RouteSet) Restore(snap *RouteSet) {
	rs.slots = snap.slots
	rs.owner = snap.owner
	rs.live = snap.live
}
