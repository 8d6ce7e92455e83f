package pbo

import (
	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/matrix"
)

// Encode builds the full PBO model for a restricted CVRP over V = len(slots)
// vehicles. candidates maps each slot to its
// per-route candidate matrix M_r (see package kneighbors); slots fixes the
// vehicle index v assigned to each route for the lifetime of this model.
//
// Complexity: O(V·n²) to allocate the arc/visit/order literals and emit the
// degree/visit/mask constraints; O(V·n²·B) additional for the MTZ family,
// B=ceil(log2(n-1)).
func Encode(inst *instance.Instance, candidates map[int]*matrix.Dense, slots []int) (*Model, error) {
	n := inst.N
	vehicles := len(slots)
	if vehicles <= 0 {
		return nil, ErrNoVehicles
	}

	m := NewModel()
	b := bitsNeeded(n - 1)

	for v := 0; v < vehicles; v++ {
		mr := candidates[slots[v]]

		encodeDepotDegree(m, n, v)
		encodeCustomerDegree(m, n, vehicles, v)
		encodeAntiParallel(m, n, v)
		encodeArcImpliesVisit(m, n, v)
		encodeCapacity(m, inst, n, v)
		encodeMTZ(m, n, v, b)
		encodeCandidateMask(m, mr, n, v)
	}
	encodeAtMostOneVehicle(m, n, vehicles)
	encodeObjective(m, inst, n, vehicles)

	return m, nil
}

// encodeDepotDegree constrains vehicle v to leave and
// return to the depot exactly once.
func encodeDepotDegree(m *Model, n, v int) {
	leave := make([]Term, 0, n-1)
	ret := make([]Term, 0, n-1)
	for j := 1; j < n; j++ {
		leave = append(leave, Term{Factor: 1, Literal: m.Literal(wName(0, j, v))})
		ret = append(ret, Term{Factor: 1, Literal: m.Literal(wName(j, 0, v))})
	}
	m.AddConstraint(Constraint{Terms: leave, Op: EQ, RHS: 1})
	m.AddConstraint(Constraint{Terms: ret, Op: EQ, RHS: 1})
}

// encodeCustomerDegree gives each customer exactly one outgoing and one
// incoming arc across all vehicles. Invoked for every v but only emits on
// v==0, since each sum ranges over all vehicles at once.
func encodeCustomerDegree(m *Model, n, vehicles, v int) {
	if v != 0 {
		return
	}
	for i := 1; i < n; i++ {
		out := make([]Term, 0, vehicles*(n-1))
		in := make([]Term, 0, vehicles*(n-1))
		for vv := 0; vv < vehicles; vv++ {
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				out = append(out, Term{Factor: 1, Literal: m.Literal(wName(i, j, vv))})
				in = append(in, Term{Factor: 1, Literal: m.Literal(wName(j, i, vv))})
			}
		}
		m.AddConstraint(Constraint{Terms: out, Op: EQ, RHS: 1})
		m.AddConstraint(Constraint{Terms: in, Op: EQ, RHS: 1})
	}
}

// encodeAntiParallel ensures that for every unordered pair i<j, vehicle
// v never uses both arcs i->j and j->i.
func encodeAntiParallel(m *Model, n, v int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wij := m.Literal(wName(i, j, v))
			wji := m.Literal(wName(j, i, v))
			m.AddConstraint(Constraint{
				Terms: []Term{
					{Factor: 1, Literal: wij, Negated: true},
					{Factor: 1, Literal: wji, Negated: true},
				},
				Op:  GE,
				RHS: 1,
			})
		}
	}
}

// encodeArcImpliesVisit ensures any arc incident to node x
// under vehicle v implies t_{x,v}.
func encodeArcImpliesVisit(m *Model, n, v int) {
	implies := func(arcLit, visitLit int) {
		m.AddConstraint(Constraint{
			Terms: []Term{
				{Factor: 1, Literal: arcLit, Negated: true},
				{Factor: 1, Literal: visitLit},
			},
			Op:  GE,
			RHS: 1,
		})
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			wij := m.Literal(wName(i, j, v))
			if i != 0 {
				implies(wij, m.Literal(tName(i, v)))
			}
			if j != 0 {
				implies(wij, m.Literal(tName(j, v)))
			}
		}
	}
}

// encodeAtMostOneVehicle ensures every customer is visited by at
// most one vehicle.
func encodeAtMostOneVehicle(m *Model, n, vehicles int) {
	for i := 1; i < n; i++ {
		for v := 0; v < vehicles; v++ {
			for vp := v + 1; vp < vehicles; vp++ {
				m.AddConstraint(Constraint{
					Terms: []Term{
						{Factor: 1, Literal: m.Literal(tName(i, v)), Negated: true},
						{Factor: 1, Literal: m.Literal(tName(i, vp)), Negated: true},
					},
					Op:  GE,
					RHS: 1,
				})
			}
		}
	}
}

// encodeCapacity bounds vehicle v's total visited demand by Q.
func encodeCapacity(m *Model, inst *instance.Instance, n, v int) {
	terms := make([]Term, 0, n)
	for i := 0; i < n; i++ {
		terms = append(terms, Term{Factor: -inst.Demand[i], Literal: m.Literal(tName(i, v))})
	}
	m.AddConstraint(Constraint{Terms: terms, Op: GE, RHS: -inst.Capacity})
}

// encodeMTZ emits binary-coded Miller-Tucker-Zemlin subtour elimination
// over customers [1,n) for vehicle v, using b order-bits: taking arc i->j
// forces j's order value above i's, so no cycle can avoid the depot.
func encodeMTZ(m *Model, n, v, b int) {
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			terms := make([]Term, 0, 2*b+1)
			for bit := 0; bit < b; bit++ {
				weight := 1 << bit
				terms = append(terms, Term{Factor: -weight, Literal: m.Literal(uName(i, bit, v))})
				terms = append(terms, Term{Factor: weight, Literal: m.Literal(uName(j, bit, v))})
			}
			terms = append(terms, Term{Factor: -(n - 1), Literal: m.Literal(wName(i, j, v))})
			m.AddConstraint(Constraint{Terms: terms, Op: GE, RHS: -(n - 2)})
		}
	}
}

// encodeCandidateMask pins to 0 any arc forbidden by mr for this
// route's vehicle.
func encodeCandidateMask(m *Model, mr *matrix.Dense, n, v int) {
	if mr == nil {
		return
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			val, err := mr.At(i, j)
			if err != nil || val != -1 {
				continue
			}
			m.AddConstraint(Constraint{
				Terms: []Term{{Factor: 1, Literal: m.Literal(wName(i, j, v))}},
				Op:    EQ,
				RHS:   0,
			})
		}
	}
}

// encodeObjective sets the minimization objective: total distance travelled
// across every vehicle's arcs.
func encodeObjective(m *Model, inst *instance.Instance, n, vehicles int) {
	terms := make([]Term, 0, vehicles*n*(n-1))
	for v := 0; v < vehicles; v++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				terms = append(terms, Term{Factor: inst.Distance(i, j), Literal: m.Literal(wName(i, j, v))})
			}
		}
	}
	m.Objective = terms
}

// bitsNeeded returns ceil(log2(x)) for x>=1; returns 0 for x<=1.
func bitsNeeded(x int) int {
	b := 0
	for (1 << b) < x {
		b++
	}

	return b
}
