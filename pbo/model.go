// Package pbo implements the pseudo-Boolean optimization (PBO) encoding of a
// restricted CVRP: a literal/variable symbol table, the constraint families
// (vehicle degree, customer degree, anti-parallel arcs, arc-implies-visit,
// vehicle exclusivity, capacity, MTZ subtour elimination, candidate-mask
// pruning) plus the minimization objective, OPB-like text serialization, and
// a decoder that parses solver output back into routes.
//
// The Model is transient: it is built by Encode, serialized, handed to the
// external solver process, consulted once more by DecodeRoutes to map the
// returned literals back to arc variables, then discarded.
package pbo

import "fmt"

// Comparator is a linear constraint's relational operator.
type Comparator int

const (
	LE Comparator = iota // <=
	GE                   // >=
	EQ                   // =
)

func (c Comparator) String() string {
	switch c {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// Term is one factor·literal addend in a constraint or the objective;
// Negated marks the literal as its pseudo-Boolean complement (1-x).
type Term struct {
	Factor  int
	Literal int
	Negated bool
}

// Constraint is one linear pseudo-Boolean constraint: Σ Terms Op RHS.
type Constraint struct {
	Terms []Term
	Op    Comparator
	RHS   int
}

// Model holds the full PBO problem under construction: a monotonically
// increasing literal counter, a bidirectional name<->literal mapping, the
// ordered constraint list, and the minimization objective.
type Model struct {
	nextLiteral int
	nameToLit   map[string]int
	litToName   []string // litToName[lit-1] == name, since literals start at 1
	Constraints []Constraint
	Objective   []Term
}

// NewModel returns an empty Model with its literal counter starting at 1.
func NewModel() *Model {
	return &Model{
		nextLiteral: 1,
		nameToLit:   make(map[string]int),
	}
}

// Literal returns the literal for name, allocating a fresh one on first
// mention. The mapping is stable for the lifetime of the Model.
func (m *Model) Literal(name string) int {
	if lit, ok := m.nameToLit[name]; ok {
		return lit
	}
	lit := m.nextLiteral
	m.nextLiteral++
	m.nameToLit[name] = lit
	m.litToName = append(m.litToName, name)

	return lit
}

// NameOf returns the variable name for a previously allocated literal, or
// ("", false) if lit was never allocated by this Model.
func (m *Model) NameOf(lit int) (string, bool) {
	if lit < 1 || lit > len(m.litToName) {
		return "", false
	}

	return m.litToName[lit-1], true
}

// NumVariables returns the number of distinct literals allocated so far.
func (m *Model) NumVariables() int {
	return len(m.litToName)
}

// AddConstraint appends c to the model.
func (m *Model) AddConstraint(c Constraint) {
	m.Constraints = append(m.Constraints, c)
}

// wName, tName, and uName build the canonical variable names for the three
// families: w_{i,j,v} (arc), t_{i,v} (visit), and u_{i,b,v} (MTZ
// binary-coded order bit).
func wName(i, j, v int) string { return fmt.Sprintf("w_%d_%d_%d", i, j, v) }
func tName(i, v int) string    { return fmt.Sprintf("t_%d_%d", i, v) }
func uName(i, b, v int) string { return fmt.Sprintf("u_%d_%d_%d", i, b, v) }
