package pbo

import (
	"strconv"
	"strings"

	"github.com/kvikrouting/cvrp-pbo/route"
)

// Solution is the parsed result of a solver run: the reported optimum (the
// last `o` line seen) and the positive literal set accumulated from every
// `v` line.
type Solution struct {
	Optimum       int
	PositiveLits  map[int]bool
	HasAssignment bool
}

// ParseOutput scans solver stdout for `s`, `o`, and `v` lines.
// `s UNSATISFIABLE` fails with ErrUnsatisfiable.
// `v` lines may be split across multiple lines; all are accumulated into one
// positive-literal set. Unknown line prefixes (including `c` comments) are
// ignored.
func ParseOutput(output string) (*Solution, error) {
	sol := &Solution{PositiveLits: make(map[int]bool)}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "s "):
			if strings.Contains(line, "UNSATISFIABLE") {
				return nil, ErrUnsatisfiable
			}
		case strings.HasPrefix(line, "o "):
			v, err := parseObjective(strings.TrimSpace(line[2:]))
			if err != nil {
				return nil, ErrMalformedOutput
			}
			sol.Optimum = v
		case strings.HasPrefix(line, "v "):
			if err := parseAssignmentLine(line[2:], sol); err != nil {
				return nil, err
			}
			sol.HasAssignment = true
		}
	}

	if !sol.HasAssignment {
		return nil, ErrMalformedOutput
	}

	return sol, nil
}

// parseObjective parses an `o` line's value, which solvers report either as
// an integer or as a float; float values are truncated toward zero.
func parseObjective(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return int(f), nil
}

// parseAssignmentLine parses one `v` line's tokens, each of the form
// "x<literal>" or "-x<literal>", recording positive literals into sol.
func parseAssignmentLine(body string, sol *Solution) error {
	for _, tok := range strings.Fields(body) {
		neg := false
		if strings.HasPrefix(tok, "-") {
			neg = true
			tok = tok[1:]
		}
		tok = strings.TrimPrefix(tok, "x")
		tok = strings.TrimPrefix(tok, "X")
		lit, err := strconv.Atoi(tok)
		if err != nil {
			return ErrMalformedOutput
		}
		if !neg {
			sol.PositiveLits[lit] = true
		}
	}

	return nil
}

// DecodeRoutes reconstructs one Route per vehicle from sol's positive
// literal set by chaining selected arcs from the depot. len(slots) is the
// vehicle count V; the slot values themselves are not used: decoded routes
// are added to a fresh RouteSet in ascending vehicle order (vehicles with no
// outgoing depot arc are skipped), so their slot indices need not match
// slots. n is the instance's total node count.
func DecodeRoutes(m *Model, sol *Solution, slots []int, n int) (*route.RouteSet, error) {
	vehicles := len(slots)
	arcsByVehicle := make([]map[int]int, vehicles) // successor map per vehicle
	for v := range arcsByVehicle {
		arcsByVehicle[v] = make(map[int]int)
	}

	for lit := range sol.PositiveLits {
		name, ok := m.NameOf(lit)
		if !ok {
			continue
		}
		i, j, v, ok := parseWName(name)
		if !ok {
			continue
		}
		if v < 0 || v >= vehicles {
			continue
		}
		arcsByVehicle[v][i] = j
	}

	rs := route.NewRouteSet(n)
	totalCustomers := 0

	for v := 0; v < vehicles; v++ {
		seq, err := walkChain(arcsByVehicle[v], n)
		if err != nil {
			return nil, err
		}
		if len(seq) == 0 {
			continue
		}
		r, err := route.New(seq)
		if err != nil {
			return nil, ErrInconsistentSolution
		}
		if _, err := rs.Add(r); err != nil {
			return nil, ErrInconsistentSolution
		}
		totalCustomers += len(seq)
	}

	if totalCustomers != n-1 {
		return nil, ErrInconsistentSolution
	}

	return rs, nil
}

// walkChain follows succ from the depot (node 0) until it returns to the
// depot, returning the visited customer sequence (excluding both depot
// endpoints). Fails with ErrInconsistentSolution on a broken chain or a
// walk that exceeds n steps without closing (a residual subtour).
func walkChain(succ map[int]int, n int) ([]int, error) {
	cur, ok := succ[0]
	if !ok {
		return nil, nil // vehicle has no outgoing arc: unused vehicle
	}

	seq := make([]int, 0, n-1)
	visited := make(map[int]bool, n-1)
	for steps := 0; steps < n; steps++ {
		if cur == 0 {
			return seq, nil
		}
		if visited[cur] {
			return nil, ErrInconsistentSolution
		}
		visited[cur] = true
		seq = append(seq, cur)

		next, ok := succ[cur]
		if !ok {
			return nil, ErrInconsistentSolution
		}
		cur = next
	}

	return nil, ErrInconsistentSolution
}

// parseWName parses "w_<i>_<j>_<v>" back into its three integer components.
func parseWName(name string) (i, j, v int, ok bool) {
	if !strings.HasPrefix(name, "w_") {
		return 0, 0, 0, false
	}
	parts := strings.Split(name[2:], "_")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if i, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if j, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if v, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}

	return i, j, v, true
}
