package pbo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/matrix"
	"github.com/kvikrouting/cvrp-pbo/pbo"
)

func mustDense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

func unrestrictedCandidates(t *testing.T, n int, slots []int) map[int]*matrix.Dense {
	t.Helper()
	out := make(map[int]*matrix.Dense, len(slots))
	for _, slot := range slots {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				require.NoError(t, m.Set(i, j, 1))
			}
		}
		out[slot] = m
	}

	return out
}

func smallInstance(t *testing.T) *instance.Instance {
	t.Helper()
	dist := mustDense(t, [][]int{
		{0, 3, 5},
		{3, 0, 4},
		{5, 4, 0},
	})
	inst, err := instance.NewInstance(3, 10, []int{0, 4, 5}, dist)
	require.NoError(t, err)

	return inst
}

func TestEncode_RejectsZeroVehicles(t *testing.T) {
	inst := smallInstance(t)
	_, err := pbo.Encode(inst, nil, nil)
	assert.ErrorIs(t, err, pbo.ErrNoVehicles)
}

func TestEncode_AllocatesExpectedVariableFamilies(t *testing.T) {
	inst := smallInstance(t)
	slots := []int{0}
	candidates := unrestrictedCandidates(t, inst.N, slots)

	m, err := pbo.Encode(inst, candidates, slots)
	require.NoError(t, err)

	assert.Greater(t, m.NumVariables(), 0)
	assert.Greater(t, len(m.Constraints), 0)
	assert.Greater(t, len(m.Objective), 0)

	families := map[string]bool{}
	for lit := 1; lit <= m.NumVariables(); lit++ {
		name, ok := m.NameOf(lit)
		require.True(t, ok)
		families[name[:2]] = true
	}
	assert.True(t, families["w_"], "arc variables")
	assert.True(t, families["t_"], "visit variables")
	assert.True(t, families["u_"], "MTZ order-bit variables")
}

func TestSerialize_ProducesHeaderObjectiveAndConstraintLines(t *testing.T) {
	inst := smallInstance(t)
	slots := []int{0}
	candidates := unrestrictedCandidates(t, inst.N, slots)

	m, err := pbo.Encode(inst, candidates, slots)
	require.NoError(t, err)

	text := pbo.Serialize(m)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "* #variable="))
	assert.True(t, strings.HasPrefix(lines[1], "min: "))
	assert.True(t, strings.HasSuffix(lines[1], " ;"))
	for _, l := range lines[2:] {
		assert.True(t, strings.HasSuffix(l, " ;"))
	}
}

func TestParseOutput_Unsatisfiable(t *testing.T) {
	_, err := pbo.ParseOutput("s UNSATISFIABLE\n")
	assert.ErrorIs(t, err, pbo.ErrUnsatisfiable)
}

func TestParseOutput_MultiLineAssignment(t *testing.T) {
	sol, err := pbo.ParseOutput("s OPTIMUM FOUND\no 12\nv x1 -x2 x3\nv -x4 x5\n")
	require.NoError(t, err)
	assert.Equal(t, 12, sol.Optimum)
	assert.True(t, sol.PositiveLits[1])
	assert.False(t, sol.PositiveLits[2])
	assert.True(t, sol.PositiveLits[3])
	assert.False(t, sol.PositiveLits[4])
	assert.True(t, sol.PositiveLits[5])
}

func TestParseOutput_FloatObjective(t *testing.T) {
	sol, err := pbo.ParseOutput("o 12.0\nv x1\n")
	require.NoError(t, err)
	assert.Equal(t, 12, sol.Optimum)
}

func TestParseOutput_RejectsMissingAssignment(t *testing.T) {
	_, err := pbo.ParseOutput("s OPTIMUM FOUND\no 12\n")
	assert.ErrorIs(t, err, pbo.ErrMalformedOutput)
}

// A synthetic feasible assignment for the trivial instance (one vehicle
// taking depot->1->2->depot) must decode to route [1,2].
func TestDecodeRoutes_FeasibleAssignment(t *testing.T) {
	inst := smallInstance(t)
	slots := []int{0}
	candidates := unrestrictedCandidates(t, inst.N, slots)

	m, err := pbo.Encode(inst, candidates, slots)
	require.NoError(t, err)

	sol := &pbo.Solution{PositiveLits: map[int]bool{}}
	for _, name := range []string{"w_0_1_0", "w_1_2_0", "w_2_0_0"} {
		sol.PositiveLits[m.Literal(name)] = true
	}

	rs, err := pbo.DecodeRoutes(m, sol, slots, inst.N)
	require.NoError(t, err)
	require.Equal(t, 1, rs.Count())
	assert.Equal(t, []int{1, 2}, rs.Routes()[0].Seq)
}

// TestDecodeRoutes_MissingArc_InconsistentSolution drops the closing arc
// back to the depot, leaving a broken chain.
func TestDecodeRoutes_MissingArc_InconsistentSolution(t *testing.T) {
	inst := smallInstance(t)
	slots := []int{0}
	candidates := unrestrictedCandidates(t, inst.N, slots)

	m, err := pbo.Encode(inst, candidates, slots)
	require.NoError(t, err)

	sol := &pbo.Solution{PositiveLits: map[int]bool{}}
	for _, name := range []string{"w_0_1_0", "w_1_2_0"} {
		sol.PositiveLits[m.Literal(name)] = true
	}

	_, err = pbo.DecodeRoutes(m, sol, slots, inst.N)
	assert.ErrorIs(t, err, pbo.ErrInconsistentSolution)
}
