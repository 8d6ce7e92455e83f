package twoopt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/matrix"
	"github.com/kvikrouting/cvrp-pbo/route"
	"github.com/kvikrouting/cvrp-pbo/twoopt"
)

func mustDense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// Route [1,3,2,4] over a convex quadrilateral crosses itself; 2-opt must
// strictly decrease cost and settle on the uncrossed tour.
func TestImprove_UncrossesTour(t *testing.T) {
	// Coordinates chosen so 1,2,3,4 sit on a convex quadrilateral around the
	// depot: visiting them out of order (1,3,2,4) crosses itself.
	coords := [][2]float64{
		{0, 0},  // depot
		{1, 1},  // 1
		{-1, 1}, // 2
		{1, -1}, // 3
		{-1, -1}, // 4
	}
	n := len(coords)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := coords[i][0] - coords[j][0]
			dy := coords[i][1] - coords[j][1]
			rows[i][j] = instance.RoundDistance(instance.EUC2D, dx, dy)
		}
	}
	dist := mustDense(t, rows)
	inst, err := instance.NewInstance(n, 100, []int{0, 0, 0, 0, 0}, dist)
	require.NoError(t, err)

	crossed, err := route.New([]int{1, 3, 2, 4})
	require.NoError(t, err)
	crossedCost := crossed.Cost(inst)

	improved := twoopt.Improve(inst, crossed)
	improvedCost := improved.Cost(inst)

	assert.Less(t, improvedCost, crossedCost)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, improved.Seq)
}

// TestImprove_PreservesCustomerSet: the customer set of a route is
// unchanged by 2-opt, regardless of outcome.
func TestImprove_PreservesCustomerSet(t *testing.T) {
	dist := mustDense(t, [][]int{
		{0, 2, 2, 2, 2},
		{2, 0, 3, 4, 3},
		{2, 3, 0, 3, 4},
		{2, 4, 3, 0, 3},
		{2, 3, 4, 3, 0},
	})
	inst, err := instance.NewInstance(5, 100, []int{0, 1, 1, 1, 1}, dist)
	require.NoError(t, err)

	r, err := route.New([]int{1, 2, 3, 4})
	require.NoError(t, err)

	improved := twoopt.Improve(inst, r)
	assert.ElementsMatch(t, r.Seq, improved.Seq)
	assert.LessOrEqual(t, improved.Cost(inst), r.Cost(inst))
}

// TestImprove_LocalOptimum verifies that at termination no single reversal
// of the returned route improves its cost.
func TestImprove_LocalOptimum(t *testing.T) {
	dist := mustDense(t, [][]int{
		{0, 2, 2, 2, 2},
		{2, 0, 3, 4, 3},
		{2, 3, 0, 3, 4},
		{2, 4, 3, 0, 3},
		{2, 3, 4, 3, 0},
	})
	inst, err := instance.NewInstance(5, 100, []int{0, 1, 1, 1, 1}, dist)
	require.NoError(t, err)

	r, err := route.New([]int{4, 1, 3, 2})
	require.NoError(t, err)

	improved := twoopt.Improve(inst, r)
	base := improved.Cost(inst)

	for i := 0; i < improved.Len(); i++ {
		for j := i + 1; j < improved.Len(); j++ {
			reversed, err := improved.Reverse(i, j+1)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, reversed.Cost(inst), base)
		}
	}
}

func TestImproveAll_ReplacesEachRouteInRouteSet(t *testing.T) {
	dist := mustDense(t, [][]int{
		{0, 2, 2, 2, 2},
		{2, 0, 3, 4, 3},
		{2, 3, 0, 3, 4},
		{2, 4, 3, 0, 3},
		{2, 3, 4, 3, 0},
	})
	inst, err := instance.NewInstance(5, 100, []int{0, 1, 1, 1, 1}, dist)
	require.NoError(t, err)

	rs := route.NewRouteSet(5)
	r, err := route.New([]int{1, 3, 2, 4})
	require.NoError(t, err)
	slot, err := rs.Add(r)
	require.NoError(t, err)

	before := r.Cost(inst)
	twoopt.ImproveAll(inst, rs)

	after, ok := rs.Get(slot)
	require.True(t, ok)
	assert.LessOrEqual(t, after.Cost(inst), before)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, after.Seq)
}
