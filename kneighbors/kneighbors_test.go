package kneighbors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/kneighbors"
	"github.com/kvikrouting/cvrp-pbo/matrix"
	"github.com/kvikrouting/cvrp-pbo/route"
)

func mustDense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// The distance matrix is built so the global MST gives some customer only
// 2 tree-neighbors, forcing the distance-row fallback to complete the list
// to k=3.
func TestNeighborLists_FallsBackToDistanceRow(t *testing.T) {
	// Depot 0; the MST is a star around customer 1 (tree edges to the depot,
	// 2 and 3) plus the edge 4-5, joined to the depot by the edge 0-4.
	// Customers 2, 3 and 5 get one tree neighbor and customer 4 gets two, so
	// their lists are completed from the distance row.
	rows := [][]int{
		{0, 1, 9, 9, 9, 9},
		{1, 0, 2, 2, 9, 9},
		{9, 2, 0, 9, 9, 9},
		{9, 2, 9, 0, 9, 9},
		{9, 9, 9, 9, 0, 3},
		{9, 9, 9, 9, 3, 0},
	}
	dist := mustDense(t, rows)
	inst, err := instance.NewInstance(6, 100, []int{0, 0, 0, 0, 0, 0}, dist)
	require.NoError(t, err)

	lists, err := kneighbors.NeighborLists(inst, 3)
	require.NoError(t, err)

	for c := 1; c < inst.N; c++ {
		assert.Len(t, lists[c], 3, "customer %d", c)
	}
}

// TestCandidateMatrix_Invariants: diagonal zero, symmetry, consecutive-edge
// and depot-boundary distances recorded exactly.
func TestCandidateMatrix_Invariants(t *testing.T) {
	dist := mustDense(t, [][]int{
		{0, 2, 3, 4, 5},
		{2, 0, 6, 7, 8},
		{3, 6, 0, 9, 10},
		{4, 7, 9, 0, 11},
		{5, 8, 10, 11, 0},
	})
	inst, err := instance.NewInstance(5, 100, []int{0, 0, 0, 0, 0}, dist)
	require.NoError(t, err)

	r, err := route.New([]int{1, 2, 3})
	require.NoError(t, err)

	neighbors, err := kneighbors.NeighborLists(inst, 2)
	require.NoError(t, err)

	m, err := kneighbors.CandidateMatrix(inst, r, neighbors)
	require.NoError(t, err)

	for i := 0; i < inst.N; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, 0, v)
	}
	for i := 0; i < inst.N; i++ {
		for j := 0; j < inst.N; j++ {
			vij, _ := m.At(i, j)
			vji, _ := m.At(j, i)
			assert.Equal(t, vij, vji, "M[%d,%d] != M[%d,%d]", i, j, j, i)
		}
	}

	v, _ := m.At(0, 1)
	assert.Equal(t, inst.Distance(0, 1), v)
	v, _ = m.At(3, 0)
	assert.Equal(t, inst.Distance(3, 0), v)
	v, _ = m.At(1, 2)
	assert.Equal(t, inst.Distance(1, 2), v)
	v, _ = m.At(2, 3)
	assert.Equal(t, inst.Distance(2, 3), v)
}

func TestNeighborLists_RejectsNonPositiveK(t *testing.T) {
	dist := mustDense(t, [][]int{
		{0, 1},
		{1, 0},
	})
	inst, err := instance.NewInstance(2, 10, []int{0, 0}, dist)
	require.NoError(t, err)

	_, err = kneighbors.NeighborLists(inst, 0)
	assert.ErrorIs(t, err, kneighbors.ErrInvalidK)
}

func TestBuildAll_OneMatrixPerLiveSlot(t *testing.T) {
	dist := mustDense(t, [][]int{
		{0, 2, 3, 4},
		{2, 0, 5, 6},
		{3, 5, 0, 7},
		{4, 6, 7, 0},
	})
	inst, err := instance.NewInstance(4, 100, []int{0, 0, 0, 0}, dist)
	require.NoError(t, err)

	rs := route.NewRouteSet(4)
	r1, _ := route.New([]int{1})
	r2, _ := route.New([]int{2, 3})
	slot1, err := rs.Add(r1)
	require.NoError(t, err)
	slot2, err := rs.Add(r2)
	require.NoError(t, err)

	matrices, err := kneighbors.BuildAll(inst, rs, 2)
	require.NoError(t, err)
	assert.Len(t, matrices, 2)
	assert.Contains(t, matrices, slot1)
	assert.Contains(t, matrices, slot2)
}
