package instanceio_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/instanceio"
	"github.com/kvikrouting/cvrp-pbo/route"
	"github.com/kvikrouting/cvrp-pbo/solverdriver"
)

const validDoc = `{
  "n": 3,
  "capacity": 10,
  "demand": [0, 4, 5],
  "dist": [
    [0, 3, 5],
    [3, 0, 4],
    [5, 4, 0]
  ]
}`

func TestLoadInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	inst, err := instanceio.LoadInstance(path)
	require.NoError(t, err)
	assert.Equal(t, 3, inst.N)
	assert.Equal(t, 10, inst.Capacity)
	assert.Equal(t, []int{0, 4, 5}, inst.Demand)
	assert.Equal(t, 4, inst.Distance(1, 2))
}

func TestLoadInstance_RejectsInvalidData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.json")
	// Demand 11 exceeds capacity 10: validation must reject the document.
	doc := `{"n": 2, "capacity": 10, "demand": [0, 11], "dist": [[0, 3], [3, 0]]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := instanceio.LoadInstance(path)
	assert.ErrorIs(t, err, instance.ErrDemandExceedsCapacity)
}

func TestLoadInstance_MissingFile(t *testing.T) {
	_, err := instanceio.LoadInstance(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestWriteResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))
	inst, err := instanceio.LoadInstance(path)
	require.NoError(t, err)

	rs := route.NewRouteSet(inst.N)
	r, err := route.New([]int{1, 2})
	require.NoError(t, err)
	_, err = rs.Add(r)
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "result.json")
	res := &solverdriver.Result{Routes: rs, Optimum: 12}
	require.NoError(t, instanceio.WriteResult(outPath, res, inst))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var got struct {
		Optimum int `json:"optimum"`
		Routes  []struct {
			Sequence []int `json:"sequence"`
			Cost     int   `json:"cost"`
		} `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 12, got.Optimum)
	require.Len(t, got.Routes, 1)
	assert.Equal(t, []int{1, 2}, got.Routes[0].Sequence)
	assert.Equal(t, 12, got.Routes[0].Cost)
}
