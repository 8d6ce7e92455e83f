// Package instanceio reads and writes the JSON documents the cmd/cvrpsolve
// CLI uses at its file boundary: an input Instance description and an
// output solve Result. TSPLIB parsing lives outside this module; this
// package supplies the already-parsed Instance for a CLI that has no TSPLIB
// reader of its own, using plain JSON instead.
package instanceio

import (
	"encoding/json"
	"os"

	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/matrix"
)

// instanceDoc is the on-disk JSON shape: dimension, capacity, per-node
// demand, and the full symmetric distance matrix as nested arrays.
type instanceDoc struct {
	N        int     `json:"n"`
	Capacity int     `json:"capacity"`
	Demand   []int   `json:"demand"`
	Dist     [][]int `json:"dist"`
}

// LoadInstance reads and validates an Instance from a JSON file at path.
func LoadInstance(path string) (*instance.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc instanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	dist, err := matrix.NewDenseFromRows(doc.Dist)
	if err != nil {
		return nil, err
	}

	return instance.NewInstance(doc.N, doc.Capacity, doc.Demand, dist)
}
