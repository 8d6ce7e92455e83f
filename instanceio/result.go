package instanceio

import (
	"encoding/json"
	"os"

	"github.com/kvikrouting/cvrp-pbo/instance"
	"github.com/kvikrouting/cvrp-pbo/solverdriver"
)

// routeDoc is one route's JSON representation: its customer sequence and
// its cost against the solved Instance.
type routeDoc struct {
	Sequence []int `json:"sequence"`
	Cost     int   `json:"cost"`
}

// resultDoc is the full solve Result's JSON representation.
type resultDoc struct {
	Optimum int        `json:"optimum"`
	Routes  []routeDoc `json:"routes"`
}

// WriteResult serializes res as indented JSON to path (the CLI's --out
// flag), recomputing each route's cost against inst for cross-checking.
func WriteResult(path string, res *solverdriver.Result, inst *instance.Instance) error {
	doc := resultDoc{Optimum: res.Optimum}
	for _, r := range res.Routes.Routes() {
		doc.Routes = append(doc.Routes, routeDoc{
			Sequence: r.Seq,
			Cost:     r.Cost(inst),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
