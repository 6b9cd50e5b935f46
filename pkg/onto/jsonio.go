package onto

import (
	"encoding/json"
	"io"
)

type jsonNode struct {
	Accession    string `json:"accession"`
	Name         string `json:"name"`
	SurroundedBy string `json:"surrounded_by,omitempty"`
}

type jsonDAG struct {
	Compartments []jsonNode `json:"compartments"`
}

// ReadDAG decodes a JSON-encoded master ontology DAG from r: a flat list
// of compartments, each optionally naming the accession it is
// surrounded by.
func ReadDAG(r io.Reader) (*DAG, error) {
	var raw jsonDAG
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	d := NewDAG()
	for _, n := range raw.Compartments {
		d.AddNode(Node{Accession: n.Accession, Name: n.Name})
	}
	for _, n := range raw.Compartments {
		if n.SurroundedBy != "" {
			d.AddSurroundedBy(n.Accession, n.SurroundedBy)
		}
	}
	return d, nil
}
