package onto

import (
	"strings"
	"testing"
)

func TestReadDAGLinksSurroundedBy(t *testing.T) {
	src := `{
		"compartments": [
			{"accession": "cell", "name": "cell"},
			{"accession": "cyto", "name": "cytoplasm", "surrounded_by": "cell"}
		]
	}`

	d, err := ReadDAG(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadDAG: %v", err)
	}
	if !d.Has("cell") || !d.Has("cyto") {
		t.Fatal("expected both compartments to be present")
	}

	tree := d.CompartmentTree([]string{"cyto", "cell"})
	if tree.Parent["cyto"] != "cell" {
		t.Errorf("cyto's parent = %q, want cell", tree.Parent["cyto"])
	}
}

func TestReadDAGRejectsMalformedJSON(t *testing.T) {
	if _, err := ReadDAG(strings.NewReader("not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
