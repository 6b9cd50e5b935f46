package layout

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestReadInputRoundTripsThroughCompute(t *testing.T) {
	src := `{
		"reaction": {"id": "R1", "name": "reaction", "compartment_id": "cyto", "shape": "transition"},
		"entities": [
			{"id": "A", "name": "A", "class": "protein", "compartment_id": "cyto", "roles": [{"type": "INPUT", "stoichiometry": 1}]},
			{"id": "B", "name": "B", "class": "protein", "compartment_id": "cyto", "roles": [{"type": "OUTPUT", "stoichiometry": 1}]}
		],
		"compartments": [{"accession": "cyto", "name": "cytoplasm"}]
	}`

	in, err := ReadInput(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if in.Reaction.Name != "reaction" || len(in.Entities) != 2 {
		t.Fatalf("unexpected decode: %+v", in)
	}

	out, err := Compute(context.Background(), in, singleCompartmentDAG("cyto", "cytoplasm"))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteLayout(out, &buf); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}
	if !strings.Contains(buf.String(), `"reaction_id": "R1"`) {
		t.Errorf("expected the reaction id in the encoded output, got:\n%s", buf.String())
	}
}

func TestReadInputRejectsMalformedJSON(t *testing.T) {
	if _, err := ReadInput(strings.NewReader("not json")); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
