package index

import (
	"testing"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

func TestBuildPartitionsByRole(t *testing.T) {
	a := &model.Entity{ID: "A", Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}}}
	b := &model.Entity{ID: "B", Roles: []model.Role{{Type: model.Output, Stoichiometry: 1}}}
	c := &model.Entity{ID: "C", Roles: []model.Role{{Type: model.Catalyst, Stoichiometry: 1}}}
	d := &model.Entity{ID: "D", Roles: []model.Role{{Type: model.PositiveRegulator, Stoichiometry: 1}}}
	e := &model.Entity{ID: "E", Roles: []model.Role{{Type: model.NegativeRegulator, Stoichiometry: 1}}}

	idx := Build([]*model.Entity{a, b, c, d, e})

	if len(idx.Inputs) != 1 || idx.Inputs[0] != a {
		t.Errorf("Inputs = %v, want [A]", idx.Inputs)
	}
	if len(idx.Outputs) != 1 || idx.Outputs[0] != b {
		t.Errorf("Outputs = %v, want [B]", idx.Outputs)
	}
	if len(idx.Catalysts) != 1 || idx.Catalysts[0] != c {
		t.Errorf("Catalysts = %v, want [C]", idx.Catalysts)
	}
	if len(idx.Regulators()) != 2 {
		t.Errorf("Regulators() = %v, want 2 entities", idx.Regulators())
	}
	if got, ok := idx.ByID("C"); !ok || got != c {
		t.Errorf("ByID(C) = (%v, %v), want (C, true)", got, ok)
	}
}

func TestBuildMultiRoleAppearsInBothBuckets(t *testing.T) {
	e := &model.Entity{ID: "M", Roles: []model.Role{
		{Type: model.Input, Stoichiometry: 1},
		{Type: model.Catalyst, Stoichiometry: 1},
	}}
	idx := Build([]*model.Entity{e})
	if len(idx.Inputs) != 1 || len(idx.Catalysts) != 1 {
		t.Fatalf("expected entity in both Inputs and Catalysts, got Inputs=%v Catalysts=%v", idx.Inputs, idx.Catalysts)
	}
	if idx.Inputs[0] != idx.Catalysts[0] {
		t.Errorf("expected same entity pointer in both buckets")
	}
}
