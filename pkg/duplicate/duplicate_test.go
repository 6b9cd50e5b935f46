package duplicate

import (
	"testing"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

func TestSplitInputOutput(t *testing.T) {
	e := &model.Entity{
		ID:            "E1",
		CompartmentID: "cyto",
		Roles: []model.Role{
			{Type: model.Input, Stoichiometry: 1},
			{Type: model.Output, Stoichiometry: 1},
		},
	}
	out := Split([]*model.Entity{e})
	if len(out) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(out))
	}
	if !out[0].HasRole(model.Output) {
		t.Errorf("original should keep OUTPUT, got roles %v", out[0].Roles)
	}
	if !out[1].HasRole(model.Input) {
		t.Errorf("copy should carry INPUT, got roles %v", out[1].Roles)
	}
	if out[1].CompartmentID != "cyto" {
		t.Errorf("copy should stay in the same compartment")
	}
	if out[1].SourceID() != "E1" {
		t.Errorf("copy SourceID = %q, want E1", out[1].SourceID())
	}
}

func TestSplitCatalystRegulator(t *testing.T) {
	e := &model.Entity{
		ID: "E2",
		Roles: []model.Role{
			{Type: model.Catalyst, Stoichiometry: 1},
			{Type: model.PositiveRegulator, Stoichiometry: 1},
		},
	}
	out := Split([]*model.Entity{e})
	if len(out) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(out))
	}
	if !out[0].HasRole(model.PositiveRegulator) || out[0].HasRole(model.Catalyst) {
		t.Errorf("original should keep only POSITIVE_REGULATOR, got %v", out[0].Roles)
	}
	if !out[1].HasRole(model.Catalyst) {
		t.Errorf("copy should carry CATALYST, got %v", out[1].Roles)
	}
}

func TestSplitThreeWay(t *testing.T) {
	e := &model.Entity{
		ID: "E3",
		Roles: []model.Role{
			{Type: model.Catalyst, Stoichiometry: 1},
			{Type: model.PositiveRegulator, Stoichiometry: 1},
			{Type: model.NegativeRegulator, Stoichiometry: 1},
		},
	}
	out := Split([]*model.Entity{e})
	if len(out) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(out))
	}
	if out[0].HasRole(model.Catalyst) {
		t.Errorf("original should not keep CATALYST")
	}
	if !out[0].HasRole(model.PositiveRegulator) || !out[0].HasRole(model.NegativeRegulator) {
		t.Errorf("original should keep both regulator roles, got %v", out[0].Roles)
	}
	if !out[1].HasRole(model.Catalyst) || len(out[1].Roles) != 1 {
		t.Errorf("copy should carry only CATALYST, got %v", out[1].Roles)
	}
}

func TestSplitPassesThroughSingleRole(t *testing.T) {
	e := &model.Entity{ID: "E4", Roles: []model.Role{{Type: model.Input, Stoichiometry: 2}}}
	out := Split([]*model.Entity{e})
	if len(out) != 1 || out[0] != e {
		t.Fatalf("single-role entity should pass through unchanged")
	}
}

func TestSplitCopyIDIsDeterministic(t *testing.T) {
	newEntity := func() *model.Entity {
		return &model.Entity{
			ID: "E1",
			Roles: []model.Role{
				{Type: model.Input, Stoichiometry: 1},
				{Type: model.Output, Stoichiometry: 1},
			},
		}
	}
	first := Split([]*model.Entity{newEntity()})
	second := Split([]*model.Entity{newEntity()})
	if first[1].ID != second[1].ID {
		t.Errorf("split-off copy ID should be deterministic from source ID + peeled role, got %q and %q", first[1].ID, second[1].ID)
	}

	other := &model.Entity{
		ID: "E1",
		Roles: []model.Role{
			{Type: model.Catalyst, Stoichiometry: 1},
			{Type: model.PositiveRegulator, Stoichiometry: 1},
		},
	}
	otherOut := Split([]*model.Entity{other})
	if otherOut[1].ID == first[1].ID {
		t.Errorf("peeling a different role from the same source should mint a different ID")
	}
}

func TestSplitIsIdempotent(t *testing.T) {
	e := &model.Entity{
		ID: "E5",
		Roles: []model.Role{
			{Type: model.Input, Stoichiometry: 1},
			{Type: model.Output, Stoichiometry: 1},
		},
	}
	once := Split([]*model.Entity{e})
	twice := Split(once)
	if len(once) != len(twice) {
		t.Fatalf("splitting twice changed entity count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if len(once[i].Roles) != len(twice[i].Roles) {
			t.Errorf("entity %d role count changed on re-split", i)
		}
	}
}
