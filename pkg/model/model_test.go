package model

import (
	"testing"

	"github.com/reactome-tools/reaction-layout/pkg/geom"
)

func TestEntityRoleTypes(t *testing.T) {
	e := &Entity{Roles: []Role{{Type: Input, Stoichiometry: 1}, {Type: Catalyst, Stoichiometry: 1}}}
	set := e.RoleTypes()
	if !set[Input] || !set[Catalyst] {
		t.Fatalf("RoleTypes() = %v, want Input and Catalyst set", set)
	}
	if len(set) != 2 {
		t.Fatalf("RoleTypes() len = %d, want 2", len(set))
	}
}

func TestEntitySourceIDDefaultsToOwnID(t *testing.T) {
	e := &Entity{ID: "e1"}
	if got := e.SourceID(); got != "e1" {
		t.Fatalf("SourceID() = %q, want %q", got, "e1")
	}
	e.SetSourceID("orig")
	if got := e.SourceID(); got != "orig" {
		t.Fatalf("SourceID() after SetSourceID = %q, want %q", got, "orig")
	}
}

func TestRenderableClassSortPreference(t *testing.T) {
	if ClassProcessNode.SortPreference() >= ClassProtein.SortPreference() {
		t.Fatalf("process-node should sort before protein")
	}
	if ClassProtein.SortPreference() >= ClassEntity.SortPreference() {
		t.Fatalf("protein should sort before entity")
	}
}

func TestBackboneHalfLength(t *testing.T) {
	if got := BackboneHalfLength(ShapeTransition); got != 20 {
		t.Fatalf("BackboneHalfLength(transition) = %v, want 20", got)
	}
	if got := BackboneHalfLength(ShapeBinding); got != 20 {
		t.Fatalf("BackboneHalfLength(binding) = %v, want 20", got)
	}
}

func TestEntitySizeFallsBackToClassDefault(t *testing.T) {
	e := &Entity{Class: ClassChemical}
	w, h := e.Size()
	dw, dh := DefaultSize(ClassChemical)
	if w != dw || h != dh {
		t.Fatalf("Size() = (%v, %v), want class default (%v, %v)", w, h, dw, dh)
	}
}

func TestReactionPorts(t *testing.T) {
	r := &Reaction{Position: geom.Position{X: 80, Y: 100, W: 40, H: 20}}
	left := r.LeftPort()
	right := r.RightPort()
	if left.X != 60 || left.Y != 110 {
		t.Fatalf("LeftPort() = %+v, want {60 110}", left)
	}
	if right.X != 140 || right.Y != 110 {
		t.Fatalf("RightPort() = %+v, want {140 110}", right)
	}
}
