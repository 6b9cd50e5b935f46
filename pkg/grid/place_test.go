package grid

import (
	"testing"

	"github.com/reactome-tools/reaction-layout/pkg/geom"
	"github.com/reactome-tools/reaction-layout/pkg/index"
	"github.com/reactome-tools/reaction-layout/pkg/model"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
	"github.com/reactome-tools/reaction-layout/pkg/textmetrics"
)

func singleCompartmentTree(accession string) *onto.Tree {
	d := onto.NewDAG()
	d.AddNode(onto.Node{Accession: accession, Name: accession})
	return onto.Build(d, []string{accession})
}

// chainTree builds a linear surrounded_by chain outer, inner, innermost,
// ... and marks every accession in the chain present.
func chainTree(chain ...string) *onto.Tree {
	d := onto.NewDAG()
	for _, acc := range chain {
		d.AddNode(onto.Node{Accession: acc, Name: acc})
	}
	for i := 1; i < len(chain); i++ {
		d.AddSurroundedBy(chain[i], chain[i-1])
	}
	return onto.Build(d, chain)
}

func entityTile(compartment string, roles ...model.RoleType) *Tile {
	rs := make([]model.Role, len(roles))
	for i, r := range roles {
		rs[i] = model.Role{Type: r, Stoichiometry: 1}
	}
	return &Tile{Kind: Vertical, CompartmentID: compartment, Entities: []*model.Entity{
		{ID: compartment, Class: model.ClassProtein, CompartmentID: compartment, Roles: rs},
	}}
}

func TestAxisLanesAddsStructuralAncestors(t *testing.T) {
	tree := chainTree("cyto", "mito", "mitoMatrix")
	lanes := axisLanes(tree, []string{"cyto", "mitoMatrix"})
	if len(lanes) != 3 {
		t.Fatalf("expected the intermediate mito compartment to be pulled in as a structural lane, got %v", lanes)
	}
}

func TestSlideRowMovesTileAcrossEmptyDescendantLane(t *testing.T) {
	tree := chainTree("cyto", "mito", "mitoMatrix")
	g := NewGrid(1, 4)
	x := entityTile("cyto", model.Input)
	y := entityTile("mitoMatrix", model.Input)
	g.Set(0, 0, x)
	// column 1 (mito) is a structural lane with no entity of its own.
	g.Set(0, 2, y)
	// column 3 is the reaction's own column.

	lanes := []string{"cyto", "mito", "mitoMatrix", ""}
	slideRow(g, 0, 0, 2, +1, lanes, tree)

	if !g.Get(0, 0).Empty() {
		t.Errorf("expected cyto's original lane to be vacated after the move")
	}
	if g.Get(0, 1) != x {
		t.Errorf("expected the cyto tile to slide into mito's empty descendant lane")
	}
	if g.Get(0, 2) != y {
		t.Errorf("mitoMatrix's own tile should not move, nothing sits closer to the reaction")
	}
}

func TestSlideRowStopsAtBusyLane(t *testing.T) {
	d := onto.NewDAG()
	for _, acc := range []string{"cell", "cyto", "golgi", "mito"} {
		d.AddNode(onto.Node{Accession: acc, Name: acc})
	}
	d.AddSurroundedBy("cyto", "cell")
	d.AddSurroundedBy("golgi", "cell")
	d.AddSurroundedBy("mito", "cyto")
	tree := onto.Build(d, []string{"cyto", "golgi", "mito"})

	g := NewGrid(1, 4)
	cyto := entityTile("cyto", model.Input)
	golgi := entityTile("golgi", model.Input)
	g.Set(0, 0, cyto)
	g.Set(0, 1, golgi)
	// column 2 (mito, a descendant of cyto but not of golgi) stays empty.

	lanes := []string{"cyto", "golgi", "mito", ""}
	slideRow(g, 0, 0, 2, +1, lanes, tree)

	if g.Get(0, 0) != cyto {
		t.Errorf("cyto's tile should not cross golgi's occupied lane even though mito beyond it is empty")
	}
	if g.Get(0, 1) != golgi {
		t.Errorf("golgi should not move into mito's lane, mito is not one of golgi's descendants")
	}
}

// TestBuildNestedCompartmentPullsDeeperInputCloser exercises the full
// Build pipeline with a three-level surrounded_by chain where the
// middle compartment contributes no participant of its own: the outer
// compartment's input should end up compacted next to the inner one's,
// with no dead gap between them, matching a plain deletion pass.
func TestBuildNestedCompartmentPullsDeeperInputCloser(t *testing.T) {
	outer := &model.Entity{ID: "outer", Class: model.ClassProtein, CompartmentID: "cyto",
		Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}}}
	inner := &model.Entity{ID: "inner", Class: model.ClassProtein, CompartmentID: "mitoMatrix",
		Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}}}

	idx := index.Build([]*model.Entity{outer, inner})
	tree := chainTree("cyto", "mito", "mitoMatrix")

	reactionSize := geom.NewPosition(0, 0, 100, 60)
	res, err := Build(tree, idx, func(acc string) string { return acc }, textmetrics.Stub{}, reactionSize)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if res.Grid.Cols() != 3 {
		t.Fatalf("expected mito's empty structural lane to be compacted away, got %d columns", res.Grid.Cols())
	}
	if outer.Position.CenterX() >= inner.Position.CenterX() {
		t.Errorf("outer's input should stay left of inner's, ordered by compartment depth")
	}
	if inner.Position.CenterX() >= res.ReactionPos.CenterX() {
		t.Errorf("inner's input should sit left of the reaction")
	}
}

func TestBuildSingleCompartmentInputOutput(t *testing.T) {
	a := &model.Entity{ID: "A", Class: model.ClassProtein, CompartmentID: "cyto",
		Roles: []model.Role{{Type: model.Input, Stoichiometry: 1}}}
	b := &model.Entity{ID: "B", Class: model.ClassProtein, CompartmentID: "cyto",
		Roles: []model.Role{{Type: model.Output, Stoichiometry: 1}}}

	idx := index.Build([]*model.Entity{a, b})
	tree := singleCompartmentTree("cyto")

	reactionSize := geom.NewPosition(0, 0, 100, 60)
	res, err := Build(tree, idx, func(string) string { return "cyto" }, textmetrics.Stub{}, reactionSize)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if a.Position.CenterX() >= res.ReactionPos.CenterX() {
		t.Errorf("input A.center_x = %v should be left of reaction %v", a.Position.CenterX(), res.ReactionPos.CenterX())
	}
	if b.Position.CenterX() <= res.ReactionPos.CenterX() {
		t.Errorf("output B.center_x = %v should be right of reaction %v", b.Position.CenterX(), res.ReactionPos.CenterX())
	}
}

func TestBuildManyRegulatorsSingleRow(t *testing.T) {
	var regs []*model.Entity
	for i := 0; i < 7; i++ {
		regs = append(regs, &model.Entity{
			ID: string(rune('a' + i)), Class: model.ClassProtein, CompartmentID: "cyto",
			Roles: []model.Role{{Type: model.NegativeRegulator, Stoichiometry: 1}},
		})
	}
	idx := index.Build(regs)
	tree := singleCompartmentTree("cyto")
	reactionSize := geom.NewPosition(0, 0, 100, 60)

	res, err := Build(tree, idx, func(string) string { return "cyto" }, textmetrics.Stub{}, reactionSize)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rowsUsed := make(map[float64]bool)
	for _, e := range regs {
		rowsUsed[e.Position.CenterY()] = true
	}
	if len(rowsUsed) != 1 {
		t.Errorf("expected all 7 regulators on a single row, got %d distinct rows", len(rowsUsed))
	}
	for _, e := range regs {
		if e.Position.CenterY() <= res.ReactionPos.CenterY() {
			t.Errorf("regulator row should sit below the reaction row")
		}
	}
}
