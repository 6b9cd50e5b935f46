package grid

import (
	"sort"

	"github.com/reactome-tools/reaction-layout/pkg/errors"
	"github.com/reactome-tools/reaction-layout/pkg/geom"
	"github.com/reactome-tools/reaction-layout/pkg/index"
	"github.com/reactome-tools/reaction-layout/pkg/model"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
	"github.com/reactome-tools/reaction-layout/pkg/textmetrics"
)

const (
	vPad             = 12.0 // inter-row / inter-glyph vertical padding
	hPad             = 12.0 // inter-column / inter-glyph horizontal padding
	regulatorGap     = 16.0
	columnWrapAfter  = 6
	compartmentPad   = 20.0
	catalystTopExtra = 50.0
)

// Result is the finalized grid: tile placements plus the pixel centers
// of every row and column, and the row/col holding the reaction.
type Result struct {
	Grid        *Grid
	ColX        []float64
	RowY        []float64
	ReactionRow int
	ReactionCol int
	ReactionPos geom.Position
}

// Build assigns every participant to a grid cell, sizes rows and
// columns, and returns their pixel centers. compartmentName resolves a
// compartment accession to its display name, needed for label-width
// sizing. reactionSize is the reaction glyph's own (width, height),
// which seeds the reaction row/column's minimum size.
func Build(tree *onto.Tree, idx *index.Index, compartmentName func(string) string, tm textmetrics.Oracle, reactionSize geom.Position) (*Result, error) {
	pureCatalystsForRows := make([]*model.Entity, 0, len(idx.Catalysts))
	for _, e := range idx.Catalysts {
		if !e.HasRole(model.Input) {
			pureCatalystsForRows = append(pureCatalystsForRows, e)
		}
	}

	inputCols := axisLanes(tree, compartmentsFor(tree, idx.Inputs))
	outputCols := axisLanes(tree, compartmentsFor(tree, idx.Outputs))
	catalystRows := axisLanes(tree, compartmentsFor(tree, pureCatalystsForRows))
	regulatorRows := axisLanes(tree, compartmentsFor(tree, idx.Regulators()))

	sort.Slice(inputCols, func(i, j int) bool { return less(tree, inputCols[i], inputCols[j]) })
	sort.Slice(outputCols, func(i, j int) bool { return less(tree, outputCols[j], outputCols[i]) })
	sort.Slice(catalystRows, func(i, j int) bool { return less(tree, catalystRows[i], catalystRows[j]) })
	sort.Slice(regulatorRows, func(i, j int) bool { return less(tree, regulatorRows[j], regulatorRows[i]) })

	reactionRow := len(catalystRows)
	reactionCol := len(inputCols)
	rows := len(catalystRows) + 1 + len(regulatorRows)
	cols := len(inputCols) + 1 + len(outputCols)

	g := NewGrid(rows, cols)

	byCompartment := func(entities []*model.Entity) map[string][]*model.Entity {
		out := make(map[string][]*model.Entity)
		for _, e := range entities {
			out[e.CompartmentID] = append(out[e.CompartmentID], e)
		}
		return out
	}
	// Entities that carry both INPUT and CATALYST sit in the input tile
	// and grow a hook connector over the top; they never get their own
	// catalyst-row slot.
	inputsByC := byCompartment(idx.Inputs)
	outputsByC := byCompartment(idx.Outputs)
	catalystsByC := byCompartment(pureCatalystsForRows)
	regulatorsByC := byCompartment(idx.Regulators())

	for i, c := range inputCols {
		ents := append([]*model.Entity(nil), inputsByC[c]...)
		sortTile(ents)
		g.Set(reactionRow, i, &Tile{Kind: Vertical, CompartmentID: c, Role: model.Input, Entities: ents})
	}
	for i, c := range outputCols {
		ents := append([]*model.Entity(nil), outputsByC[c]...)
		sortTile(ents)
		g.Set(reactionRow, reactionCol+1+i, &Tile{Kind: Vertical, CompartmentID: c, Role: model.Output, Entities: ents})
	}
	for i, c := range catalystRows {
		ents := append([]*model.Entity(nil), catalystsByC[c]...)
		sortTile(ents)
		g.Set(i, reactionCol, &Tile{Kind: Horizontal, CompartmentID: c, Role: model.Catalyst, Entities: ents})
	}
	for i, c := range regulatorRows {
		ents := append([]*model.Entity(nil), regulatorsByC[c]...)
		sortTile(ents)
		g.Set(reactionRow+1+i, reactionCol, &Tile{Kind: Horizontal, CompartmentID: c, Role: model.PositiveRegulator, Entities: ents})
	}

	if err := checkNoDiagonalMixing(g, reactionRow); err != nil {
		return nil, err
	}

	compactTowardReaction(g, reactionRow, reactionCol, inputCols, outputCols, tree)
	compactRowsTowardReaction(g, reactionRow, reactionCol, catalystRows, regulatorRows, tree)
	compactEmptyRowsAndCols(g, &reactionRow, &reactionCol)

	rowH := make([]float64, g.Rows())
	colW := make([]float64, g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			t := g.Get(r, c)
			if t.Empty() {
				continue
			}
			w, h := packedSize(t)
			if w > colW[c] {
				colW[c] = w
			}
			if h > rowH[r] {
				rowH[r] = h
			}
		}
	}
	for c := range colW {
		if colW[c] > 0 {
			colW[c] += hPad
		}
	}
	for r := range rowH {
		if rowH[r] > 0 {
			rowH[r] += vPad
		}
	}

	for c := 0; c < g.Cols(); c++ {
		if c == reactionCol {
			continue
		}
		t := reactionRowTile(g, reactionRow, c)
		if t.Empty() {
			continue
		}
		min := 2*compartmentPad + tm.Width(compartmentName(t.CompartmentID))
		widened := colW[c] + 2*compartmentPad
		if widened < min {
			widened = min
		}
		colW[c] = widened
	}
	for r := 0; r < g.Rows(); r++ {
		if r == reactionRow {
			continue
		}
		t := g.Get(r, reactionCol)
		if t.Empty() {
			continue
		}
		rowH[r] += 2 * compartmentPad
		if hasBiRoleCatalystInput(t, idx) {
			rowH[r] += catalystTopExtra
		}
	}

	if colW[reactionCol] < reactionSize.W {
		colW[reactionCol] = reactionSize.W
	}
	if rowH[reactionRow] < reactionSize.H {
		rowH[reactionRow] = reactionSize.H
	}

	colX := centers(colW)
	rowY := centers(rowH)

	reactionPos := geom.NewPosition(colX[reactionCol], rowY[reactionRow], reactionSize.W, reactionSize.H)

	finalize(g, colX, rowY, reactionRow, reactionCol, reactionPos)

	return &Result{Grid: g, ColX: colX, RowY: rowY, ReactionRow: reactionRow, ReactionCol: reactionCol, ReactionPos: reactionPos}, nil
}

func reactionRowTile(g *Grid, row, col int) *Tile { return g.Get(row, col) }

func compartmentsFor(tree *onto.Tree, entities []*model.Entity) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entities {
		if !seen[e.CompartmentID] {
			seen[e.CompartmentID] = true
			out = append(out, e.CompartmentID)
		}
	}
	return out
}

// axisLanes expands a list of participant-bearing compartments to
// include every intermediate ancestor between each one and the tree
// root, deduplicated. A compartment with no participant of its own on
// this axis still reserves a lane, sized to zero once
// compactEmptyRowsAndCols runs, so a descendant nested two or more
// levels inside another participant's compartment can slide across the
// gap toward the reaction instead of being stranded behind it.
func axisLanes(tree *onto.Tree, leaves []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, leaf := range leaves {
		for acc, ok := leaf, true; ok; acc, ok = tree.Parent[acc] {
			if seen[acc] {
				continue
			}
			seen[acc] = true
			out = append(out, acc)
		}
	}
	return out
}

// compactTowardReaction slides input and output tiles across empty
// lanes that belong to a descendant of their own compartment, so a
// compartment nested inside another one on the same side moves as
// close to the reaction as the hierarchy and occupied neighbors allow.
// Mirrors the original algorithm's compactInputs/compactOutputs pass.
func compactTowardReaction(g *Grid, reactionRow, reactionCol int, inputCols, outputCols []string, tree *onto.Tree) {
	lanes := make([]string, g.Cols())
	copy(lanes, inputCols)
	for i, c := range outputCols {
		lanes[reactionCol+1+i] = c
	}
	slideRow(g, reactionRow, 0, reactionCol-1, +1, lanes, tree)
	slideRow(g, reactionRow, g.Cols()-1, reactionCol+1, -1, lanes, tree)
}

// compactRowsTowardReaction is the row-axis mirror of
// compactTowardReaction, applied to catalyst/regulator tiles via
// Grid.Transpose so the same sliding rule serves both axes.
func compactRowsTowardReaction(g *Grid, reactionRow, reactionCol int, catalystRows, regulatorRows []string, tree *onto.Tree) {
	lanes := make([]string, g.Rows())
	copy(lanes, catalystRows)
	for i, c := range regulatorRows {
		lanes[reactionRow+1+i] = c
	}
	tg := g.Transpose()
	slideRow(tg, reactionCol, 0, reactionRow-1, +1, lanes, tree)
	slideRow(tg, reactionCol, tg.Cols()-1, reactionRow+1, -1, lanes, tree)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			g.Set(r, c, tg.Get(c, r))
		}
	}
}

// slideRow walks row's cells from "from" to "to" (inclusive) in steps
// of "step" and, for each occupied cell, hops it as far as "to" as the
// chain of intervening empty, descendant-owned lanes named in
// laneCompartment allows. It stops at the first occupied cell in the
// way (the "busy path" check) or the first lane that is not the same
// compartment or one of its descendants.
func slideRow(g *Grid, row, from, to, step int, laneCompartment []string, tree *onto.Tree) {
	for c := from; c != to+step; c += step {
		t := g.Get(row, c)
		if t.Empty() {
			continue
		}
		srcComp := t.CompartmentID
		target := c
		for probe := c + step; probe != to+step; probe += step {
			pt := g.Get(row, probe)
			if !pt.Empty() {
				break
			}
			probeComp := laneCompartment[probe]
			if probeComp != srcComp && !tree.IsDescendantOf(probeComp, srcComp) {
				break
			}
			target = probe
		}
		if target != c {
			g.Set(row, target, t)
			g.Set(row, c, nil)
		}
	}
}

func less(tree *onto.Tree, a, b string) bool {
	da, db := tree.Depth(a), tree.Depth(b)
	if da != db {
		return da < db
	}
	return a < b
}

// hasBiRoleCatalystInput reports whether the compartment's catalyst
// strip contains an entity split from a source that also carries an
// input role elsewhere in the same compartment.
func hasBiRoleCatalystInput(t *Tile, idx *index.Index) bool {
	inputSources := make(map[string]bool)
	for _, e := range idx.Inputs {
		if e.CompartmentID == t.CompartmentID {
			inputSources[e.SourceID()] = true
		}
	}
	for _, e := range t.Entities {
		if inputSources[e.SourceID()] {
			return true
		}
	}
	return false
}

// checkNoDiagonalMixing verifies the reaction row never carries both a
// vertical tile (input/output) and a horizontal tile (catalyst/
// regulator); the row/column partition built above makes this
// structurally impossible, so a violation indicates an algorithm bug
// rather than a bad input.
func checkNoDiagonalMixing(g *Grid, reactionRow int) error {
	for c := 0; c < g.Cols(); c++ {
		t := g.Get(reactionRow, c)
		if !t.Empty() && t.Kind == Horizontal {
			return errors.New(errors.ErrCodeInternal, "horizontal tile placed on the reaction row at column %d", c)
		}
	}
	return nil
}

func compactEmptyRowsAndCols(g *Grid, reactionRow, reactionCol *int) {
	for r := g.Rows() - 1; r >= 0; r-- {
		if r == *reactionRow {
			continue // the reaction itself occupies this row even without a Tile
		}
		if g.RowEmpty(r) {
			g.DeleteRow(r)
			if r < *reactionRow {
				*reactionRow--
			}
		}
	}
	for c := g.Cols() - 1; c >= 0; c-- {
		if c == *reactionCol {
			continue // the reaction itself occupies this column even without a Tile
		}
		if g.ColEmpty(c) {
			g.DeleteCol(c)
			if c < *reactionCol {
				*reactionCol--
			}
		}
	}
}

// packedSize returns a tile's local bounding box before it is centered
// into its grid cell.
func packedSize(t *Tile) (w, h float64) {
	if t.Empty() {
		return 0, 0
	}
	gap := hPad
	if t.Role == model.PositiveRegulator || t.Role == model.NegativeRegulator {
		gap = regulatorGap
	}
	if t.Kind == Horizontal {
		for i, e := range t.Entities {
			ew, eh := e.Size()
			w += ew
			if i > 0 {
				w += gap
			}
			if eh > h {
				h = eh
			}
		}
		return w, h
	}

	// Vertical tile: single column, or two columns once it holds more
	// than columnWrapAfter entities.
	cols := 1
	if len(t.Entities) > columnWrapAfter {
		cols = 2
	}
	rowsPerCol := (len(t.Entities) + cols - 1) / cols
	var maxW float64
	colHeights := make([]float64, cols)
	for i, e := range t.Entities {
		ew, eh := e.Size()
		if ew > maxW {
			maxW = ew
		}
		col := i / rowsPerCol
		if col >= cols {
			col = cols - 1
		}
		colHeights[col] += eh
		if i%rowsPerCol != 0 {
			colHeights[col] += vPad
		}
	}
	for _, ch := range colHeights {
		if ch > h {
			h = ch
		}
	}
	if cols == 2 {
		w = 2*maxW + 20
	} else {
		w = maxW
	}
	return w, h
}

// centers converts a slice of sizes into running-sum center coordinates.
func centers(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	var cursor float64
	for i, s := range sizes {
		out[i] = cursor + s/2
		cursor += s
	}
	return out
}

// finalize walks every tile and sets each contained entity's Position
// so the tile's packed bounds are centered on (colX[col], rowY[row]).
func finalize(g *Grid, colX, rowY []float64, reactionRow, reactionCol int, reactionPos geom.Position) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			t := g.Get(r, c)
			if t.Empty() {
				continue
			}
			placeTile(t, colX[c], rowY[r])
		}
	}
}

func placeTile(t *Tile, cx, cy float64) {
	w, h := packedSize(t)
	if t.Kind == Horizontal {
		x := cx - w/2
		for _, e := range t.Entities {
			ew, eh := e.Size()
			e.Position = geom.Position{X: x, Y: cy - eh/2, W: ew, H: eh}
			gap := hPad
			if t.Role == model.PositiveRegulator || t.Role == model.NegativeRegulator {
				gap = regulatorGap
			}
			x += ew + gap
		}
		return
	}

	cols := 1
	if len(t.Entities) > columnWrapAfter {
		cols = 2
	}
	rowsPerCol := (len(t.Entities) + cols - 1) / cols
	colW := w
	if cols == 2 {
		colW = (w - 20) / 2
	}
	leftX := cx - w/2
	y := make([]float64, cols)
	for i := range y {
		y[i] = cy - h/2
	}
	for i, e := range t.Entities {
		col := i / rowsPerCol
		if col >= cols {
			col = cols - 1
		}
		ew, eh := e.Size()
		x := leftX + float64(col)*(colW+20)
		e.Position = geom.Position{X: x + (colW-ew)/2, Y: y[col], W: ew, H: eh}
		y[col] += eh + vPad
	}
}
