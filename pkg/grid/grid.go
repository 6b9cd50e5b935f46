// Package grid builds the two-dimensional placement grid: rows and
// columns keyed by (compartment, role), filled with tiles of entities,
// compacted, sized, and finally converted to absolute pixel centers.
package grid

import (
	"sort"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

// Kind distinguishes how a tile arranges its glyphs internally.
type Kind int

const (
	// Vertical tiles (inputs, outputs) stack one glyph per row, wrapping
	// to a second column once they hold more than six glyphs.
	Vertical Kind = iota
	// Horizontal tiles (catalysts, regulators) lay glyphs side by side.
	Horizontal
)

// Tile is one (compartment, role) cell in the placement grid.
type Tile struct {
	Kind          Kind
	CompartmentID string
	Role          model.RoleType
	Entities      []*model.Entity
}

// Empty reports whether a tile is missing or holds no entities.
func (t *Tile) Empty() bool { return t == nil || len(t.Entities) == 0 }

// Grid is a dense two-dimensional array of tiles, following the
// row/column insertion, deletion and transposition contract needed by
// compaction.
type Grid struct {
	cells [][]*Tile // cells[row][col]
	rows  int
	cols  int
}

// NewGrid creates a rows x cols grid of nil (empty) tiles.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]*Tile, rows)
	for r := range cells {
		cells[r] = make([]*Tile, cols)
	}
	return &Grid{cells: cells, rows: rows, cols: cols}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Get returns the tile at (row, col), or nil if empty.
func (g *Grid) Get(row, col int) *Tile { return g.cells[row][col] }

// Set places a tile at (row, col).
func (g *Grid) Set(row, col int, t *Tile) { g.cells[row][col] = t }

// InsertRow inserts an empty row before index at.
func (g *Grid) InsertRow(at int) {
	newRow := make([]*Tile, g.cols)
	g.cells = append(g.cells, nil)
	copy(g.cells[at+1:], g.cells[at:])
	g.cells[at] = newRow
	g.rows++
}

// InsertCol inserts an empty column before index at.
func (g *Grid) InsertCol(at int) {
	for r := range g.cells {
		row := append(g.cells[r], nil)
		copy(row[at+1:], row[at:])
		row[at] = nil
		g.cells[r] = row
	}
	g.cols++
}

// DeleteRow removes row r.
func (g *Grid) DeleteRow(r int) {
	g.cells = append(g.cells[:r], g.cells[r+1:]...)
	g.rows--
}

// DeleteCol removes column c.
func (g *Grid) DeleteCol(c int) {
	for r := range g.cells {
		g.cells[r] = append(g.cells[r][:c], g.cells[r][c+1:]...)
	}
	g.cols--
}

// RowEmpty reports whether every cell in row r is empty.
func (g *Grid) RowEmpty(r int) bool {
	for _, t := range g.cells[r] {
		if !t.Empty() {
			return false
		}
	}
	return true
}

// ColEmpty reports whether every cell in column c is empty.
func (g *Grid) ColEmpty(c int) bool {
	for r := 0; r < g.rows; r++ {
		if !g.cells[r][c].Empty() {
			return false
		}
	}
	return true
}

// Transpose returns a new grid with rows and columns swapped, used by
// compaction routines written once and applied to both axes.
func (g *Grid) Transpose() *Grid {
	t := NewGrid(g.cols, g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			t.cells[c][r] = g.cells[r][c]
		}
	}
	return t
}

// sortTile orders a tile's entities per the fixed placement rule:
// multi-role entities first, then non-trivial before trivial, then by
// renderable class preference.
func sortTile(entities []*model.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if len(a.Roles) != len(b.Roles) {
			return len(a.Roles) > len(b.Roles)
		}
		if a.Flags.Trivial != b.Flags.Trivial {
			return !a.Flags.Trivial
		}
		return a.Class.SortPreference() < b.Class.SortPreference()
	})
}
