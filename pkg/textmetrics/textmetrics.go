// Package textmetrics defines the font-metrics oracle the layout engine
// consumes to size compartment labels and glyph text, and provides a
// deterministic stub for tests and headless computation.
package textmetrics

import "sync"

// Oracle answers questions about how wide and tall a piece of label text
// renders, so the layout engine can size compartments and glyphs without
// depending on an actual font rasterizer. Implementations are expected
// to be pure and referentially transparent; the layout engine may cache
// their results.
type Oracle interface {
	// Width returns the rendered width of name at the oracle's font.
	Width(name string) float64
	// Height returns the rendered line height at the oracle's font.
	Height() float64
}

// Stub is a deterministic Oracle for tests and environments without a
// real font metrics backend: width is 6 units per rune, height is a
// fixed 12 units.
type Stub struct{}

func (Stub) Width(name string) float64 { return 6 * float64(len([]rune(name))) }
func (Stub) Height() float64           { return 12 }

// Memoizing wraps an Oracle with a size-unbounded in-memory cache, since
// the same compartment or entity name is frequently queried many times
// within a single compute().
type Memoizing struct {
	inner   Oracle
	mu      sync.Mutex
	widths  map[string]float64
	height  float64
	hasSize bool
}

// NewMemoizing wraps inner with a per-instance width cache.
func NewMemoizing(inner Oracle) *Memoizing {
	return &Memoizing{inner: inner, widths: make(map[string]float64)}
}

func (m *Memoizing) Width(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.widths[name]; ok {
		return w
	}
	w := m.inner.Width(name)
	m.widths[name] = w
	return w
}

func (m *Memoizing) Height() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hasSize {
		return m.height
	}
	m.height = m.inner.Height()
	m.hasSize = true
	return m.height
}
