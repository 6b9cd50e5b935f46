// Package geom provides the value types shared by every layout pass:
// rectangles, points, and the segment chains that make up connectors.
//
// All coordinates are abstract pixels (float64); nothing in this package
// rounds, clips, or performs I/O.
package geom

import "math"

// Coordinate is a single point in the layout plane.
type Coordinate struct {
	X, Y float64
}

// Segment is a straight line between two coordinates. Connectors are
// built from an ordered chain of segments where each segment's End equals
// the next segment's Start; an INPUT+CATALYST connector appends a second
// chain (the catalyst hook) that starts at the entity's top edge.
type Segment struct {
	Start, End Coordinate
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	return math.Hypot(dx, dy)
}

// Midpoint returns the point halfway between the segment's endpoints.
func (s Segment) Midpoint() Coordinate {
	return Coordinate{
		X: (s.Start.X + s.End.X) / 2,
		Y: (s.Start.Y + s.End.Y) / 2,
	}
}

// Position is an axis-aligned rectangle: the position and size of a
// glyph, compartment, or the overall layout. The zero Position is the
// degenerate point at the origin.
type Position struct {
	X, Y, W, H float64
}

// NewPosition builds a Position centered at (cx, cy) with the given size.
func NewPosition(cx, cy, w, h float64) Position {
	return Position{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left, Right, Top, Bottom return the rectangle's edges.
func (p Position) Left() float64   { return p.X }
func (p Position) Right() float64  { return p.X + p.W }
func (p Position) Top() float64    { return p.Y }
func (p Position) Bottom() float64 { return p.Y + p.H }

// CenterX and CenterY return the rectangle's center point.
func (p Position) CenterX() float64 { return p.X + p.W/2 }
func (p Position) CenterY() float64 { return p.Y + p.H/2 }

// Center returns the rectangle's center as a Coordinate.
func (p Position) Center() Coordinate {
	return Coordinate{X: p.CenterX(), Y: p.CenterY()}
}

// IsZero reports whether the position is the unset zero value.
func (p Position) IsZero() bool {
	return p == Position{}
}

// Union returns the smallest Position enclosing both p and o. Unioning
// with a zero Position returns the other operand unchanged, so callers
// can fold over a slice starting from the zero value.
func (p Position) Union(o Position) Position {
	if p.IsZero() {
		return o
	}
	if o.IsZero() {
		return p
	}
	left := math.Min(p.Left(), o.Left())
	top := math.Min(p.Top(), o.Top())
	right := math.Max(p.Right(), o.Right())
	bottom := math.Max(p.Bottom(), o.Bottom())
	return Position{X: left, Y: top, W: right - left, H: bottom - top}
}

// UnionAll folds Union over a slice of positions, skipping zero values.
func UnionAll(positions []Position) Position {
	var acc Position
	for _, p := range positions {
		acc = acc.Union(p)
	}
	return acc
}

// Pad grows the rectangle by amt on every side, keeping the same center.
func (p Position) Pad(amt float64) Position {
	return Position{X: p.X - amt, Y: p.Y - amt, W: p.W + 2*amt, H: p.H + 2*amt}
}

// PadSides grows the rectangle independently on each axis, keeping the
// same center: used by compartment sizing to pad the reaction's bounds
// asymmetrically before it contributes to its compartment's union.
func (p Position) PadSides(dx, dy float64) Position {
	return Position{X: p.X - dx, Y: p.Y - dy, W: p.W + 2*dx, H: p.H + 2*dy}
}

// Translate shifts the rectangle by (dx, dy).
func (p Position) Translate(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, W: p.W, H: p.H}
}

// Overlaps reports whether p and o share any interior area. Rectangles
// that merely touch along an edge do not overlap.
func (p Position) Overlaps(o Position) bool {
	if p.Right() <= o.Left() || o.Right() <= p.Left() {
		return false
	}
	if p.Bottom() <= o.Top() || o.Bottom() <= p.Top() {
		return false
	}
	return true
}

// Encloses reports whether p fully contains o (inclusive of touching
// edges).
func (p Position) Encloses(o Position) bool {
	return p.Left() <= o.Left() && p.Top() <= o.Top() &&
		p.Right() >= o.Right() && p.Bottom() >= o.Bottom()
}

// MoveCenterTo translates the rectangle so its center lands on (cx, cy).
func (p Position) MoveCenterTo(cx, cy float64) Position {
	return Position{X: cx - p.W/2, Y: cy - p.H/2, W: p.W, H: p.H}
}

// PositionFromSegments returns the bounding box of a set of segments,
// used when unioning a connector's extent into its owning glyph's or
// compartment's overall bounds.
func PositionFromSegments(segments []Segment) Position {
	var acc Position
	for _, s := range segments {
		acc = acc.Union(Position{X: s.Start.X, Y: s.Start.Y})
		acc = acc.Union(Position{X: s.End.X, Y: s.End.Y})
	}
	return acc
}
