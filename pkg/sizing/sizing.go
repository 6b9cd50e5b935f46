// Package sizing grows every compartment rectangle to enclose its
// descendants and contents, places compartment labels, and computes the
// overall layout bounds used for the final translation to the origin.
package sizing

import (
	"github.com/reactome-tools/reaction-layout/pkg/geom"
	"github.com/reactome-tools/reaction-layout/pkg/model"
	"github.com/reactome-tools/reaction-layout/pkg/textmetrics"
)

const (
	compartmentPad     = 20.0
	labelInset         = 15.0
	minWidthTextMargin = 30.0
	reactionPadX       = 80.0
	reactionPadY       = 40.0
)

// Compute runs the post-order sizing pass over the compartment tree
// rooted at root, using entityByID to resolve GlyphIDs to positions and
// reaction for the one glyph ID that isn't an entity.
func Compute(root string, compartments map[string]*model.Compartment, entityByID map[string]*model.Entity, reaction *model.Reaction, tm textmetrics.Oracle) {
	for _, id := range postOrder(root, compartments) {
		sizeOne(compartments[id], compartments, entityByID, reaction, tm)
	}
}

func postOrder(root string, compartments map[string]*model.Compartment) []string {
	var order []string
	var visit func(id string)
	visit = func(id string) {
		c, ok := compartments[id]
		if !ok {
			return
		}
		for _, child := range c.ChildIDs {
			visit(child)
		}
		order = append(order, id)
	}
	visit(root)
	return order
}

func sizeOne(c *model.Compartment, compartments map[string]*model.Compartment, entityByID map[string]*model.Entity, reaction *model.Reaction, tm textmetrics.Oracle) {
	var acc geom.Position
	for _, childID := range c.ChildIDs {
		acc = acc.Union(compartments[childID].Position)
	}
	for _, gid := range c.GlyphIDs {
		if reaction != nil && gid == reaction.ID {
			acc = acc.Union(reaction.Position.PadSides(reactionPadX, reactionPadY))
			continue
		}
		e, ok := entityByID[gid]
		if !ok {
			continue
		}
		acc = acc.Union(e.Position)
		if e.HasRole(model.Catalyst) && e.HasRole(model.Input) {
			acc = acc.Union(catalystHookExtent(e))
		}
	}

	acc = acc.Pad(compartmentPad)

	minWidth := tm.Width(c.Name) + minWidthTextMargin
	if acc.W < minWidth {
		grow := (minWidth - acc.W) / 2
		acc = acc.PadSides(grow, 0)
	}

	c.Position = acc
	c.LabelPosition = geom.Coordinate{
		X: acc.Right() - tm.Width(c.Name) - labelInset,
		Y: acc.Bottom() + 0.5*tm.Height() - compartmentPad,
	}
}

// catalystHookExtent returns the sliver of space the top-going hook
// segment needs, so a bi-role INPUT+CATALYST entity's compartment
// encloses the hook rather than just the glyph itself.
func catalystHookExtent(e *model.Entity) geom.Position {
	minY := e.Position.Top()
	if e.Connector != nil {
		for _, seg := range e.Connector.Segments {
			if seg.Start.Y < minY {
				minY = seg.Start.Y
			}
			if seg.End.Y < minY {
				minY = seg.End.Y
			}
		}
	}
	return geom.Position{X: e.Position.CenterX(), Y: minY, W: 1, H: 1}
}

// OverallBounds unions every compartment's position, every entity's
// position and connector extent, and the reaction's position, giving
// the layout's bounding box before origin translation.
func OverallBounds(compartments map[string]*model.Compartment, entities []*model.Entity, reaction *model.Reaction) geom.Position {
	var acc geom.Position
	for _, c := range compartments {
		acc = acc.Union(c.Position)
	}
	for _, e := range entities {
		acc = acc.Union(e.Position)
		if e.Connector != nil {
			acc = acc.Union(geom.PositionFromSegments(e.Connector.Segments))
			if e.Connector.Stoichiometry != nil {
				acc = acc.Union(e.Connector.Stoichiometry.Position)
			}
		}
	}
	if reaction != nil {
		acc = acc.Union(reaction.Position)
		acc = acc.Union(geom.PositionFromSegments(reaction.Segments))
	}
	return acc
}

// Translate shifts every compartment, entity, and the reaction by
// (-bounds.X, -bounds.Y) so the layout's origin lands on (0, 0).
func Translate(compartments map[string]*model.Compartment, entities []*model.Entity, reaction *model.Reaction, bounds geom.Position) {
	dx, dy := -bounds.X, -bounds.Y
	for _, c := range compartments {
		c.Position = c.Position.Translate(dx, dy)
		c.LabelPosition = geom.Coordinate{X: c.LabelPosition.X + dx, Y: c.LabelPosition.Y + dy}
	}
	for _, e := range entities {
		e.Position = e.Position.Translate(dx, dy)
		translateConnector(e.Connector, dx, dy)
	}
	if reaction != nil {
		reaction.Position = reaction.Position.Translate(dx, dy)
		for i := range reaction.Segments {
			reaction.Segments[i] = translateSegment(reaction.Segments[i], dx, dy)
		}
	}
}

func translateConnector(c *model.Connector, dx, dy float64) {
	if c == nil {
		return
	}
	for i := range c.Segments {
		c.Segments[i] = translateSegment(c.Segments[i], dx, dy)
	}
	if c.Stoichiometry != nil {
		c.Stoichiometry.Position = c.Stoichiometry.Position.Translate(dx, dy)
	}
}

func translateSegment(s geom.Segment, dx, dy float64) geom.Segment {
	return geom.Segment{
		Start: geom.Coordinate{X: s.Start.X + dx, Y: s.Start.Y + dy},
		End:   geom.Coordinate{X: s.End.X + dx, Y: s.End.Y + dy},
	}
}
