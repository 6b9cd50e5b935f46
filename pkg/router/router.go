// Package router synthesizes the orthogonal connector segments that tie
// every entity to the reaction backbone, following the fixed geometric
// rules for inputs, outputs, catalysts and fan-out regulators.
package router

import (
	"math"

	"github.com/reactome-tools/reaction-layout/pkg/geom"
	"github.com/reactome-tools/reaction-layout/pkg/index"
	"github.com/reactome-tools/reaction-layout/pkg/model"
)

const (
	inputOutputClearance = 35.0
	arrowSize            = 8.0
	catalystClearance    = 35.0
	regulatorClearance   = 35.0
	geneJogOut           = 8.0
	geneJogIn            = 30.0
	catalystHookGap      = 50.0
	badgeSize            = 12.0
)

// Route computes and attaches a Connector to every entity in idx, and
// sets the reaction's backbone segments.
func Route(reaction *model.Reaction, idx *index.Index) {
	reaction.Segments = backbone(reaction)

	routeInputs(reaction, idx.Inputs)
	routeOutputs(reaction, idx.Outputs)
	routeCatalysts(reaction, pureCatalysts(idx))
	routeRegulators(reaction, idx.PositiveRegulators, idx.NegativeRegulators)
}

func pureCatalysts(idx *index.Index) []*model.Entity {
	out := make([]*model.Entity, 0, len(idx.Catalysts))
	for _, e := range idx.Catalysts {
		if !e.HasRole(model.Input) {
			out = append(out, e)
		}
	}
	return out
}

func backbone(r *model.Reaction) []geom.Segment {
	half := model.BackboneHalfLength(r.Shape)
	y := r.Position.CenterY()
	left := r.Position.X - half
	right := r.Position.Right() + half
	return []geom.Segment{
		{Start: geom.Coordinate{X: left, Y: y}, End: geom.Coordinate{X: r.Position.X, Y: y}},
		{Start: geom.Coordinate{X: r.Position.Right(), Y: y}, End: geom.Coordinate{X: right, Y: y}},
	}
}

func routeInputs(reaction *model.Reaction, inputs []*model.Entity) {
	if len(inputs) == 0 {
		return
	}
	vRule := maxRight(inputs) + inputOutputClearance
	port := reaction.LeftPort()

	for _, e := range inputs {
		start := geom.Coordinate{X: e.Position.Right(), Y: e.Position.CenterY()}
		var segs []geom.Segment
		if e.Class == model.ClassGene {
			jogged := geom.Coordinate{X: start.X + geneJogIn, Y: start.Y}
			segs = append(segs, geom.Segment{
				Start: geom.Coordinate{X: start.X + geneJogOut, Y: e.Position.Top()},
				End:   jogged,
			})
			start = jogged
		}
		segs = append(segs,
			geom.Segment{Start: start, End: geom.Coordinate{X: vRule, Y: start.Y}},
			geom.Segment{Start: geom.Coordinate{X: vRule, Y: start.Y}, End: port},
		)

		pointer := model.PointerInput
		if e.HasRole(model.Catalyst) {
			pointer = model.PointerCatalyst
			segs = append(segs, catalystHook(e, reaction, vRule)...)
		}

		e.Connector = &model.Connector{Segments: segs, Pointer: pointer}
		attachBadge(e, e.Connector, model.Input)
	}
}

func routeOutputs(reaction *model.Reaction, outputs []*model.Entity) {
	if len(outputs) == 0 {
		return
	}
	vRule := minLeft(outputs) - inputOutputClearance - arrowSize
	port := reaction.RightPort()

	for _, e := range outputs {
		start := geom.Coordinate{X: e.Position.X, Y: e.Position.CenterY()}
		var segs []geom.Segment
		if e.Class == model.ClassGene {
			jogged := geom.Coordinate{X: start.X - geneJogIn, Y: start.Y}
			segs = append(segs, geom.Segment{
				Start: geom.Coordinate{X: start.X - geneJogOut, Y: e.Position.Top()},
				End:   jogged,
			})
			start = jogged
		}
		segs = append(segs,
			geom.Segment{Start: start, End: geom.Coordinate{X: vRule, Y: start.Y}},
			geom.Segment{Start: geom.Coordinate{X: vRule, Y: start.Y}, End: port},
		)

		e.Connector = &model.Connector{Segments: segs, Pointer: model.PointerOutput}
		attachBadge(e, e.Connector, model.Output)
	}
}

// catalystHook draws the three extra segments a bi-role INPUT+CATALYST
// entity grows to reach the reaction over the top of the diagram: up to
// a shared horizontal rail, across to the input rail's X plus the hook
// gap, then diagonally down into the reaction center. vRule is the same
// vertical rail routeInputs collapses every plain input connector onto,
// so every bi-role hook on a diagram bends at the same rail X.
func catalystHook(e *model.Entity, reaction *model.Reaction, vRule float64) []geom.Segment {
	cx := e.Position.CenterX()
	top := math.Min(e.Position.Top(), reaction.Position.Top()) - 5
	railX := vRule + catalystHookGap
	center := geom.Coordinate{X: reaction.Position.CenterX(), Y: reaction.Position.CenterY()}
	return []geom.Segment{
		{Start: geom.Coordinate{X: cx, Y: e.Position.Top()}, End: geom.Coordinate{X: cx, Y: top}},
		{Start: geom.Coordinate{X: cx, Y: top}, End: geom.Coordinate{X: railX, Y: top}},
		{Start: geom.Coordinate{X: railX, Y: top}, End: center},
	}
}

func routeCatalysts(reaction *model.Reaction, catalysts []*model.Entity) {
	if len(catalysts) == 0 {
		return
	}
	hRule := maxBottom(catalysts) + catalystClearance
	center := geom.Coordinate{X: reaction.Position.CenterX(), Y: reaction.Position.CenterY()}

	for _, e := range catalysts {
		cx := e.Position.CenterX()
		maxY := e.Position.Bottom()
		segs := []geom.Segment{
			{Start: geom.Coordinate{X: cx, Y: maxY}, End: geom.Coordinate{X: cx, Y: hRule}},
			{Start: geom.Coordinate{X: cx, Y: hRule}, End: center},
		}
		e.Connector = &model.Connector{Segments: segs, Pointer: model.PointerCatalyst}
		attachBadge(e, e.Connector, model.Catalyst)
	}
}

func routeRegulators(reaction *model.Reaction, positive, negative []*model.Entity) {
	all := make([]*model.Entity, 0, len(positive)+len(negative))
	all = append(all, positive...)
	all = append(all, negative...)
	if len(all) == 0 {
		return
	}
	sortByCenterX(all)

	hRule := minTop(all) - regulatorClearance
	n := len(all)
	for i, e := range all {
		angle := math.Pi * float64(i+1) / float64(n+1)
		radius := reaction.Position.H/2 + 6*float64(n+1)/math.Pi
		x := reaction.Position.CenterX() - radius*math.Cos(angle)
		y := reaction.Position.CenterY() + radius*math.Sin(angle)

		cx := e.Position.CenterX()
		nearY := e.Position.Top()
		segs := []geom.Segment{
			{Start: geom.Coordinate{X: cx, Y: nearY}, End: geom.Coordinate{X: cx, Y: hRule}},
			{Start: geom.Coordinate{X: cx, Y: hRule}, End: geom.Coordinate{X: x, Y: y}},
		}

		pointer := model.PointerActivator
		role := model.PositiveRegulator
		if e.HasRole(model.NegativeRegulator) {
			pointer = model.PointerInhibitor
			role = model.NegativeRegulator
		}
		e.Connector = &model.Connector{Segments: segs, Pointer: pointer}
		attachBadge(e, e.Connector, role)
	}
}

// attachBadge places a stoichiometry badge on the midpoint of the first
// segment leaving the entity, when the given role's count isn't 1.
func attachBadge(e *model.Entity, c *model.Connector, role model.RoleType) {
	r, ok := e.RoleOfType(role)
	if !ok || r.Stoichiometry == 1 || len(c.Segments) == 0 {
		return
	}
	mid := c.Segments[0].Midpoint()
	c.Stoichiometry = &model.StoichiometryBadge{
		Position: geom.NewPosition(mid.X, mid.Y, badgeSize, badgeSize),
		Count:    r.Stoichiometry,
	}
}
