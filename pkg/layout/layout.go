// Package layout is the external interface glue: it consumes the
// inbound participant/role/compartment model, drives the compartment
// tree, duplication, placement, routing and sizing passes in order, and
// emits a finalized Layout ready for a renderer.
package layout

import (
	"context"
	"time"

	"github.com/reactome-tools/reaction-layout/pkg/duplicate"
	"github.com/reactome-tools/reaction-layout/pkg/errors"
	"github.com/reactome-tools/reaction-layout/pkg/geom"
	"github.com/reactome-tools/reaction-layout/pkg/grid"
	"github.com/reactome-tools/reaction-layout/pkg/index"
	"github.com/reactome-tools/reaction-layout/pkg/model"
	"github.com/reactome-tools/reaction-layout/pkg/observability"
	"github.com/reactome-tools/reaction-layout/pkg/onto"
	"github.com/reactome-tools/reaction-layout/pkg/router"
	"github.com/reactome-tools/reaction-layout/pkg/sizing"
	"github.com/reactome-tools/reaction-layout/pkg/textmetrics"
)

// CompartmentDescriptor names a compartment the ontology source already
// knows about, without any tree structure attached yet.
type CompartmentDescriptor struct {
	Accession   string
	DisplayName string
}

// Input is the inbound model: one reaction, its participants, and the
// compartment descriptors the ontology source will resolve into a tree.
type Input struct {
	Reaction     *model.Reaction
	Entities     []*model.Entity
	Compartments []CompartmentDescriptor
}

// OntologySource resolves a set of compartment accessions to the
// minimal tree spanning them. *onto.DAG and *onto.CachingSource both
// satisfy this by structural typing.
type OntologySource interface {
	CompartmentTree(accessions []string) *onto.Tree
}

// Layout is the outbound model: the finalized reaction, participants,
// and compartments, all origin-anchored.
type Layout struct {
	Reaction     *model.Reaction
	Entities     []*model.Entity
	Compartments map[string]*model.Compartment
	Root         string
	Position     geom.Position
}

// Option configures a Compute call.
type Option func(*options)

type options struct {
	tm textmetrics.Oracle
}

// WithTextMetrics overrides the default deterministic text-metrics stub
// with a caller-supplied oracle (e.g. a real font-metrics backend).
func WithTextMetrics(tm textmetrics.Oracle) Option {
	return func(o *options) { o.tm = tm }
}

// Compute runs the full pipeline: duplicate, index, build the
// compartment tree, place, route connectors, size compartments,
// recompute bounds, and translate to the origin.
func Compute(ctx context.Context, in *Input, source OntologySource, opts ...Option) (*Layout, error) {
	cfg := &options{tm: textmetrics.Stub{}}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.tm = textmetrics.NewMemoizing(cfg.tm)

	if err := validate(in); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Layout().OnComputeStart(ctx, in.Reaction.ID, len(in.Entities))
	var err error
	defer func() {
		observability.Layout().OnComputeComplete(ctx, in.Reaction.ID, time.Since(start), err)
	}()

	step := func(name string, fn func()) {
		s := time.Now()
		fn()
		observability.Layout().OnComputeStep(ctx, in.Reaction.ID, name, time.Since(s))
	}

	var entities []*model.Entity
	step("duplicate", func() { entities = duplicate.Split(in.Entities) })

	var idx *index.Index
	step("index", func() { idx = index.Build(entities) })

	accessions := accessionSet(in.Reaction, entities)
	var tree *onto.Tree
	step("tree", func() { tree = source.CompartmentTree(accessions) })

	reaction := in.Reaction
	if reaction.CompartmentID == "" {
		reaction.CompartmentID = tree.Root
	}

	names := descriptorNames(in.Compartments)
	nameFn := func(accession string) string {
		if n, ok := names[accession]; ok {
			return n
		}
		if n, ok := tree.Nodes[accession]; ok {
			return n.Name
		}
		return accession
	}

	rw, rh := model.ReactionSize(reaction.Shape)
	var result *grid.Result
	step("place", func() {
		result, err = grid.Build(tree, idx, nameFn, cfg.tm, geom.Position{W: rw, H: rh})
	})
	if err != nil {
		return nil, err
	}
	reaction.Position = result.ReactionPos

	step("route", func() { router.Route(reaction, idx) })

	compartments := buildCompartments(tree, nameFn, entities, reaction)

	step("size", func() {
		entityByID := make(map[string]*model.Entity, len(entities))
		for _, e := range entities {
			entityByID[e.ID] = e
		}
		sizing.Compute(tree.Root, compartments, entityByID, reaction, cfg.tm)
	})

	var bounds geom.Position
	step("translate", func() {
		bounds = sizing.OverallBounds(compartments, entities, reaction)
		sizing.Translate(compartments, entities, reaction, bounds)
	})

	root := stripSentinel(compartments, tree.Root)
	finalBounds := sizing.OverallBounds(compartments, entities, reaction)

	return &Layout{
		Reaction:     reaction,
		Entities:     entities,
		Compartments: compartments,
		Root:         root,
		Position:     finalBounds,
	}, nil
}

func validate(in *Input) error {
	if in == nil || in.Reaction == nil {
		return errors.New(errors.ErrCodeMalformedInput, "reaction is required")
	}
	if len(in.Entities) == 0 {
		return errors.New(errors.ErrCodeMalformedInput, "at least one participant is required")
	}
	if err := errors.ValidateStableID(in.Reaction.ID); err != nil {
		return err
	}
	if in.Reaction.CompartmentID != "" {
		if err := errors.ValidateStableID(in.Reaction.CompartmentID); err != nil {
			return err
		}
	}
	for _, e := range in.Entities {
		if err := errors.ValidateStableID(e.ID); err != nil {
			return err
		}
		if e.CompartmentID != "" {
			if err := errors.ValidateStableID(e.CompartmentID); err != nil {
				return err
			}
		}
		for _, r := range e.Roles {
			if err := errors.ValidateStoichiometry(r.Stoichiometry); err != nil {
				return err
			}
		}
	}
	return nil
}

func accessionSet(reaction *model.Reaction, entities []*model.Entity) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(a string) {
		if a != "" && !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	add(reaction.CompartmentID)
	for _, e := range entities {
		add(e.CompartmentID)
	}
	return out
}

func descriptorNames(descs []CompartmentDescriptor) map[string]string {
	out := make(map[string]string, len(descs))
	for _, d := range descs {
		out[d.Accession] = d.DisplayName
	}
	return out
}

func buildCompartments(tree *onto.Tree, nameFn func(string) string, entities []*model.Entity, reaction *model.Reaction) map[string]*model.Compartment {
	compartments := make(map[string]*model.Compartment, len(tree.Nodes))
	for accession := range tree.Nodes {
		compartments[accession] = &model.Compartment{
			Accession: accession,
			Name:      nameFn(accession),
			ParentID:  tree.Parent[accession],
			ChildIDs:  append([]string(nil), tree.Children[accession]...),
		}
	}
	for _, e := range entities {
		if c, ok := compartments[e.CompartmentID]; ok {
			c.GlyphIDs = append(c.GlyphIDs, e.ID)
		}
	}
	if c, ok := compartments[reaction.CompartmentID]; ok {
		c.GlyphIDs = append(c.GlyphIDs, reaction.ID)
	}
	return compartments
}

// stripSentinel removes the extracellular sentinel from the emitted
// compartment collection when it is still the tree's root, reparenting
// its children to the top level, and returns the new logical root.
func stripSentinel(compartments map[string]*model.Compartment, root string) string {
	sentinel, ok := compartments[root]
	if !ok || sentinel.Accession != model.ExtracellularAccession {
		return root
	}
	for _, childID := range sentinel.ChildIDs {
		if child, ok := compartments[childID]; ok {
			child.ParentID = ""
		}
	}
	delete(compartments, root)
	if len(sentinel.ChildIDs) == 1 {
		return sentinel.ChildIDs[0]
	}
	return ""
}
