// Package model defines the data types that flow through the layout
// engine: reactions, entities, roles, compartments and their connectors.
//
// Types here are held exclusively by a single [github.com/reactome-tools/reaction-layout/pkg/layout.Layout]
// for the duration of one compute; nothing in this package performs I/O
// or owns goroutines.
package model

import "github.com/reactome-tools/reaction-layout/pkg/geom"

// RoleType is the function an entity plays in a reaction.
type RoleType int

const (
	Input RoleType = iota
	Output
	Catalyst
	PositiveRegulator
	NegativeRegulator
)

func (t RoleType) String() string {
	switch t {
	case Input:
		return "INPUT"
	case Output:
		return "OUTPUT"
	case Catalyst:
		return "CATALYST"
	case PositiveRegulator:
		return "POSITIVE_REGULATOR"
	case NegativeRegulator:
		return "NEGATIVE_REGULATOR"
	default:
		return "UNKNOWN"
	}
}

// Role pairs a role type with the stoichiometric count the entity
// participates with. Stoichiometry must be >= 1; a value below that is
// rejected at ingestion.
type Role struct {
	Type          RoleType
	Stoichiometry int
}

// RenderableClass is the glyph shape family used to size an entity and,
// for tile sort order, to prioritize within a cell.
type RenderableClass int

const (
	ClassProtein RenderableClass = iota
	ClassComplex
	ClassChemical
	ClassSet
	ClassGene
	ClassEntity
	ClassRNA
	ClassEncapsulatedNode
	ClassProcessNode
	ClassAttachment
)

// classPreference gives the fixed tile sort order: process-node,
// encapsulated-node, complex, entity-set, protein, RNA, chemical, gene,
// entity.
var classPreference = map[RenderableClass]int{
	ClassProcessNode:      0,
	ClassEncapsulatedNode: 1,
	ClassComplex:          2,
	ClassSet:              3,
	ClassProtein:          4,
	ClassRNA:              5,
	ClassChemical:         6,
	ClassGene:             7,
	ClassEntity:           8,
	ClassAttachment:       9,
}

// SortPreference returns the fixed tile-ordering rank for the class; lower
// sorts first.
func (c RenderableClass) SortPreference() int {
	if p, ok := classPreference[c]; ok {
		return p
	}
	return len(classPreference)
}

// defaultSizes gives the fallback (width, height) for a renderable class
// when the caller has not supplied an explicit size, following the
// per-class minimums used elsewhere in the Reactome diagram tooling.
var defaultSizes = map[RenderableClass][2]float64{
	ClassProtein:          {60, 30},
	ClassComplex:          {80, 40},
	ClassChemical:         {40, 40},
	ClassSet:              {80, 40},
	ClassGene:             {80, 20},
	ClassEntity:           {60, 30},
	ClassRNA:              {80, 20},
	ClassEncapsulatedNode: {100, 60},
	ClassProcessNode:      {100, 60},
	ClassAttachment:       {20, 20},
}

// DefaultSize returns the class's default glyph size.
func DefaultSize(c RenderableClass) (w, h float64) {
	if s, ok := defaultSizes[c]; ok {
		return s[0], s[1]
	}
	return 60, 30
}

// ShapeClass distinguishes the reaction glyph shapes. The layout reserves
// the same box and backbone for every shape; the class is carried through
// for the renderer.
type ShapeClass int

const (
	ShapeTransition ShapeClass = iota
	ShapeBinding
	ShapeDissociation
	ShapeOmitted
	ShapeUncertain
)

// BackboneHalfLength returns the reaction's backbone half-length: a
// fixed 20 regardless of shape class, matching the fixed port offset
// used for every input/output connector.
func BackboneHalfLength(ShapeClass) float64 {
	return 20
}

// ReactionSize returns the reaction glyph's footprint. The shape class
// only changes the shape drawn by a renderer, not the box the layout
// reserves for it or the backbone half-length.
func ReactionSize(ShapeClass) (w, h float64) { return 100, 60 }

// PointerType is the arrowhead/terminator drawn at a connector's
// reaction-side end.
type PointerType int

const (
	PointerInput PointerType = iota
	PointerOutput
	PointerCatalyst
	PointerActivator
	PointerInhibitor
)

// Attachment is a translational modification glyph carried by an entity.
type Attachment struct {
	ID       string
	Label    string
	Position geom.Position
}

// StoichiometryBadge is the small labeled box drawn next to a connector
// when an entity's stoichiometry is not 1.
type StoichiometryBadge struct {
	Position geom.Position
	Count    int
}

// Connector is the segmented path from one entity to the reaction.
type Connector struct {
	Segments    []geom.Segment
	Pointer     PointerType
	Stoichiometry *StoichiometryBadge
}

// Flags holds the boolean rendering modifiers attached to an entity.
type Flags struct {
	Trivial bool
	Crossed bool
	Dashed  bool
	Drug    bool
	Disease bool
}

// Entity is a physical-entity glyph participating in the reaction.
type Entity struct {
	ID               string
	Name             string
	Class            RenderableClass
	Roles            []Role
	Flags            Flags
	Attachments      []Attachment
	CompartmentID    string
	Position         geom.Position
	Connector        *Connector

	// sourceID links a duplicated copy back to the entity it was split
	// from, for idempotency checks; empty for entities that were never
	// duplicated.
	sourceID string
}

// SourceID returns the ID of the entity this one was split from, or its
// own ID if it was never duplicated.
func (e *Entity) SourceID() string {
	if e.sourceID != "" {
		return e.sourceID
	}
	return e.ID
}

// SetSourceID records the origin entity ID for a duplicated copy.
func (e *Entity) SetSourceID(id string) { e.sourceID = id }

// RoleTypes returns the distinct set of role types the entity carries.
func (e *Entity) RoleTypes() map[RoleType]bool {
	set := make(map[RoleType]bool, len(e.Roles))
	for _, r := range e.Roles {
		set[r.Type] = true
	}
	return set
}

// HasRole reports whether the entity carries the given role type.
func (e *Entity) HasRole(t RoleType) bool {
	for _, r := range e.Roles {
		if r.Type == t {
			return true
		}
	}
	return false
}

// RoleOfType returns the Role of the given type, if present.
func (e *Entity) RoleOfType(t RoleType) (Role, bool) {
	for _, r := range e.Roles {
		if r.Type == t {
			return r, true
		}
	}
	return Role{}, false
}

// Size returns the entity's glyph size, falling back to the class
// default when the entity has no explicit Position dimensions yet.
func (e *Entity) Size() (w, h float64) {
	if e.Position.W > 0 && e.Position.H > 0 {
		return e.Position.W, e.Position.H
	}
	return DefaultSize(e.Class)
}

// Reaction is the central glyph every entity connects to.
type Reaction struct {
	ID            string
	Name          string
	CompartmentID string
	Shape         ShapeClass
	Position      geom.Position
	Segments      []geom.Segment // backbone: two horizontal segments
}

// LeftPort returns the point on the reaction's left backbone where input
// connectors terminate: the outer end of the backbone segment drawn by
// backbone(), BackboneHalfLength to the left of the glyph for every shape.
func (r *Reaction) LeftPort() geom.Coordinate {
	return geom.Coordinate{X: r.Position.X - BackboneHalfLength(r.Shape), Y: r.Position.CenterY()}
}

// RightPort returns the point on the reaction's right backbone where
// output connectors terminate.
func (r *Reaction) RightPort() geom.Coordinate {
	return geom.Coordinate{X: r.Position.Right() + BackboneHalfLength(r.Shape), Y: r.Position.CenterY()}
}

// Compartment is a named cellular-component region containing entities,
// possibly the reaction, and child compartments.
type Compartment struct {
	Accession    string
	Name         string
	ParentID     string
	ChildIDs     []string
	GlyphIDs     []string // entity IDs and, at most once, the reaction ID
	Position     geom.Position
	LabelPosition geom.Coordinate
}

// ExtracellularAccession is the sentinel root compartment used during
// computation and stripped from the emitted set.
const ExtracellularAccession = "GO:0005576"
