package layout

import (
	"encoding/json"
	"io"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

// jsonRole is the wire form of model.Role.
type jsonRole struct {
	Type          string `json:"type"`
	Stoichiometry int    `json:"stoichiometry"`
}

// jsonEntity is the wire form of model.Entity accepted by ReadInput.
type jsonEntity struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Class         string     `json:"class"`
	CompartmentID string     `json:"compartment_id"`
	Roles         []jsonRole `json:"roles"`
	Trivial       bool       `json:"trivial,omitempty"`
	Crossed       bool       `json:"crossed,omitempty"`
	Dashed        bool       `json:"dashed,omitempty"`
	Drug          bool       `json:"drug,omitempty"`
	Disease       bool       `json:"disease,omitempty"`
}

type jsonReaction struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CompartmentID string `json:"compartment_id,omitempty"`
	Shape         string `json:"shape"`
}

type jsonCompartment struct {
	Accession string `json:"accession"`
	Name      string `json:"name"`
}

type jsonInput struct {
	Reaction     jsonReaction      `json:"reaction"`
	Entities     []jsonEntity      `json:"entities"`
	Compartments []jsonCompartment `json:"compartments"`
}

var classFromString = map[string]model.RenderableClass{
	"protein":           model.ClassProtein,
	"complex":           model.ClassComplex,
	"chemical":          model.ClassChemical,
	"set":               model.ClassSet,
	"gene":              model.ClassGene,
	"entity":            model.ClassEntity,
	"rna":               model.ClassRNA,
	"encapsulated_node": model.ClassEncapsulatedNode,
	"process_node":      model.ClassProcessNode,
	"attachment":        model.ClassAttachment,
}

var roleFromString = map[string]model.RoleType{
	"INPUT":              model.Input,
	"OUTPUT":             model.Output,
	"CATALYST":           model.Catalyst,
	"POSITIVE_REGULATOR": model.PositiveRegulator,
	"NEGATIVE_REGULATOR": model.NegativeRegulator,
}

var shapeFromString = map[string]model.ShapeClass{
	"transition":   model.ShapeTransition,
	"binding":      model.ShapeBinding,
	"dissociation": model.ShapeDissociation,
	"omitted":      model.ShapeOmitted,
	"uncertain":    model.ShapeUncertain,
}

// ReadInput decodes a JSON-encoded Input from r.
func ReadInput(r io.Reader) (*Input, error) {
	var raw jsonInput
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	in := &Input{
		Reaction: &model.Reaction{
			ID:            raw.Reaction.ID,
			Name:          raw.Reaction.Name,
			CompartmentID: raw.Reaction.CompartmentID,
			Shape:         shapeFromString[raw.Reaction.Shape],
		},
	}
	for _, c := range raw.Compartments {
		in.Compartments = append(in.Compartments, CompartmentDescriptor{Accession: c.Accession, DisplayName: c.Name})
	}
	for _, e := range raw.Entities {
		entity := &model.Entity{
			ID:            e.ID,
			Name:          e.Name,
			Class:         classFromString[e.Class],
			CompartmentID: e.CompartmentID,
			Flags: model.Flags{
				Trivial: e.Trivial,
				Crossed: e.Crossed,
				Dashed:  e.Dashed,
				Drug:    e.Drug,
				Disease: e.Disease,
			},
		}
		for _, r := range e.Roles {
			entity.Roles = append(entity.Roles, model.Role{Type: roleFromString[r.Type], Stoichiometry: r.Stoichiometry})
		}
		in.Entities = append(in.Entities, entity)
	}
	return in, nil
}

// jsonOutEntity is the wire form of a finalized model.Entity.
type jsonOutEntity struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CompartmentID string  `json:"compartment_id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	W             float64 `json:"w"`
	H             float64 `json:"h"`
}

type jsonOutCompartment struct {
	Accession string   `json:"accession"`
	Name      string   `json:"name"`
	ParentID  string   `json:"parent_id,omitempty"`
	ChildIDs  []string `json:"child_ids,omitempty"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	W         float64  `json:"w"`
	H         float64  `json:"h"`
}

type jsonOutput struct {
	ReactionID string               `json:"reaction_id"`
	Root       string               `json:"root"`
	Width      float64              `json:"width"`
	Height     float64              `json:"height"`
	Entities   []jsonOutEntity      `json:"entities"`
	Compartments []jsonOutCompartment `json:"compartments"`
}

// WriteLayout encodes l as JSON to w.
func WriteLayout(l *Layout, w io.Writer) error {
	out := jsonOutput{
		ReactionID: l.Reaction.ID,
		Root:       l.Root,
		Width:      l.Position.W,
		Height:     l.Position.H,
	}
	for _, e := range l.Entities {
		out.Entities = append(out.Entities, jsonOutEntity{
			ID: e.ID, Name: e.Name, CompartmentID: e.CompartmentID,
			X: e.Position.X, Y: e.Position.Y, W: e.Position.W, H: e.Position.H,
		})
	}
	for _, c := range l.Compartments {
		out.Compartments = append(out.Compartments, jsonOutCompartment{
			Accession: c.Accession, Name: c.Name, ParentID: c.ParentID, ChildIDs: c.ChildIDs,
			X: c.Position.X, Y: c.Position.Y, W: c.Position.W, H: c.Position.H,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
