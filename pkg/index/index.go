// Package index provides a read-only partition of a reaction's entities
// by role, used by grid placement and connector routing. It performs no
// mutation and holds no state beyond the partition itself.
package index

import "github.com/reactome-tools/reaction-layout/pkg/model"

// Index partitions entities by the role type they carry. An entity with
// multiple roles appears in more than one bucket, once per role.
type Index struct {
	Inputs             []*model.Entity
	Outputs            []*model.Entity
	Catalysts          []*model.Entity
	PositiveRegulators []*model.Entity
	NegativeRegulators []*model.Entity

	byID map[string]*model.Entity
}

// Build partitions entities, which must already have passed through
// duplicate.Split so no entity carries an incompatible role combination.
func Build(entities []*model.Entity) *Index {
	idx := &Index{byID: make(map[string]*model.Entity, len(entities))}
	for _, e := range entities {
		idx.byID[e.ID] = e
		for _, r := range e.Roles {
			switch r.Type {
			case model.Input:
				idx.Inputs = append(idx.Inputs, e)
			case model.Output:
				idx.Outputs = append(idx.Outputs, e)
			case model.Catalyst:
				idx.Catalysts = append(idx.Catalysts, e)
			case model.PositiveRegulator:
				idx.PositiveRegulators = append(idx.PositiveRegulators, e)
			case model.NegativeRegulator:
				idx.NegativeRegulators = append(idx.NegativeRegulators, e)
			}
		}
	}
	return idx
}

// ByID looks an entity up by its stable identifier.
func (idx *Index) ByID(id string) (*model.Entity, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// Regulators returns positive and negative regulators combined, in a
// stable order (positive first) for callers that treat them uniformly
// except for pointer type.
func (idx *Index) Regulators() []*model.Entity {
	out := make([]*model.Entity, 0, len(idx.PositiveRegulators)+len(idx.NegativeRegulators))
	out = append(out, idx.PositiveRegulators...)
	out = append(out, idx.NegativeRegulators...)
	return out
}
