// Package duplicate implements the entity-duplication pass: splitting
// entities whose role set mixes incompatible role types into separate
// glyphs, each with a single geometric position.
package duplicate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

// idNamespace scopes the deterministic IDs minted for split-off role
// copies, so two different consumers hashing "<source>#<role>" strings
// into UUIDs never collide.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("reaction-layout/pkg/duplicate"))

// Split splits every entity in entities whose role-type set is one of
//
//	{INPUT, OUTPUT}
//	{CATALYST, POSITIVE_REGULATOR}
//	{CATALYST, NEGATIVE_REGULATOR}
//	{CATALYST, POSITIVE_REGULATOR, NEGATIVE_REGULATOR}
//
// into two glyphs with disjoint role sets, and passes every other entity
// through unchanged. It is idempotent: running Split on its own output
// returns the input slice unchanged in content (new copies are only
// produced from mixed role sets, and a split entity never has a mixed
// role set again).
func Split(entities []*model.Entity) []*model.Entity {
	out := make([]*model.Entity, 0, len(entities))
	for _, e := range entities {
		out = append(out, split(e)...)
	}
	return out
}

func split(e *model.Entity) []*model.Entity {
	roles := e.RoleTypes()

	switch {
	case len(roles) == 2 && roles[model.Input] && roles[model.Output]:
		return splitOff(e, model.Input)

	case len(roles) == 2 && roles[model.Catalyst] && roles[model.PositiveRegulator]:
		return splitOff(e, model.Catalyst)

	case len(roles) == 2 && roles[model.Catalyst] && roles[model.NegativeRegulator]:
		return splitOff(e, model.Catalyst)

	case len(roles) == 3 && roles[model.Catalyst] && roles[model.PositiveRegulator] && roles[model.NegativeRegulator]:
		return splitOff(e, model.Catalyst)
	}
	return []*model.Entity{e}
}

// splitOff peels the role of the given type off e into a new copy in the
// same compartment, leaving the remaining roles on e.
func splitOff(e *model.Entity, peel model.RoleType) []*model.Entity {
	var peeled, kept []model.Role
	for _, r := range e.Roles {
		if r.Type == peel {
			peeled = append(peeled, r)
		} else {
			kept = append(kept, r)
		}
	}

	splitID := uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s#%s", e.SourceID(), peel))).String()
	copyEntity := &model.Entity{
		ID:            splitID,
		Name:          e.Name,
		Class:         e.Class,
		Roles:         peeled,
		Flags:         e.Flags,
		Attachments:   append([]model.Attachment(nil), e.Attachments...),
		CompartmentID: e.CompartmentID,
	}
	copyEntity.SetSourceID(e.SourceID())

	e.Roles = kept
	return []*model.Entity{e, copyEntity}
}
