package classify

import (
	"github.com/julialegal/brujula/internal/model"
)

// Family-of-EU/Spanish-citizen gate. Requires BOTH the family-in-Spain flag
// and physical presence in Spain: family abroad routes through the
// outside-country branch instead, because the legal instruments differ by
// applicant location even for identical family ties. The tri-state family
// flag is checked against true, never coerced: unknown falls through.
func guardFamilyOfEU(in input) bool {
	return in.profile.FamilyInSpain() &&
		in.profile.FamilyNationality == model.FamilySpanishEU &&
		in.profile.InSpain()
}

func resolveFamilyOfEU(in input) (model.FlowCategory, []string) {
	relation := in.profile.FamilyRelation

	// Parent-child bonds carry different, usually stronger, eligibility
	// than partner bonds and must not be diluted by partner-oriented
	// candidates, so this sub-branch is evaluated first.
	if relation.ChildParentRelation() {
		return model.FlowFamilyOfEU, childParentFamilyLabels
	}

	if relation.PartnerRelation() {
		switch {
		case in.sig.Work && in.sig.Pending:
			return model.FlowFamilyOfEU, prepend(partnerFamilyLabels,
				"TRABAJAR CON RESIDENCIA DE FAMILIAR DE CIUDADANO DE LA UE EN TRÁMITE")
		case in.sig.NationalityIntent:
			return model.FlowFamilyOfEU, prepend(partnerFamilyLabels, marriageNationalityLabels...)
		default:
			return model.FlowFamilyOfEU, partnerFamilyLabels
		}
	}

	// Any other declared relation. The ascendant-oriented label set is the
	// safest default: it covers dependent parents and the generic family
	// instruments without diluting the partner or child sub-branches.
	return model.FlowFamilyOfEU, ascendantFamilyLabels
}
