package classify

import (
	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/signal"
)

// In-country branches. These fire only when the applicant is physically in
// Spain and neither the Spanish-nationality nor family-of-EU gates matched.

func guardHomologation(in input) bool {
	return in.profile.InSpain() && in.sig.Homologation
}

// Title recognition keeps the category of the applicant's current status;
// the procedure is orthogonal to the residency track.
func resolveHomologation(in input) (model.FlowCategory, []string) {
	return statusCategory(in.sig.Status), homologationLabels
}

func guardInvestor(in input) bool {
	return in.profile.InSpain() && in.sig.Investment
}

func resolveInvestor(in input) (model.FlowCategory, []string) {
	return statusCategory(in.sig.Status), investorLabels
}

func guardTourist(in input) bool {
	return in.profile.InSpain() && in.sig.Status.Tourist
}

func resolveTourist(in input) (model.FlowCategory, []string) {
	labels := touristLabels
	if in.sig.RemoteWork {
		labels = prepend(labels, "NÓMADA DIGITAL")
	}
	if in.sig.Exploratory {
		labels = prepend(labels, advisoryLabels...)
	}
	return model.FlowTouristInSpain, labels
}

func guardStudent(in input) bool {
	return in.profile.InSpain() && (in.sig.Status.Student || in.sig.StudyIntent)
}

// resolveStudent picks the most specific student sub-procedure detectable
// from the free text, falling back to the generic study set only when no
// specific sub-case matches. Defaulting to a generic candidate when a
// specific one is detectable would under-serve the user.
func resolveStudent(in input) (model.FlowCategory, []string) {
	folded := in.sig.Folded
	switch {
	case signal.ContainsAny(folded, signal.StudentFamilyKeywords):
		return model.FlowStudent, prepend(studentLabels, "MODIFICACIÓN DE FAMILIARES DE ESTUDIANTE")
	case signal.ContainsAny(folded, signal.SelfEmployedSwitchKeywords):
		return model.FlowStudent, prepend(studentLabels, "MODIFICAR DE ESTUDIOS A CUENTA PROPIA")
	case signal.ContainsAny(folded, signal.EmployedSwitchKeywords):
		return model.FlowStudent, prepend(studentLabels, "MODIFICAR DE ESTUDIOS A CUENTA AJENA")
	case signal.ContainsAny(folded, signal.PostStudiesKeywords):
		return model.FlowStudent, prepend(studentLabels, "DESPUÉS DE ESTUDIOS")
	case signal.ContainsAny(folded, signal.StudentDenialKeywords):
		return model.FlowStudent, prepend(studentLabels, "ERROR EN LA RESOLUCIÓN DE ESTUDIANTES")
	case signal.ContainsAny(folded, signal.StudyRenewalKeywords):
		return model.FlowStudent, prepend(studentLabels, "RENOVACIÓN DE ESTUDIOS")
	default:
		return model.FlowStudent, studentLabels
	}
}

func guardResident(in input) bool {
	return in.profile.InSpain() && in.sig.Status.Resident
}

// resolveResident assembles the resident candidate list in keyword-priority
// order; the generic resident set follows whatever was prioritized and the
// resolver's dedupe keeps first occurrences.
func resolveResident(in input) (model.FlowCategory, []string) {
	var labels []string

	if in.profile.FamilyInSpain() &&
		in.profile.FamilyNationality == model.FamilySpanishEU &&
		in.sig.Pending && in.sig.Work {
		labels = append(labels,
			"PUEDO TRABAJAR CON LA RESIDENCIA EN TRÁMITE",
			"TRABAJAR CON RESIDENCIA DE FAMILIAR DE CIUDADANO DE LA UE EN TRÁMITE")
	}

	if in.sig.Regroup || in.sig.HasGoal(in.profile, "family", "familiares") {
		labels = append(labels, "REAGRUPACIÓN FAMILIAR")
	}

	if in.sig.NationalityIntent {
		if in.sig.MarriageNationality {
			labels = append(labels, "NACIONALIDAD POR MATRIMONIO")
		}
		if in.sig.SurnameNationality {
			labels = append(labels, "NACIONALIDAD POR APELLIDOS")
		}
		if in.sig.MemoryLaw {
			labels = append(labels, memoryLawLabels...)
		}
		labels = append(labels, "NACIONALIDAD 2024")
	}

	if in.sig.Appeal {
		labels = append(labels, labelRecursoContencioso)
	}

	return model.FlowResident, append(labels, residentLabels...)
}

func guardArraigos(in input) bool {
	return in.profile.InSpain() &&
		(in.sig.Status.Irregular || in.sig.HasGoal(in.profile, "regularizar", "regularize"))
}

// resolveArraigos is the most rule-dense branch. The hard time gate is the
// single most legally load-bearing rule in the engine: social rootedness
// requires three years of presence and the labor/formative paths two, so a
// path is kept only when the representative years value strictly exceeds
// its configured minimum.
func (e *Engine) resolveArraigos(in input) (model.FlowCategory, []string) {
	labels := arraigoLabels
	years := in.sig.Years

	if years <= e.cfg.LaborRootMinYears {
		labels = without(labels, labelArraigoSocial, labelArraigoSociolaboral)
	} else if years <= e.cfg.SocialRootMinYears {
		labels = without(labels, labelArraigoSocial)
	}

	switch {
	case in.sig.LaborEvidence && years > e.cfg.LaborRootMinYears:
		// Provable labor relationship beats the generic order.
		labels = prepend(labels, labelArraigoSociolaboral)
	case years > e.cfg.LaborRootMinYears:
		// Absent labor proof, the formative path is the most reliably
		// achievable for a 2-3 year applicant.
		labels = prepend(labels, labelArraigoFormativo)
	}

	if in.sig.Appeal {
		labels = prepend(labels, labelRecursoContencioso)
	}

	return model.FlowArraigos, labels
}

func guardAsylum(in input) bool {
	return in.profile.InSpain() && in.sig.Status.Asylum
}

func resolveAsylum(input) (model.FlowCategory, []string) {
	return model.FlowAsylum, asylumLabels
}
