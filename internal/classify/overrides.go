package classify

import (
	"github.com/julialegal/brujula/internal/model"
)

// Administrative and shortcut rules. These sit above every substantive
// legal rule: a payment or scheduling request is not a legal question, and
// routing it into legal triage wastes the generative step and produces the
// wrong user-facing content.

func guardPayment(in input) bool {
	return in.sig.Payment
}

func resolvePayment(input) (model.FlowCategory, []string) {
	return model.FlowPayment, paymentLabels
}

func guardScheduling(in input) bool {
	return in.sig.Scheduling
}

func resolveScheduling(input) (model.FlowCategory, []string) {
	return model.FlowScheduling, schedulingLabels
}

// Civil-registry / genealogy requests (actas, partidas). The instruments
// are the same regardless of location; only the category reflects whether
// the applicant is abroad.
func guardRegistry(in input) bool {
	return in.sig.Registry
}

func resolveRegistry(in input) (model.FlowCategory, []string) {
	if !in.profile.InSpain() {
		return model.FlowOutsideSpain, registryLabels
	}
	return model.FlowActas, registryLabels
}

// "Can I work while my family-based residency is pending."
func guardWorkPending(in input) bool {
	return in.sig.Pending && in.sig.Work
}

func resolveWorkPending(in input) (model.FlowCategory, []string) {
	if in.sig.Status.Resident {
		return model.FlowResident, workPendingLabels
	}
	return model.FlowWorkPending, workPendingLabels
}

// Advisory shortcut: fixed markers, or an exploratory profile whose status
// grounds no legal track. When the signal extractor cannot ground a track,
// routing to a human-advisory template is safer than guessing.
func guardAdvisory(in input) bool {
	if in.sig.AdvisoryMarker {
		return true
	}
	s := in.sig.Status
	hasTrack := s.Irregular || s.Student || s.Resident || s.Tourist || s.Asylum
	return in.sig.Exploratory && !hasTrack
}

func resolveAdvisory(input) (model.FlowCategory, []string) {
	return model.FlowAdvisory, advisoryLabels
}

// Nationality gate: Spanish citizens have no immigration track; only the
// citizen-ID renewal class applies, whatever else the profile says.
func guardSpanish(in input) bool {
	return in.sig.SpanishNational
}

func resolveSpanish(input) (model.FlowCategory, []string) {
	return model.FlowSpanish, spanishLabels
}
