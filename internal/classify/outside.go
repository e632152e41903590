package classify

import (
	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/signal"
)

// Unknown location is NOT treated as abroad: it falls through to the
// terminal full-catalog branch instead.
func guardOutside(in input) bool {
	return in.profile.LocationStatus == model.LocationOrigin
}

// resolveOutside assembles candidates additively rather than first-match:
// an applicant abroad commonly has several simultaneous goals ("study now,
// bring family later"), so each independent goal/signal appends its own key
// subset in a fixed precedence order. The resolver deduplicates.
func resolveOutside(in input) (model.FlowCategory, []string) {
	p, sig := in.profile, in.sig

	// From origin, training language ("admisión a un máster", "preinscripción
	// a un FP") implies a study visa even without a declared study goal.
	goalStudy := sig.StudyIntent || sig.Training ||
		signal.ContainsAny(sig.Folded, signal.StudyIntentKeywords)
	goalWork := sig.HasGoal(p, "reside_work", "regularizar", "trabajar")
	goalFamily := sig.HasGoal(p, "family", "familiares") || p.FamilyInSpain()
	goalNationality := sig.NationalityIntent
	goalEntry := sig.TouristEntry || sig.HasGoal(p, "entrada")

	var labels []string

	if goalStudy {
		labels = append(labels, "ESTUDIAR EN ESPAÑA")
	}

	if goalWork || sig.RemoteWork || sig.Investment || sig.HighlyQualified || sig.Entrepreneur {
		labels = append(labels, "EMIGRAR SIN PASAPORTE EUROPEO")
		if sig.RemoteWork {
			labels = append(labels, "NÓMADA DIGITAL")
		}
		if sig.Investment {
			labels = append(labels, "RESIDENCIA PARA INVERSORES")
		}
		if sig.HighlyQualified {
			labels = append(labels, "RESIDENCIA PARA PROFESIONAL ALTAMENTE CUALIFICADO")
		}
		if sig.Entrepreneur {
			labels = append(labels, "EMPRENDER EN ESPAÑA")
		}
		if goalWork {
			labels = append(labels, outsideWorkLabels...)
		}
	}

	if goalFamily {
		if sig.Ascendant {
			// Dependent-ascendant bond leads the family subset.
			labels = append(labels, "ESTAR A CARGO")
		}
		labels = append(labels, outsideFamilyLabels...)
	}

	if goalNationality {
		if sig.MemoryLaw {
			labels = append(labels, memoryLawLabels...)
		}
		labels = append(labels, outsideNationalityLabels...)
	}

	if goalEntry {
		labels = append(labels, "ENTRAR COMO TURISTA")
	}

	if len(labels) == 0 {
		labels = outsideFallbackLabels
	}

	return model.FlowOutsideSpain, labels
}
