// Package classify implements the pre-classification engine: a
// priority-ordered decision list that maps an intake profile onto a flow
// category and an ordered list of candidate template keys.
package classify

import (
	"log/slog"

	"github.com/julialegal/brujula/internal/catalog"
	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/signal"
)

// Config holds the engine's tunable thresholds.
//
// The rootedness time gate compares the representative years value from
// signal.TimeToYears strictly against these minimums: a path is only kept
// when years exceeds its minimum. The defaults sit just under the legal 2
// and 3 year requirements so that the 2.5 and 3.5 bucket representatives
// clear them while lower buckets do not.
type Config struct {
	LaborRootMinYears  float64
	SocialRootMinYears float64
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		LaborRootMinYears:  1.9,
		SocialRootMinYears: 2.9,
	}
}

// Engine is the classification engine. It is stateless apart from the
// injected read-only catalog, so one instance may serve concurrent callers.
type Engine struct {
	catalog *catalog.Catalog
	cfg     Config
	rules   []rule
}

// input carries a profile and its extracted signals through the rule list.
type input struct {
	profile *model.Profile
	sig     signal.Signals
}

// rule is one entry of the decision list: a guard and the branch resolution
// that runs when the guard is the first to match.
type rule struct {
	name    string
	guard   func(in input) bool
	resolve func(in input) (model.FlowCategory, []string)
}

// New creates an engine with the default configuration.
func New(cat *catalog.Catalog) *Engine {
	return NewWithConfig(cat, DefaultConfig())
}

// NewWithConfig creates an engine with a custom configuration.
func NewWithConfig(cat *catalog.Catalog, cfg Config) *Engine {
	e := &Engine{catalog: cat, cfg: cfg}
	e.rules = e.buildRules()
	return e
}

// buildRules assembles the priority-ordered decision list. Order is the
// rule semantics: evaluation is top to bottom, first matching guard wins,
// no backtracking and no rule combination. Administrative intents come
// before every substantive legal rule because they are not legal questions;
// the terminal entry always matches.
func (e *Engine) buildRules() []rule {
	return []rule{
		{name: "payment_override", guard: guardPayment, resolve: resolvePayment},
		{name: "scheduling_override", guard: guardScheduling, resolve: resolveScheduling},
		{name: "civil_registry", guard: guardRegistry, resolve: resolveRegistry},
		{name: "work_while_pending", guard: guardWorkPending, resolve: resolveWorkPending},
		{name: "advisory_shortcut", guard: guardAdvisory, resolve: resolveAdvisory},
		{name: "spanish_nationality", guard: guardSpanish, resolve: resolveSpanish},
		{name: "family_of_eu", guard: guardFamilyOfEU, resolve: resolveFamilyOfEU},
		{name: "homologation", guard: guardHomologation, resolve: resolveHomologation},
		{name: "investor_in_spain", guard: guardInvestor, resolve: resolveInvestor},
		{name: "tourist_in_spain", guard: guardTourist, resolve: resolveTourist},
		{name: "student", guard: guardStudent, resolve: resolveStudent},
		{name: "resident", guard: guardResident, resolve: resolveResident},
		{name: "arraigos", guard: guardArraigos, resolve: e.resolveArraigos},
		{name: "asylum", guard: guardAsylum, resolve: resolveAsylum},
		{name: "outside_spain", guard: guardOutside, resolve: resolveOutside},
		{name: "default_unmatched", guard: guardAlways, resolve: e.resolveDefault},
	}
}

// Classify runs the decision list over a profile. It never fails: missing
// or malformed profile data falls through to the most conservative matching
// branch, and the terminal rule returns the full catalog under GENERIC when
// nothing else matches. The result is built fresh on every call and every
// candidate key is guaranteed to exist in the catalog.
func (e *Engine) Classify(p *model.Profile) model.Classification {
	if p == nil {
		p = &model.Profile{}
	}
	in := input{profile: p, sig: signal.Extract(p)}

	for _, r := range e.rules {
		if !r.guard(in) {
			continue
		}
		category, labels := r.resolve(in)
		keys := e.catalog.Resolve(labels)
		slog.Debug("classification rule matched",
			"rule", r.name,
			"category", category,
			"candidates", len(keys))
		return model.Classification{
			FlowCategory:       category,
			CandidateTemplates: keys,
		}
	}

	// Unreachable: default_unmatched always matches.
	return model.Classification{
		FlowCategory:       model.FlowGeneric,
		CandidateTemplates: e.catalog.Keys(),
	}
}

func guardAlways(input) bool { return true }

// resolveDefault is the explicit terminal branch: maximum recall, signaling
// that the profile needs human triage rather than a narrowed track.
func (e *Engine) resolveDefault(input) (model.FlowCategory, []string) {
	return model.FlowGeneric, e.catalog.Keys()
}

// statusCategory maps normalized status flags to the category a
// status-neutral rule (homologation, in-country investor) should keep.
func statusCategory(s signal.StatusFlags) model.FlowCategory {
	switch {
	case s.Resident:
		return model.FlowResident
	case s.Student:
		return model.FlowStudent
	case s.Tourist:
		return model.FlowTouristInSpain
	case s.Irregular:
		return model.FlowArraigos
	case s.Asylum:
		return model.FlowAsylum
	default:
		return model.FlowGeneric
	}
}

// prepend puts extra labels at the front of a branch's candidate list.
// Duplicates are fine here; the resolver deduplicates keeping first
// occurrence, which is exactly the reprioritization the branches want.
func prepend(labels []string, front ...string) []string {
	out := make([]string, 0, len(front)+len(labels))
	out = append(out, front...)
	return append(out, labels...)
}

// without filters a label from a candidate list.
func without(labels []string, drop ...string) []string {
	dropSet := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		dropSet[d] = struct{}{}
	}
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, skip := dropSet[l]; skip {
			continue
		}
		out = append(out, l)
	}
	return out
}
