// Package expand turns a classification into a reviewed viability analysis.
// The engine narrows the catalog; this package hands the narrowed candidate
// set to a generative reviewer that applies strict discard logic and returns
// a binary verdict.
package expand

import (
	"context"
	"fmt"
	"strings"

	"github.com/julialegal/brujula/internal/model"
)

// Expander reviews a classified profile and produces an analysis.
type Expander interface {
	Analyze(ctx context.Context, profile *model.Profile, cls model.Classification) (*model.Analysis, error)
	Close() error
}

// NoTemplate is the reviewer's explicit "no candidate applies" assignment.
const NoTemplate = "NINGUNA"

// strictResult is the raw reviewer output before adaptation. The verdict is
// binary on purpose; downstream consumers read the adapted structure.
type strictResult struct {
	Verdict            model.Verdict `json:"verdict"`
	RejectionReason    string        `json:"rejectionReason"`
	Summary            string        `json:"summary"`
	AssignedTemplate   string        `json:"assignedTemplate"`
	MissingInfoWarning string        `json:"missingInfoWarning"`
}

func (r strictResult) validate(allowed []string) error {
	switch r.Verdict {
	case model.VerdictViable, model.VerdictNotViable, model.VerdictManualReview:
	default:
		return fmt.Errorf("unknown verdict %q", r.Verdict)
	}
	if r.AssignedTemplate == "" || r.AssignedTemplate == NoTemplate {
		return nil
	}
	for _, key := range allowed {
		if strings.EqualFold(key, r.AssignedTemplate) {
			return nil
		}
	}
	return fmt.Errorf("assigned template %q is not among the %d allowed candidates", r.AssignedTemplate, len(allowed))
}

// adapt maps the strict verdict onto the recommendation structure that
// delivery consumers already read. NO_VIABLE yields an empty recommendation
// list and carries the rejection reason as critical advice.
func adapt(r strictResult) *model.Analysis {
	advice := strings.TrimSpace(r.RejectionReason)
	if advice == "" {
		advice = strings.TrimSpace(r.MissingInfoWarning)
	}

	a := &model.Analysis{
		Summary:            r.Summary,
		Verdict:            r.Verdict,
		CriticalAdvice:     advice,
		MissingInfoWarning: r.MissingInfoWarning,
		ActionReasoning:    r.Summary,
		NextStepAction:     model.ActionScheduleConsultation,
	}
	if r.Verdict == model.VerdictViable {
		a.NextStepAction = model.ActionGatherDocuments
		if r.AssignedTemplate != "" && r.AssignedTemplate != NoTemplate {
			a.Recommendations = []model.Recommendation{{
				Title:       r.AssignedTemplate,
				Description: "Cumple con los requisitos establecidos.",
				Probability: "Alta",
				TemplateKey: r.AssignedTemplate,
			}}
		}
	}
	return a
}
