package expand

import (
	"context"

	"github.com/julialegal/brujula/internal/model"
)

// MockExpander is a deterministic Expander for tests and dry runs. It never
// calls out: a classification with candidates yields a VIABLE analysis
// assigning the first candidate, an empty one yields REVISION_MANUAL.
type MockExpander struct {
	// Err, when set, is returned from every Analyze call.
	Err error
}

func (m *MockExpander) Analyze(_ context.Context, _ *model.Profile, cls model.Classification) (*model.Analysis, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	if len(cls.CandidateTemplates) == 0 {
		return adapt(strictResult{
			Verdict:            model.VerdictManualReview,
			Summary:            "Sin candidatos tras la preclasificación.",
			AssignedTemplate:   NoTemplate,
			MissingInfoWarning: "Perfil sin vía identificable, requiere revisión humana.",
		}), nil
	}

	return adapt(strictResult{
		Verdict:          model.VerdictViable,
		Summary:          "Revisión simulada: se asigna el primer candidato.",
		AssignedTemplate: cls.CandidateTemplates[0],
	}), nil
}

func (m *MockExpander) Close() error { return nil }
