package expand

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/testutil"
)

func TestMockExpanderAssignsFirstCandidate(t *testing.T) {
	mock := &MockExpander{}
	cls := model.Classification{
		FlowCategory:       model.FlowArraigos,
		CandidateTemplates: []string{"ARRAIGO SOCIOFORMATIVO", "ARRAIGO FAMILIAR"},
	}

	analysis, err := mock.Analyze(context.Background(), testutil.MakeProfile(nil), cls)
	require.NoError(t, err)
	assert.Equal(t, model.VerdictViable, analysis.Verdict)
	assert.Equal(t, model.ActionGatherDocuments, analysis.NextStepAction)
	require.Len(t, analysis.Recommendations, 1)
	assert.Equal(t, "ARRAIGO SOCIOFORMATIVO", analysis.Recommendations[0].TemplateKey)
}

func TestMockExpanderEmptyCandidatesIsManualReview(t *testing.T) {
	mock := &MockExpander{}

	analysis, err := mock.Analyze(context.Background(), testutil.MakeProfile(nil), model.Classification{})
	require.NoError(t, err)
	assert.Equal(t, model.VerdictManualReview, analysis.Verdict)
	assert.Equal(t, model.ActionScheduleConsultation, analysis.NextStepAction)
	assert.Empty(t, analysis.Recommendations)
	assert.NotEmpty(t, analysis.CriticalAdvice)
}

func TestMockExpanderPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := &MockExpander{Err: wantErr}

	_, err := mock.Analyze(context.Background(), nil, model.Classification{})
	assert.ErrorIs(t, err, wantErr)
}

func TestParseStrict(t *testing.T) {
	allowed := []string{"ARRAIGO SOCIAL", "ARRAIGO FAMILIAR"}

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{
			name: "valid viable",
			raw:  `{"verdict":"VIABLE","summary":"ok","assignedTemplate":"ARRAIGO SOCIAL"}`,
		},
		{
			name: "markdown fenced",
			raw:  "```json\n{\"verdict\":\"NO_VIABLE\",\"rejectionReason\":\"tiempo insuficiente\",\"assignedTemplate\":\"NINGUNA\"}\n```",
		},
		{
			name: "assigned template case insensitive",
			raw:  `{"verdict":"VIABLE","assignedTemplate":"arraigo familiar"}`,
		},
		{
			name: "empty assignment",
			raw:  `{"verdict":"REVISION_MANUAL","missingInfoWarning":"faltan datos"}`,
		},
		{
			name:    "unknown verdict",
			raw:     `{"verdict":"QUIZAS"}`,
			wantErr: "unknown verdict",
		},
		{
			name:    "template outside allowed set",
			raw:     `{"verdict":"VIABLE","assignedTemplate":"ASILO"}`,
			wantErr: "not among",
		},
		{
			name:    "not json",
			raw:     "lo siento, no puedo",
			wantErr: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseStrict(tt.raw, allowed)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, result.Verdict)
		})
	}
}

func TestAdaptNotViable(t *testing.T) {
	analysis := adapt(strictResult{
		Verdict:         model.VerdictNotViable,
		RejectionReason: "No cumple el tiempo mínimo de permanencia.",
		Summary:         "Perfil irregular con menos de dos años.",
	})

	assert.Equal(t, model.VerdictNotViable, analysis.Verdict)
	assert.Empty(t, analysis.Recommendations)
	assert.Equal(t, "No cumple el tiempo mínimo de permanencia.", analysis.CriticalAdvice)
	assert.Equal(t, model.ActionScheduleConsultation, analysis.NextStepAction)
	assert.Equal(t, analysis.Summary, analysis.ActionReasoning)
}

func TestAdaptManualReviewFallsBackToWarning(t *testing.T) {
	analysis := adapt(strictResult{
		Verdict:            model.VerdictManualReview,
		MissingInfoWarning: "Falta prueba del vínculo familiar.",
	})

	assert.Equal(t, "Falta prueba del vínculo familiar.", analysis.CriticalAdvice)
	assert.Equal(t, "Falta prueba del vínculo familiar.", analysis.MissingInfoWarning)
	assert.Empty(t, analysis.Recommendations)
}

func TestAdaptViableWithoutTemplateHasNoRecommendations(t *testing.T) {
	analysis := adapt(strictResult{
		Verdict:          model.VerdictViable,
		AssignedTemplate: NoTemplate,
	})

	assert.Equal(t, model.ActionGatherDocuments, analysis.NextStepAction)
	assert.Empty(t, analysis.Recommendations)
}

func TestBuildPrompt(t *testing.T) {
	p := testutil.MakeProfile(func(p *model.Profile) {
		p.FirstName = "Carolina"
		p.Comments = "quiero regularizar mi situación"
	})
	allowed := []string{"ARRAIGO SOCIOFORMATIVO", "ARRAIGO FAMILIAR"}

	prompt, err := buildPrompt(p, allowed)
	require.NoError(t, err)

	assert.Contains(t, prompt, "JUEZ DE ADMISIÓN")
	assert.Contains(t, prompt, `"Carolina"`)
	assert.Contains(t, prompt, "ARRAIGO SOCIOFORMATIVO, ARRAIGO FAMILIAR")
	assert.Contains(t, prompt, "NO_VIABLE")
	// The verdict schema the parser expects.
	for _, key := range []string{"verdict", "rejectionReason", "summary", "assignedTemplate", "missingInfoWarning"} {
		assert.True(t, strings.Contains(prompt, key), "prompt missing JSON key %q", key)
	}
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`  {"a":1}  `))
}
