package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julialegal/brujula/internal/classify"
	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/testutil"
)

func stepByID(t *testing.T, steps []step, id string) step {
	t.Helper()
	for _, s := range steps {
		if s.id == id {
			return s
		}
	}
	t.Fatalf("step %q not found", id)
	return step{}
}

func TestBuildStepsSkipLogic(t *testing.T) {
	steps := buildSteps()

	abroad := &model.Profile{LocationStatus: model.LocationOrigin}
	inSpain := &model.Profile{LocationStatus: model.LocationSpain}

	assert.True(t, stepByID(t, steps, "time").skip(abroad))
	assert.False(t, stepByID(t, steps, "time").skip(inSpain))
	assert.True(t, stepByID(t, steps, "empadronado").skip(abroad))

	noFamily := &model.Profile{HasFamilyInSpain: testutil.BoolPtr(false)}
	withFamily := &model.Profile{HasFamilyInSpain: testutil.BoolPtr(true)}
	unknownFamily := &model.Profile{}

	for _, id := range []string{"familyNationality", "familyRelation", "familyDetails"} {
		assert.True(t, stepByID(t, steps, id).skip(noFamily), "%s skipped without family", id)
		assert.True(t, stepByID(t, steps, id).skip(unknownFamily), "%s skipped when family unknown", id)
		assert.False(t, stepByID(t, steps, id).skip(withFamily), "%s asked with family", id)
	}
}

func TestTriState(t *testing.T) {
	require.NotNil(t, triState("yes"))
	assert.True(t, *triState("yes"))
	require.NotNil(t, triState("no"))
	assert.False(t, *triState("no"))
	assert.Nil(t, triState("unknown"))
}

func TestAdvanceSkipsFamilyQuestions(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))
	m := NewModel(eng)

	// Answer family = no while positioned on the family step.
	for m.steps[m.current].id != "family" {
		m.steps[m.current].apply(m.profile, defaultAnswer(m.steps[m.current]))
		m.advance()
	}
	m.steps[m.current].apply(m.profile, "no")
	m.advance()

	assert.Equal(t, "goal", m.steps[m.current].id, "family sub-questions are skipped")
}

func TestWizardCompletionClassifies(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))
	m := NewModel(eng)

	answers := map[string]string{
		"firstName":   "Carolina",
		"nationality": "Argentina",
		"location":    string(model.LocationSpain),
		"status":      string(model.StatusIrregular),
		"time":        string(model.TimeMoreThanThreeYears),
		"empadronado": "yes",
		"job":         "hostelería sin contrato",
		"criminal":    "no",
		"family":      "no",
		"goal":        "regularizar",
		"comments":    "Llevo más de tres años en España y quiero regularizarme.",
	}

	for !m.done {
		s := m.steps[m.current]
		answer, ok := answers[s.id]
		require.True(t, ok, "unexpected step %q", s.id)
		s.apply(m.profile, answer)
		m.advance()
	}

	require.NotNil(t, m.Result())
	assert.Equal(t, model.FlowArraigos, m.Result().FlowCategory)
	assert.Contains(t, m.Result().CandidateTemplates, "ARRAIGO SOCIAL")

	profile := m.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Carolina", profile.FirstName)
	assert.True(t, *profile.IsEmpadronado)
}

func TestUpdateQuitKeys(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))
	m := NewModel(eng)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	quit, ok := next.(Model)
	require.True(t, ok)
	assert.True(t, quit.quit)
	assert.Nil(t, quit.Profile())
}

func TestChoiceCursorWraps(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))
	m := NewModel(eng)

	// Move to the first choice step (location).
	for m.steps[m.current].kind != stepChoice {
		m.steps[m.current].apply(m.profile, "x")
		m.advance()
	}
	choices := len(m.steps[m.current].choices)

	up, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m, _ = up.(Model)
	assert.Equal(t, choices-1, m.cursor, "moving up from the top wraps to the last choice")

	down, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m, _ = down.(Model)
	assert.Equal(t, 0, m.cursor)
}

// defaultAnswer picks a neutral answer so tests can fast-forward the wizard.
func defaultAnswer(s step) string {
	if s.kind == stepChoice {
		return s.choices[0].value
	}
	return "respuesta"
}
