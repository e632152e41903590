// Package tui implements the step-by-step intake wizard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julialegal/brujula/internal/classify"
	"github.com/julialegal/brujula/internal/model"
)

type stepKind int

const (
	stepText stepKind = iota
	stepChoice
)

// choice is one selectable option of a choice step.
type choice struct {
	label string
	value string
}

// step is one wizard question. Choice steps may be skipped at runtime when an
// earlier answer makes them irrelevant (family sub-questions).
type step struct {
	id      string
	prompt  string
	kind    stepKind
	choices []choice
	skip    func(p *model.Profile) bool
	apply   func(p *model.Profile, value string)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	promptStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func triState(value string) *bool {
	switch value {
	case "yes":
		b := true
		return &b
	case "no":
		b := false
		return &b
	default:
		return nil
	}
}

var yesNoUnknown = []choice{
	{label: "Sí", value: "yes"},
	{label: "No", value: "no"},
	{label: "No lo sé", value: "unknown"},
}

func buildSteps() []step {
	return []step{
		{
			id: "firstName", prompt: "¿Cuál es tu nombre?", kind: stepText,
			apply: func(p *model.Profile, v string) { p.FirstName = v },
		},
		{
			id: "nationality", prompt: "¿Cuál es tu nacionalidad?", kind: stepText,
			apply: func(p *model.Profile, v string) { p.Nationality = v },
		},
		{
			id: "location", prompt: "¿Dónde estás ahora mismo?", kind: stepChoice,
			choices: []choice{
				{label: "En España", value: string(model.LocationSpain)},
				{label: "En mi país de origen", value: string(model.LocationOrigin)},
			},
			apply: func(p *model.Profile, v string) { p.LocationStatus = model.LocationStatus(v) },
		},
		{
			id: "status", prompt: "¿Cuál es tu situación actual?", kind: stepChoice,
			choices: []choice{
				{label: "Sin papeles / irregular", value: string(model.StatusIrregular)},
				{label: "Residente", value: string(model.StatusResident)},
				{label: "Estudiante", value: string(model.StatusStudent)},
				{label: "Turista", value: string(model.StatusTourist)},
				{label: "Solicitante de asilo", value: string(model.StatusAsylum)},
				{label: "Otra", value: string(model.StatusOther)},
			},
			apply: func(p *model.Profile, v string) { p.CurrentStatus = model.ImmigrationStatus(v) },
		},
		{
			id: "time", prompt: "¿Cuánto tiempo llevas en España?", kind: stepChoice,
			choices: []choice{
				{label: "Menos de 6 meses", value: string(model.TimeLessThanSixMonths)},
				{label: "Entre 6 y 12 meses", value: string(model.TimeSixToTwelveMonths)},
				{label: "Entre 1 y 2 años", value: string(model.TimeOneToTwoYears)},
				{label: "Entre 2 y 3 años", value: string(model.TimeTwoToThreeYears)},
				{label: "Más de 3 años", value: string(model.TimeMoreThanThreeYears)},
			},
			skip:  func(p *model.Profile) bool { return !p.InSpain() },
			apply: func(p *model.Profile, v string) { p.TimeInSpain = model.TimeInSpain(v) },
		},
		{
			id: "empadronado", prompt: "¿Estás empadronado/a?", kind: stepChoice,
			choices: yesNoUnknown,
			skip:    func(p *model.Profile) bool { return !p.InSpain() },
			apply:   func(p *model.Profile, v string) { p.IsEmpadronado = triState(v) },
		},
		{
			id: "job", prompt: "¿Cuál es tu situación laboral?", kind: stepText,
			apply: func(p *model.Profile, v string) { p.JobSituation = v },
		},
		{
			id: "criminal", prompt: "¿Tienes antecedentes penales?", kind: stepChoice,
			choices: yesNoUnknown,
			apply:   func(p *model.Profile, v string) { p.HasCriminalRecord = triState(v) },
		},
		{
			id: "family", prompt: "¿Tienes familia en España?", kind: stepChoice,
			choices: yesNoUnknown,
			apply:   func(p *model.Profile, v string) { p.HasFamilyInSpain = triState(v) },
		},
		{
			id: "familyNationality", prompt: "¿Qué nacionalidad tiene tu familiar?", kind: stepChoice,
			choices: []choice{
				{label: "Española o de la UE", value: string(model.FamilySpanishEU)},
				{label: "Extracomunitaria", value: string(model.FamilyNonEU)},
			},
			skip:  func(p *model.Profile) bool { return !p.FamilyInSpain() },
			apply: func(p *model.Profile, v string) { p.FamilyNationality = model.FamilyNationality(v) },
		},
		{
			id: "familyRelation", prompt: "¿Qué relación tienes con tu familiar?", kind: stepChoice,
			choices: []choice{
				{label: "Cónyuge", value: string(model.RelationSpouse)},
				{label: "Pareja registrada", value: string(model.RelationRegisteredPartner)},
				{label: "Pareja no registrada", value: string(model.RelationUnregisteredPartner)},
				{label: "Hijo/a", value: string(model.RelationChild)},
				{label: "Padre/madre de español", value: string(model.RelationParentOfSpanish)},
				{label: "Otra", value: string(model.RelationOther)},
			},
			skip:  func(p *model.Profile) bool { return !p.FamilyInSpain() },
			apply: func(p *model.Profile, v string) { p.FamilyRelation = model.FamilyRelation(v) },
		},
		{
			id: "familyDetails", prompt: "Cuéntanos sobre tu familiar (convivencia, dependencia...)", kind: stepText,
			skip:  func(p *model.Profile) bool { return !p.FamilyInSpain() },
			apply: func(p *model.Profile, v string) { p.FamilyDetails = v },
		},
		{
			id: "goal", prompt: "¿Cuál es tu objetivo principal?", kind: stepChoice,
			choices: []choice{
				{label: "Regularizar mi situación", value: "regularizar"},
				{label: "Traer a mis familiares", value: "familiares"},
				{label: "Nacionalidad española", value: "nacionalidad"},
				{label: "Estudiar en España", value: "estudiar"},
				{label: "Entrar a España", value: "entrada"},
				{label: "Protección internacional", value: "proteccion"},
			},
			apply: func(p *model.Profile, v string) { p.PrimaryGoal = v },
		},
		{
			id: "comments", prompt: "Cuéntanos tu caso con tus palabras", kind: stepText,
			apply: func(p *model.Profile, v string) { p.Comments = v },
		},
	}
}

// Model is the wizard's bubbletea model.
type Model struct {
	engine  *classify.Engine
	steps   []step
	current int
	input   textinput.Model
	cursor  int
	profile *model.Profile
	result  *model.Classification
	done    bool
	quit    bool
}

// NewModel creates the intake wizard. The engine is used for the immediate
// classification preview once the questionnaire completes.
func NewModel(engine *classify.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "escribe aquí"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		engine:  engine,
		steps:   buildSteps(),
		input:   ti,
		profile: &model.Profile{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quit = true
		return m, tea.Quit
	}

	if m.done {
		if keyMsg.String() == "enter" || keyMsg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	s := m.steps[m.current]
	switch s.kind {
	case stepChoice:
		switch keyMsg.String() {
		case "j", "down":
			m.cursor = (m.cursor + 1) % len(s.choices)
		case "k", "up":
			m.cursor = (m.cursor + len(s.choices) - 1) % len(s.choices)
		case "enter":
			s.apply(m.profile, s.choices[m.cursor].value)
			m.advance()
		}
	case stepText:
		if keyMsg.String() == "enter" {
			s.apply(m.profile, strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			m.advance()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance moves to the next applicable step, classifying when none remain.
func (m *Model) advance() {
	m.cursor = 0
	for m.current++; m.current < len(m.steps); m.current++ {
		s := m.steps[m.current]
		if s.skip == nil || !s.skip(m.profile) {
			return
		}
	}
	result := m.engine.Classify(m.profile)
	m.result = &result
	m.done = true
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("brújula · evaluación de extranjería"))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(m.renderResult())
		b.WriteString("\n" + helpStyle.Render("[Enter] salir"))
		return b.String()
	}

	s := m.steps[m.current]
	b.WriteString(promptStyle.Render(s.prompt))
	b.WriteString("\n\n")

	switch s.kind {
	case stepChoice:
		for i, c := range s.choices {
			prefix := "  "
			line := c.label
			if i == m.cursor {
				prefix = cursorStyle.Render("> ")
			}
			b.WriteString(prefix + line + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("[↑↓] elegir | [Enter] confirmar | [Esc] salir"))
	case stepText:
		b.WriteString(m.input.View())
		b.WriteString("\n\n" + helpStyle.Render("[Enter] continuar | [Esc] salir"))
	}
	return b.String()
}

func (m Model) renderResult() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flujo: %s\n\n", m.result.FlowCategory)
	b.WriteString("Trámites candidatos:\n")
	for _, key := range m.result.CandidateTemplates {
		b.WriteString("  - " + key + "\n")
	}
	return resultStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// Profile returns the captured profile, or nil when the wizard was aborted.
func (m Model) Profile() *model.Profile {
	if m.quit || m.profile.FirstName == "" {
		return nil
	}
	return m.profile
}

// Result returns the classification preview, if the wizard completed.
func (m Model) Result() *model.Classification {
	return m.result
}

// Run executes the wizard and returns the captured profile and its
// classification. A nil profile means the user aborted.
func Run(engine *classify.Engine) (*model.Profile, *model.Classification, error) {
	program := tea.NewProgram(NewModel(engine))
	final, err := program.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("intake wizard failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected wizard model type %T", final)
	}
	return m.Profile(), m.Result(), nil
}
