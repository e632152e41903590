package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/testutil"
)

func TestHomologationKeepsStatusCategory(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.CurrentStatus = model.StatusResident
		p.Comments = "quiero homologar mi título universitario"
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowResident, c.FlowCategory)
	assert.Equal(t, []string{"HOMOLOGACIÓN"}, c.CandidateTemplates)
}

func TestInvestorInSpainKeepsStatusCategory(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.CurrentStatus = model.StatusTourist
		p.JobSituation = ""
		p.Comments = "quiero invertir 650.000 euros en un piso"
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowTouristInSpain, c.FlowCategory)
	assert.Equal(t, []string{"RESIDENCIA PARA INVERSORES"}, c.CandidateTemplates)
}

func TestTouristInSpain(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.CurrentStatus = model.StatusTourist
		p.PrimaryGoal = ""
		p.JobSituation = ""
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowTouristInSpain, c.FlowCategory)
	require.NotEmpty(t, c.CandidateTemplates)
	assert.Equal(t, "AUTORIZACIONES COMO TURISTA", c.CandidateTemplates[0])
}

func TestTouristRemoteWorkerLeadsWithDigitalNomad(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.CurrentStatus = model.StatusTourist
		p.PrimaryGoal = ""
		p.JobSituation = "trabajo remoto para una empresa extranjera"
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowTouristInSpain, c.FlowCategory)
	require.NotEmpty(t, c.CandidateTemplates)
	assert.Equal(t, "NÓMADA DIGITAL", c.CandidateTemplates[0])
}

func TestStudentSubProcedures(t *testing.T) {
	eng, _ := newTestEngine(t)

	tests := []struct {
		name     string
		comments string
		first    string
	}{
		{
			name:     "renewal",
			comments: "mi tarjeta vence el mes que viene y quiero renovar",
			first:    "RENOVACIÓN DE ESTUDIOS",
		},
		{
			name:     "switch to employment",
			comments: "tengo una oferta de trabajo para cuenta ajena",
			first:    "MODIFICAR DE ESTUDIOS A CUENTA AJENA",
		},
		{
			name:     "switch to self employment",
			comments: "quiero pasarme a cuenta propia como autónomo",
			first:    "MODIFICAR DE ESTUDIOS A CUENTA PROPIA",
		},
		{
			name:     "after studies",
			comments: "he terminado el máster y quiero quedarme",
			first:    "DESPUÉS DE ESTUDIOS",
		},
		{
			name:     "family of student",
			comments: "quiero traer a mi esposa como familiar de estudiante",
			first:    "MODIFICACIÓN DE FAMILIARES DE ESTUDIANTE",
		},
		{
			name:     "generic",
			comments: "",
			first:    "RENOVACIÓN DE ESTUDIOS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.MakeProfile(func(p *model.Profile) {
				p.CurrentStatus = model.StatusStudent
				p.PrimaryGoal = ""
				p.JobSituation = ""
				p.Comments = tt.comments
			})

			c := eng.Classify(p)
			assert.Equal(t, model.FlowStudent, c.FlowCategory)
			require.NotEmpty(t, c.CandidateTemplates)
			assert.Equal(t, tt.first, c.CandidateTemplates[0])
		})
	}
}

func TestStudyGoalRoutesToStudentTrack(t *testing.T) {
	eng, _ := newTestEngine(t)

	// Declared study goal beats the irregular-status track.
	p := testutil.MakeProfile(func(p *model.Profile) {
		p.PrimaryGoal = "estudiar"
		p.JobSituation = ""
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowStudent, c.FlowCategory)
}

func TestResidentAssemblesPrioritizedCandidates(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.CurrentStatus = model.StatusResident
		p.PrimaryGoal = ""
		p.JobSituation = ""
		p.Comments = "quiero la reagrupación de mi esposa y luego la nacionalidad por matrimonio"
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowResident, c.FlowCategory)
	require.GreaterOrEqual(t, len(c.CandidateTemplates), 3)
	assert.Equal(t, "REAGRUPACIÓN FAMILIAR", c.CandidateTemplates[0])
	assert.Equal(t, "NACIONALIDAD POR MATRIMONIO", c.CandidateTemplates[1])
	assert.Equal(t, "NACIONALIDAD 2024", c.CandidateTemplates[2])
	assert.Contains(t, c.CandidateTemplates, "CUE 2025")
}

func TestArraigoTimeGate(t *testing.T) {
	eng, _ := newTestEngine(t)

	tests := []struct {
		name        string
		time        model.TimeInSpain
		wantSocial  bool
		wantLaboral bool
	}{
		{name: "under six months", time: model.TimeLessThanSixMonths},
		{name: "six to twelve months", time: model.TimeSixToTwelveMonths},
		{name: "one to two years", time: model.TimeOneToTwoYears},
		{name: "two to three years", time: model.TimeTwoToThreeYears, wantLaboral: true},
		{name: "over three years", time: model.TimeMoreThanThreeYears, wantSocial: true, wantLaboral: true},
		{name: "unknown bucket", time: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.MakeProfile(func(p *model.Profile) {
				p.TimeInSpain = tt.time
				p.JobSituation = ""
			})

			c := eng.Classify(p)
			assert.Equal(t, model.FlowArraigos, c.FlowCategory)

			if tt.wantSocial {
				assert.Contains(t, c.CandidateTemplates, "ARRAIGO SOCIAL")
			} else {
				assert.NotContains(t, c.CandidateTemplates, "ARRAIGO SOCIAL")
			}
			if tt.wantLaboral {
				assert.Contains(t, c.CandidateTemplates, "ARRAIGO SOCIOLABORAL")
			} else {
				assert.NotContains(t, c.CandidateTemplates, "ARRAIGO SOCIOLABORAL")
			}
			assert.Contains(t, c.CandidateTemplates, "ARRAIGO SOCIOFORMATIVO")
		})
	}
}

func TestArraigoTimeGateIsStrict(t *testing.T) {
	cat := testutil.NewCatalog(t)
	eng := NewWithConfig(cat, Config{LaborRootMinYears: 2.5, SocialRootMinYears: 2.9})

	// Exactly at the minimum does not qualify.
	p := testutil.MakeProfile(func(p *model.Profile) {
		p.TimeInSpain = model.TimeTwoToThreeYears
		p.JobSituation = ""
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowArraigos, c.FlowCategory)
	assert.NotContains(t, c.CandidateTemplates, "ARRAIGO SOCIAL")
	assert.NotContains(t, c.CandidateTemplates, "ARRAIGO SOCIOLABORAL")
}

func TestArraigoLaborEvidenceLeadsWithSociolaboral(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.TimeInSpain = model.TimeTwoToThreeYears
		p.JobSituation = "limpieza sin contrato, tengo nómina y denuncia presentada"
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowArraigos, c.FlowCategory)
	require.NotEmpty(t, c.CandidateTemplates)
	assert.Equal(t, "ARRAIGO SOCIOLABORAL", c.CandidateTemplates[0])
}

func TestArraigoWithoutLaborEvidenceLeadsWithFormative(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.TimeInSpain = model.TimeTwoToThreeYears
		p.JobSituation = ""
		p.Comments = "[objetivo:regularizar] tengo preinscripción en un curso de 600h"
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowArraigos, c.FlowCategory)
	require.NotEmpty(t, c.CandidateTemplates)
	assert.Equal(t, "ARRAIGO SOCIOFORMATIVO", c.CandidateTemplates[0])
	assert.Contains(t, c.CandidateTemplates, "ARRAIGO SOCIOLABORAL")
	assert.NotContains(t, c.CandidateTemplates, "ARRAIGO SOCIAL")
}

func TestArraigoAppealLeadsWithRecurso(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.JobSituation = ""
		p.Comments = "me denegaron el arraigo y quiero presentar un recurso"
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowArraigos, c.FlowCategory)
	require.NotEmpty(t, c.CandidateTemplates)
	assert.Equal(t, "RECURSO CONTENCIOSO", c.CandidateTemplates[0])
}

func TestAsylumSeeker(t *testing.T) {
	eng, _ := newTestEngine(t)

	p := testutil.MakeProfile(func(p *model.Profile) {
		p.CurrentStatus = model.StatusAsylum
		p.PrimaryGoal = ""
		p.JobSituation = ""
	})

	c := eng.Classify(p)
	assert.Equal(t, model.FlowAsylum, c.FlowCategory)
	assert.Equal(t, []string{"ASILO", "FORMAS DE REGULARIZARSE"}, c.CandidateTemplates)
}
