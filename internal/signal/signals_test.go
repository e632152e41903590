package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julialegal/brujula/internal/model"
)

func TestTimeToYears(t *testing.T) {
	tests := []struct {
		input model.TimeInSpain
		want  float64
	}{
		{model.TimeLessThanSixMonths, 0.3},
		{model.TimeSixToTwelveMonths, 0.8},
		{model.TimeOneToTwoYears, 1.5},
		{model.TimeTwoToThreeYears, 2.5},
		{model.TimeMoreThanThreeYears, 3.5},
		{model.TimeInSpain(""), 0},
		{model.TimeInSpain("whatever"), 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeToYears(tt.input), "bucket %q", tt.input)
	}
}

func TestExtractStatusFlags(t *testing.T) {
	tests := []struct {
		status model.ImmigrationStatus
		want   StatusFlags
	}{
		{model.StatusIrregular, StatusFlags{Irregular: true}},
		{model.StatusStudent, StatusFlags{Student: true}},
		{model.StatusResident, StatusFlags{Resident: true}},
		{model.StatusRegular, StatusFlags{Resident: true}},
		{model.ImmigrationStatus("residencia"), StatusFlags{Resident: true}},
		{model.ImmigrationStatus("NIE"), StatusFlags{Resident: true}},
		{model.StatusTourist, StatusFlags{Tourist: true}},
		{model.StatusAsylum, StatusFlags{Asylum: true}},
		{model.ImmigrationStatus("sin papeles"), StatusFlags{Irregular: true}},
		{model.ImmigrationStatus("situación irregular"), StatusFlags{Irregular: true}},
		{model.StatusOther, StatusFlags{}},
		{model.ImmigrationStatus(""), StatusFlags{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractStatusFlags(tt.status), "status %q", tt.status)
	}
}

func TestNationalityDetectors(t *testing.T) {
	assert.True(t, IsSpanishNationality("España"))
	assert.True(t, IsSpanishNationality("española"))
	assert.False(t, IsSpanishNationality("Argentina"))

	assert.True(t, IsEuropeanNationality("Italia"))
	assert.True(t, IsEuropeanNationality("ESPAÑA"))
	assert.False(t, IsEuropeanNationality("Colombia"))
}

func TestHasLargeAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "dotted thousands", text: "quiero invertir 650.000 en vivienda", want: true},
		{name: "suffix k", text: "inversion de 500k", want: true},
		{name: "millon spelled out", text: "invertire 1 millon de euros", want: true},
		{name: "below threshold", text: "tengo 20.000 ahorrados", want: false},
		{name: "no amounts", text: "quiero invertir en mi futuro", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasLargeAmount(Fold(tt.text), investorMinimumEUR))
		})
	}
}

func TestExtractDetectors(t *testing.T) {
	p := &model.Profile{
		Nationality:   "Argentina",
		CurrentStatus: model.StatusIrregular,
		TimeInSpain:   model.TimeTwoToThreeYears,
		JobSituation:  "construcción, denuncia laboral presentada",
		Comments:      "[objetivo:regularizar] Trabajé sin contrato y ya tengo denuncia en inspección.",
	}
	s := Extract(p)

	assert.True(t, s.Status.Irregular)
	assert.Equal(t, 2.5, s.Years)
	assert.True(t, s.LaborEvidence)
	assert.True(t, s.Work)
	assert.False(t, s.Pending)
	assert.Equal(t, []string{"regularizar"}, s.IntentTags)
	assert.True(t, s.HasGoal(p, "regularizar"))
	assert.False(t, s.HasGoal(p, "nacionalidad"))
}

func TestExtractStudyIntentIsGoalBased(t *testing.T) {
	// Free-text study mentions alone must not set the study-intent signal.
	mention := Extract(&model.Profile{
		JobSituation: "trabajos esporádicos, listo para estudiar",
		PrimaryGoal:  "regularizar",
	})
	assert.False(t, mention.StudyIntent)
	assert.True(t, mention.Training)

	declared := Extract(&model.Profile{PrimaryGoal: "estudiar"})
	assert.True(t, declared.StudyIntent)

	tagged := Extract(&model.Profile{Comments: "[objetivo:estudiar] quiero venir"})
	assert.True(t, tagged.StudyIntent)
}

func TestExtractPaymentIsWordBounded(t *testing.T) {
	invoice := Extract(&model.Profile{Comments: "quiero pagar la factura de la tasa"})
	assert.True(t, invoice.Payment)

	// "facturacion" describes income, not an administrative payment.
	billing := Extract(&model.Profile{JobSituation: "freelance IT facturación 4000€ mensuales"})
	assert.False(t, billing.Payment)
}

func TestExtractHighlyQualifiedNegation(t *testing.T) {
	offer := Extract(&model.Profile{JobSituation: "oferta como directora financiera"})
	assert.True(t, offer.HighlyQualified)

	negated := Extract(&model.Profile{Comments: "fui directora pero estoy sin oferta"})
	assert.False(t, negated.HighlyQualified)
}

func TestExtractExploratory(t *testing.T) {
	short := Extract(&model.Profile{Comments: "no sé qué puedo hacer, busco orientación"})
	assert.True(t, short.Exploratory)

	concrete := Extract(&model.Profile{Comments: "busco orientación, tengo oferta de contrato"})
	assert.False(t, concrete.Exploratory)

	withFamily := Extract(&model.Profile{
		Comments:         "no sé qué puedo hacer",
		HasFamilyInSpain: boolPtr(true),
	})
	assert.False(t, withFamily.Exploratory)

	empty := Extract(&model.Profile{})
	assert.False(t, empty.Exploratory)
}

func TestExtractNilProfile(t *testing.T) {
	s := Extract(nil)
	assert.Equal(t, StatusFlags{}, s.Status)
	assert.Zero(t, s.Years)
	assert.Empty(t, s.IntentTags)
}

func boolPtr(b bool) *bool { return &b }
