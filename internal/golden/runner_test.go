package golden

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julialegal/brujula/internal/classify"
	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/testutil"
)

func TestSuitePassesAgainstDefaultEngine(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))

	report := NewRunner(eng, false).Run(Cases(), "")
	require.Equal(t, len(Cases()), report.Total)

	if !report.OK() {
		var buf bytes.Buffer
		WriteReport(&buf, report)
		t.Fatal(buf.String())
	}
	assert.Equal(t, report.Total, report.Passed)
}

func TestRunFiltersByTag(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))

	all := Cases()
	var tagged int
	for _, c := range all {
		for _, tag := range c.Tags {
			if tag == "arraigos" {
				tagged++
				break
			}
		}
	}
	require.Greater(t, tagged, 0)
	require.Less(t, tagged, len(all))

	report := NewRunner(eng, false).Run(all, "arraigos")
	assert.Equal(t, tagged, report.Total)
}

func TestRunReportsFlowMismatch(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))

	broken := []Case{{
		ID:           "broken-1",
		Name:         "expects the wrong flow",
		Profile:      base(nil),
		ExpectedFlow: model.FlowPayment,
	}}

	report := NewRunner(eng, false).Run(broken, "")
	require.Len(t, report.Failures, 1)
	assert.False(t, report.OK())
	assert.Equal(t, "broken-1", report.Failures[0].CaseID)
	assert.Contains(t, report.Failures[0].Expected, "PAYMENT")
}

func TestRunReportsMissingCandidates(t *testing.T) {
	eng := classify.New(testutil.NewCatalog(t))

	broken := []Case{{
		ID:           "broken-2",
		Name:         "expects a candidate the branch never emits",
		Profile:      base(nil),
		ExpectedFlow: model.FlowArraigos,
		MustInclude:  []string{"ASILO"},
	}}

	report := NewRunner(eng, false).Run(broken, "")
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Expected, "ASILO")
}

func TestWriteReportSummarizesFailures(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, Report{
		Total:  2,
		Passed: 1,
		Failures: []Failure{{
			CaseID:   "caso-1",
			Name:     "escenario",
			Expected: "flow ARRAIGOS",
			Got:      "flow GENERIC",
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "1/2 scenarios passed")
	assert.Contains(t, out, "FAIL caso-1")
	assert.Contains(t, out, "flow GENERIC")
}
