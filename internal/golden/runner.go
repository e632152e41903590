package golden

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/julialegal/brujula/internal/catalog"
	"github.com/julialegal/brujula/internal/classify"
)

// Failure describes one scenario the engine got wrong.
type Failure struct {
	CaseID   string
	Name     string
	Expected string
	Got      string
}

// Report is the outcome of a suite run.
type Report struct {
	Total    int
	Passed   int
	Failures []Failure
}

// OK reports whether every scenario passed.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Runner executes the scenario suite against an engine.
type Runner struct {
	engine       *classify.Engine
	showProgress bool
}

// NewRunner creates a runner. With showProgress a terminal progress bar is
// drawn while the suite executes.
func NewRunner(engine *classify.Engine, showProgress bool) *Runner {
	return &Runner{engine: engine, showProgress: showProgress}
}

// Run executes the cases, optionally filtered by tag, and returns the report.
func (r *Runner) Run(cases []Case, tag string) Report {
	if tag != "" {
		cases = filterByTag(cases, tag)
	}

	var bar *progressbar.ProgressBar
	if r.showProgress {
		bar = progressbar.NewOptions(len(cases),
			progressbar.OptionSetDescription("Evaluating scenarios"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	report := Report{Total: len(cases)}
	for _, c := range cases {
		result := r.engine.Classify(c.Profile)
		if bar != nil {
			_ = bar.Add(1)
		}

		if result.FlowCategory != c.ExpectedFlow {
			report.Failures = append(report.Failures, Failure{
				CaseID:   c.ID,
				Name:     c.Name,
				Expected: fmt.Sprintf("flow %s", c.ExpectedFlow),
				Got:      fmt.Sprintf("flow %s", result.FlowCategory),
			})
			continue
		}

		if missing := missingKeys(c.MustInclude, result.CandidateTemplates); len(missing) > 0 {
			report.Failures = append(report.Failures, Failure{
				CaseID:   c.ID,
				Name:     c.Name,
				Expected: fmt.Sprintf("candidates to include %s", strings.Join(missing, ", ")),
				Got:      strings.Join(result.CandidateTemplates, ", "),
			})
			continue
		}

		report.Passed++
	}
	return report
}

// WriteReport renders a human-readable pass/fail summary.
func WriteReport(w io.Writer, report Report) {
	fmt.Fprintf(w, "golden: %d/%d scenarios passed\n", report.Passed, report.Total)
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  FAIL %s (%s)\n    expected: %s\n    got:      %s\n",
			f.CaseID, f.Name, f.Expected, f.Got)
	}
}

func filterByTag(cases []Case, tag string) []Case {
	var out []Case
	for _, c := range cases {
		for _, t := range c.Tags {
			if t == tag {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// missingKeys compares wanted keys against got using catalog normalization so
// accent drift between the suite and the catalog never causes a false fail.
func missingKeys(want, got []string) []string {
	have := make(map[string]struct{}, len(got))
	for _, key := range got {
		have[catalog.NormalizeKey(key)] = struct{}{}
	}
	var missing []string
	for _, key := range want {
		if _, ok := have[catalog.NormalizeKey(key)]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
