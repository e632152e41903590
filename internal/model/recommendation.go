package model

// Verdict is the strict outcome of the generative viability review.
type Verdict string

// Verdicts.
const (
	VerdictViable       Verdict = "VIABLE"
	VerdictNotViable    Verdict = "NO_VIABLE"
	VerdictManualReview Verdict = "REVISION_MANUAL"
)

// NextStepAction tells the caller what to do after an analysis.
type NextStepAction string

// Next-step actions.
const (
	ActionScheduleConsultation NextStepAction = "SCHEDULE_CONSULTATION"
	ActionGatherDocuments      NextStepAction = "GATHER_DOCUMENTS"
)

// Recommendation is one user-facing procedure recommendation.
type Recommendation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Probability   string   `json:"probability"`
	TemplateKey   string   `json:"templateKey"`
	Requirements  []string `json:"requirements"`
	Documents     []string `json:"documents"`
	EstimatedTime string   `json:"estimatedTime"`
}

// Analysis is the full result handed to delivery: the strict verdict adapted
// onto the recommendation structure downstream consumers already read.
type Analysis struct {
	Summary            string           `json:"summary"`
	Verdict            Verdict          `json:"verdict"`
	Recommendations    []Recommendation `json:"recommendations"`
	CriticalAdvice     string           `json:"criticalAdvice"`
	MissingInfoWarning string           `json:"missingInfoWarning,omitempty"`
	NextStepAction     NextStepAction   `json:"nextStepAction"`
	ActionReasoning    string           `json:"actionReasoning"`
}
