package model

// FlowCategory is the coarse classification bucket grouping a mutually
// related set of candidate procedures.
type FlowCategory string

// Flow categories emitted by the classification engine.
const (
	FlowGeneric        FlowCategory = "GENERIC"
	FlowSpanish        FlowCategory = "SPANISH"
	FlowFamilyOfEU     FlowCategory = "FAMILY_OF_EU"
	FlowArraigos       FlowCategory = "ARRAIGOS"
	FlowStudent        FlowCategory = "STUDENT"
	FlowResident       FlowCategory = "RESIDENT"
	FlowTouristInSpain FlowCategory = "TOURIST_IN_SPAIN"
	FlowAsylum         FlowCategory = "ASYLUM"
	FlowOutsideSpain   FlowCategory = "OUTSIDE_SPAIN"
	FlowPayment        FlowCategory = "PAYMENT"
	FlowScheduling     FlowCategory = "SCHEDULING"
	FlowActas          FlowCategory = "ACTAS"
	FlowWorkPending    FlowCategory = "WORK_PENDING"
	FlowAdvisory       FlowCategory = "ADVISORY"
)

// Classification is the engine's output: one flow category plus the ordered,
// deduplicated candidate template keys, most relevant first. It is created
// fresh on every call and never mutated afterwards.
type Classification struct {
	FlowCategory       FlowCategory `json:"flowCategory"`
	CandidateTemplates []string     `json:"candidateTemplates"`
}
