package signal

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/julialegal/brujula/internal/model"
)

// StatusFlags is the normalized view of the applicant's administrative
// status. Derived once at extraction time via the alias tables instead of
// re-matching keyword patterns in every branch.
type StatusFlags struct {
	Irregular bool
	Student   bool
	Resident  bool
	Tourist   bool
	Asylum    bool
}

// Signals is the full set of decision signals the classification engine
// consumes. Extract computes it once per profile; everything here is derived
// and read-only.
type Signals struct {
	SpanishNational  bool
	EuropeanNational bool
	Status           StatusFlags
	Years            float64

	IntentTags  []string
	CommentText string // comments with intent tags stripped
	Folded      string // folded haystack the detectors matched against

	// Free-text detectors over comments + job situation + family details.
	Training        bool
	LaborEvidence   bool
	RemoteWork      bool
	Investment      bool
	HighlyQualified bool
	Entrepreneur    bool
	Ascendant       bool
	Payment         bool
	Scheduling      bool
	Registry        bool
	Homologation    bool
	Appeal          bool
	Pending         bool
	Work            bool
	Regroup         bool
	StudyIntent     bool
	TouristEntry    bool
	AdvisoryMarker  bool
	Exploratory     bool

	NationalityIntent   bool
	MarriageNationality bool
	SurnameNationality  bool
	MemoryLaw           bool
}

// IsSpanishNationality reports whether the free-text country names Spain.
func IsSpanishNationality(nationality string) bool {
	return ContainsAny(Fold(nationality), SpanishNationalityKeywords)
}

// IsEuropeanNationality reports whether the free-text country is an
// EU/EEA/Switzerland member. Secondary signal only; never the sole gate for
// a core flow.
func IsEuropeanNationality(nationality string) bool {
	return ContainsAny(Fold(nationality), EUCountries)
}

// ExtractStatusFlags normalizes the status surface form into flags. Matching
// is substring-based so stale or variant client payloads degrade gracefully
// instead of misclassifying silently.
func ExtractStatusFlags(status model.ImmigrationStatus) StatusFlags {
	folded := Fold(string(status))
	flags := StatusFlags{
		Irregular: ContainsAny(folded, IrregularStatusAliases),
		Student:   ContainsAny(folded, StudentStatusAliases),
		Tourist:   ContainsAny(folded, TouristStatusAliases),
		Asylum:    ContainsAny(folded, AsylumStatusAliases),
	}
	// "regular" is a substring of "irregular": an irregular surface form
	// must never also read as resident.
	flags.Resident = !flags.Irregular && ContainsAny(folded, ResidentStatusAliases)
	return flags
}

// TimeToYears maps a duration bucket to a representative numeric value so
// duration comparisons can use plain thresholds. Unrecognized or empty input
// maps to 0.
func TimeToYears(t model.TimeInSpain) float64 {
	switch t {
	case model.TimeLessThanSixMonths:
		return 0.3
	case model.TimeSixToTwelveMonths:
		return 0.8
	case model.TimeOneToTwoYears:
		return 1.5
	case model.TimeTwoToThreeYears:
		return 2.5
	case model.TimeMoreThanThreeYears:
		return 3.5
	default:
		return 0
	}
}

// amountRe captures euro-style amounts ("650.000", "1,000,000", "500000",
// "1 millon", "500k").
var amountRe = regexp.MustCompile(`(\d+(?:[.,]\d{3})*)\s*(k\b|mill?on(?:es)?|m\b)?`)

// hasLargeAmount reports whether the folded text mentions an amount of at
// least min euros.
func hasLargeAmount(folded string, min int64) bool {
	for _, m := range amountRe.FindAllStringSubmatch(folded, -1) {
		digits := strings.NewReplacer(".", "", ",", "").Replace(m[1])
		value, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "":
		case "k":
			value *= 1_000
		default: // m, millon, millones
			value *= 1_000_000
		}
		if value >= min {
			return true
		}
	}
	return false
}

// investorMinimumEUR is the lowest qualifying investment amount.
const investorMinimumEUR = 500_000

// exploratoryMaxLen bounds how long a comment can be and still count as
// "no concrete plan yet".
const exploratoryMaxLen = 160

// Extract derives all decision signals from a profile. Pure and total:
// missing fields behave as empty strings and no input can make it fail.
func Extract(p *model.Profile) Signals {
	if p == nil {
		p = &model.Profile{}
	}

	tags, commentText := ExtractIntentTags(p.Comments)

	// One folded haystack for the free-text detectors. Family details are
	// included because relationship evidence often only appears there.
	folded := Fold(CollapseSpaces(commentText + " " + p.JobSituation + " " + p.FamilyDetails))
	goal := Fold(p.PrimaryGoal)

	s := Signals{
		SpanishNational:  IsSpanishNationality(p.Nationality),
		EuropeanNational: IsEuropeanNationality(p.Nationality),
		Status:           ExtractStatusFlags(p.CurrentStatus),
		Years:            TimeToYears(p.TimeInSpain),
		IntentTags:       tags,
		CommentText:      commentText,
		Folded:           folded,

		Training:       ContainsAny(folded, TrainingKeywords),
		LaborEvidence:  ContainsAny(folded, LaborEvidenceKeywords),
		RemoteWork:     ContainsAny(folded, RemoteWorkKeywords),
		Investment:     ContainsAny(folded, InvestmentKeywords) || hasLargeAmount(folded, investorMinimumEUR),
		Entrepreneur:   ContainsAny(folded, EntrepreneurKeywords),
		Ascendant:      ContainsAny(folded, AscendantKeywords),
		Payment:        ContainsAnyWord(folded, PaymentKeywords),
		Scheduling:     ContainsAny(folded, SchedulingKeywords),
		Registry:       ContainsAny(folded, RegistryKeywords),
		Homologation:   ContainsAny(folded, HomologationKeywords),
		Appeal:         ContainsAny(folded, AppealKeywords),
		Pending:        ContainsAny(folded, PendingKeywords),
		Work:           ContainsAny(folded, WorkKeywords),
		Regroup:        ContainsAny(folded, RegroupKeywords),
		TouristEntry:   ContainsAny(folded, TouristEntryKeywords),
		AdvisoryMarker: ContainsAny(folded, AdvisoryMarkerKeywords),

		MarriageNationality: ContainsAny(folded, MarriageNationalityKeywords),
		SurnameNationality:  ContainsAny(folded, SurnameNationalityKeywords),
		MemoryLaw:           ContainsAny(folded, MemoryLawKeywords),
	}

	// A qualified offer needs an offer-class keyword and no explicit "sin
	// oferta" negation.
	s.HighlyQualified = ContainsAny(folded, HighlyQualifiedKeywords) && !ContainsAny(folded, NoOfferKeywords)

	// Study intent is the declared goal, not free-text mentions: an irregular
	// applicant writing "listo para estudiar" is a formative-rootedness case,
	// not a student-track case.
	s.StudyIntent = goal == "study" || goal == "estudiar" ||
		hasTag(tags, "study") || hasTag(tags, "estudiar")

	s.NationalityIntent = goal == "nationality" || goal == "nacionalidad" ||
		hasTag(tags, "nacionalidad") || ContainsAny(folded, NationalityKeywords)

	// Exploratory: short text, hedging language, no concrete-plan nouns and
	// no family signal. Routing these to advisory templates beats guessing.
	s.Exploratory = len(folded) > 0 && len(folded) <= exploratoryMaxLen &&
		ContainsAny(folded, HedgingKeywords) &&
		!ContainsAny(folded, ConcretePlanKeywords) &&
		!p.FamilyInSpain()

	return s
}

// HasGoal reports whether the declared primary goal or any intent tag
// matches one of the given values (already folded).
func (s Signals) HasGoal(p *model.Profile, values ...string) bool {
	goal := Fold(p.PrimaryGoal)
	for _, v := range values {
		if goal == v || hasTag(s.IntentTags, v) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if Fold(t) == want {
			return true
		}
	}
	return false
}
