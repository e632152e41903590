// Package model defines the core types shared across the application.
package model

// EducationLevel is the self-reported education level from the intake form.
type EducationLevel string

// Known education levels.
const (
	EducationPrimary    EducationLevel = "Primaria"
	EducationSecondary  EducationLevel = "Secundaria"
	EducationVocational EducationLevel = "Formación profesional / Ciclo"
	EducationUniversity EducationLevel = "Universidad / Estudios superiores"
	EducationOther      EducationLevel = "Otros"
)

// ImmigrationStatus is the applicant's current administrative situation.
// Values have drifted across form versions, so consumers must treat this as a
// surface form and normalize through signal.StatusFlags rather than comparing
// directly.
type ImmigrationStatus string

// Known status surface forms.
const (
	StatusIrregular ImmigrationStatus = "irregular"
	StatusResident  ImmigrationStatus = "resident"
	StatusStudent   ImmigrationStatus = "student"
	StatusTourist   ImmigrationStatus = "tourist"
	StatusRegular   ImmigrationStatus = "regular"
	StatusAsylum    ImmigrationStatus = "asylum_seeker"
	StatusOther     ImmigrationStatus = "other"
)

// TimeInSpain is the bucketed continuous-presence duration.
type TimeInSpain string

// Duration buckets as emitted by the intake form.
const (
	TimeLessThanSixMonths  TimeInSpain = "LESS_THAN_SIX_MONTHS"
	TimeSixToTwelveMonths  TimeInSpain = "SIX_TO_TWELVE_MONTHS"
	TimeOneToTwoYears      TimeInSpain = "ONE_TO_TWO_YEARS"
	TimeTwoToThreeYears    TimeInSpain = "TWO_TO_THREE_YEARS"
	TimeMoreThanThreeYears TimeInSpain = "MORE_THAN_THREE_YEARS"
)

// LocationStatus says whether the applicant is in Spain or abroad.
type LocationStatus string

// Applicant locations.
const (
	LocationOrigin LocationStatus = "origin"
	LocationSpain  LocationStatus = "spain"
)

// FamilyNationality classifies the nationality of the family member in Spain.
type FamilyNationality string

// Family nationality classes.
const (
	FamilySpanishEU FamilyNationality = "spanish_eu"
	FamilyNonEU     FamilyNationality = "non_eu"
)

// FamilyRelation is the relationship to the family member in Spain.
type FamilyRelation string

// Known relations. Child/parent appear in two vocabularies across form
// versions; both map to the same sub-branch.
const (
	RelationSpouse              FamilyRelation = "spouse"
	RelationRegisteredPartner   FamilyRelation = "registered_partner"
	RelationUnregisteredPartner FamilyRelation = "unregistered_partner"
	RelationChild               FamilyRelation = "child"
	RelationChildOfSpanishEU    FamilyRelation = "child_of_spanish_eu"
	RelationParent              FamilyRelation = "parent"
	RelationParentOfSpanish     FamilyRelation = "parent_of_spanish"
	RelationOther               FamilyRelation = "other"
)

// Profile is the intake questionnaire result for one applicant. It is owned
// by the caller and treated as immutable during classification.
//
// Tri-state facts (empadronamiento, criminal record, family in Spain) use
// *bool: nil means "unknown, needs clarification" and must never be coerced
// to false by eligibility checks.
type Profile struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Nationality    string         `json:"nationality"`
	Age            int            `json:"age,omitempty"`
	EducationLevel EducationLevel `json:"educationLevel,omitempty"`

	CurrentStatus  ImmigrationStatus `json:"currentStatus"`
	TimeInSpain    TimeInSpain       `json:"timeInSpain"`
	EntryDate      string            `json:"entryDate,omitempty"` // ISO date
	Province       string            `json:"province,omitempty"`
	LocationStatus LocationStatus    `json:"locationStatus"`

	IsEmpadronado     *bool  `json:"isEmpadronado"`
	JobSituation      string `json:"jobSituation,omitempty"`
	HasCriminalRecord *bool  `json:"hasCriminalRecord"`

	HasFamilyInSpain  *bool             `json:"hasFamilyInSpain"`
	FamilyNationality FamilyNationality `json:"familyNationality,omitempty"`
	FamilyRelation    FamilyRelation    `json:"familyRelation,omitempty"`
	FamilyDetails     string            `json:"familyDetails,omitempty"`

	// Comments may carry machine-written intent tags of the form
	// [objetivo:<tag>] ahead of the free text.
	Comments    string `json:"comments,omitempty"`
	PrimaryGoal string `json:"primaryGoal,omitempty"`
}

// InSpain reports whether the applicant is physically in Spain.
func (p *Profile) InSpain() bool {
	return p.LocationStatus == LocationSpain
}

// FamilyInSpain reports the tri-state family flag as a plain bool, treating
// unknown as false. Branches that must distinguish unknown check the pointer.
func (p *Profile) FamilyInSpain() bool {
	return p.HasFamilyInSpain != nil && *p.HasFamilyInSpain
}

// PartnerRelation reports whether the declared relation is a partner bond.
func (r FamilyRelation) PartnerRelation() bool {
	switch r {
	case RelationSpouse, RelationRegisteredPartner, RelationUnregisteredPartner:
		return true
	default:
		return false
	}
}

// ChildParentRelation reports whether the declared relation is a direct
// ascendant/descendant bond with a Spanish or EU citizen.
func (r FamilyRelation) ChildParentRelation() bool {
	switch r {
	case RelationChild, RelationChildOfSpanishEU, RelationParent, RelationParentOfSpanish:
		return true
	default:
		return false
	}
}
