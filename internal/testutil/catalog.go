// Package testutil provides shared fixtures for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/julialegal/brujula/internal/catalog"
	"github.com/julialegal/brujula/internal/model"
)

// NewCatalog builds a catalog over the full built-in vocabulary.
func NewCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.DefaultTemplates())
	require.NoError(t, err)
	return cat
}

// BoolPtr returns a pointer to b, for the profile's tri-state fields.
func BoolPtr(b bool) *bool {
	return &b
}

// MakeProfile returns a baseline in-Spain irregular profile with the given
// overrides applied.
func MakeProfile(override func(*model.Profile)) *model.Profile {
	p := &model.Profile{
		FirstName:         "Test",
		LastName:          "User",
		Nationality:       "Argentina",
		Age:               30,
		EducationLevel:    model.EducationSecondary,
		CurrentStatus:     model.StatusIrregular,
		TimeInSpain:       model.TimeSixToTwelveMonths,
		EntryDate:         "2024-03-01",
		Province:          "Madrid",
		LocationStatus:    model.LocationSpain,
		IsEmpadronado:     BoolPtr(true),
		JobSituation:      "trabajo informal",
		HasCriminalRecord: BoolPtr(false),
		HasFamilyInSpain:  BoolPtr(false),
		PrimaryGoal:       "regularizar",
	}
	if override != nil {
		override(p)
	}
	return p
}
