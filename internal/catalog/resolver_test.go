package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julialegal/brujula/internal/model"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"REAGRUPACIÓN FAMILIAR ", "REAGRUPACION FAMILIAR"},
		{"reagrupacion   familiar", "REAGRUPACION FAMILIAR"},
		{"LEY DE MEMORIA DEMOCRÁTICA (LMD)", "LEY DE MEMORIA DEMOCRATICA LMD"},
		{"cue-2025", "CUE 2025"},
		{"", ""},
		{"  ***  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.input), "input %q", tt.input)
	}
}

func TestResolveExactMatch(t *testing.T) {
	cat, err := New(testTemplates())
	require.NoError(t, err)

	got := cat.Resolve([]string{"reagrupación familiar", "ASILO"})
	assert.Equal(t, []string{"REAGRUPACIÓN FAMILIAR", "ASILO"}, got)
}

func TestResolveContainmentFallback(t *testing.T) {
	cat, err := New(testTemplates())
	require.NoError(t, err)

	// Label is a prefix of a catalog key: first containment match in catalog
	// order wins.
	got := cat.Resolve([]string{"ARRAIGO"})
	assert.Equal(t, []string{"ARRAIGO SOCIAL"}, got)

	// Catalog key is contained in a longer label.
	got = cat.Resolve([]string{"ASILO POLÍTICO"})
	assert.Equal(t, []string{"ASILO"}, got)
}

func TestResolveDropsUnknownLabelsSilently(t *testing.T) {
	cat, err := New(testTemplates())
	require.NoError(t, err)

	got := cat.Resolve([]string{"NO EXISTE EN NINGUNA PARTE", "ASILO"})
	assert.Equal(t, []string{"ASILO"}, got)

	assert.Empty(t, cat.Resolve([]string{"ZZZ"}))
	assert.Empty(t, cat.Resolve(nil))
}

func TestResolveDeduplicatesKeepingFirst(t *testing.T) {
	cat, err := New(testTemplates())
	require.NoError(t, err)

	got := cat.Resolve([]string{"ASILO", "asilo", "ARRAIGO SOCIAL", "ASILO"})
	assert.Equal(t, []string{"ASILO", "ARRAIGO SOCIAL"}, got)
}

func TestResolveEmitsCatalogCasing(t *testing.T) {
	cat, err := New([]model.Template{{Key: "Pareja de Hecho", Description: "x"}})
	require.NoError(t, err)

	got := cat.Resolve([]string{"PAREJA DE HECHO"})
	assert.Equal(t, []string{"Pareja de Hecho"}, got)
}
