package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := "template_key,descripcion,contenido,pdf_url\n" +
		"ARRAIGO SOCIAL,Tres años de permanencia,\"Hola {{nombre}},\nte explico el arraigo social.\",https://example.com/social.pdf\n" +
		"  ASILO  ,Protección internacional,Contenido asilo,\n" +
		",fila sin clave se ignora,contenido huérfano,\n"

	templates, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, templates, 2)

	assert.Equal(t, "ARRAIGO SOCIAL", templates[0].Key)
	assert.Equal(t, "Tres años de permanencia", templates[0].Description)
	assert.Contains(t, templates[0].Content, "\nte explico")
	assert.Equal(t, "https://example.com/social.pdf", templates[0].PDFURL)

	// Keys are whitespace-collapsed.
	assert.Equal(t, "ASILO", templates[1].Key)
}

func TestParseCSVToleratesBOMAndExtraColumns(t *testing.T) {
	input := "\ufefftemplate_key,descripcion,contenido,pdf_url,descripcion_old\n" +
		"CUE 2025,Certificado de registro,Contenido,https://example.com/cue.pdf,vieja descripcion\n"

	templates, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "CUE 2025", templates[0].Key)
	assert.Equal(t, "Certificado de registro", templates[0].Description)
}

func TestParseCSVHeaderDrivenColumnOrder(t *testing.T) {
	input := "descripcion,template_key\n" +
		"la descripcion,LA CLAVE\n"

	templates, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "LA CLAVE", templates[0].Key)
	assert.Equal(t, "la descripcion", templates[0].Description)
	assert.Empty(t, templates[0].Content)
}

func TestParseCSVMissingKeyColumn(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("descripcion,contenido\nuno,dos\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template_key")
}
