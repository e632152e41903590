package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "diacritics stripped", input: "Inspección", want: "inspeccion"},
		{name: "uppercase folded", input: "ESPAÑA", want: "espana"},
		{name: "mixed accents", input: "Reagrupación Familiar", want: "reagrupacion familiar"},
		{name: "already plain", input: "arraigo social", want: "arraigo social"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "hola que tal", CollapseSpaces("  hola \t que\n\n tal "))
	assert.Equal(t, "", CollapseSpaces("   \n\t "))
}

func TestContainsAny(t *testing.T) {
	keywords := []string{"denuncia", "sentencia"}
	assert.True(t, ContainsAny("tengo denuncia presentada", keywords))
	assert.False(t, ContainsAny("sin pruebas", keywords))
	assert.False(t, ContainsAny("", keywords))
}

func TestContainsAnyWord(t *testing.T) {
	keywords := []string{"factura", "tasa"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "whole word", text: "quiero pagar la factura", want: true},
		{name: "word at start", text: "factura sin abonar", want: true},
		{name: "word before punctuation", text: "adjunto la factura, gracias", want: true},
		{name: "longer word not matched", text: "facturacion mensual de 4000", want: false},
		{name: "suffix not matched", text: "tasacion del inmueble", want: false},
		{name: "no match", text: "sin novedades", want: false},
		{name: "empty text", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsAnyWord(tt.text, keywords))
		})
	}
}
