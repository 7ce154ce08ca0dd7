package planilha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumero(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado float64
	}{
		{"1.234,50", 1234.5},
		{"0,5", 0.5},
		{"1000", 1000},
		{"1.000.000,99", 1000000.99},
		{"R$ 2.500,00", 2500},
		{"-1.5", -15}, // ponto é separador de milhar, nunca decimal
		{"-300,25", -300.25},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12,34,56", 0}, // segunda vírgula invalida o número
	}

	for _, caso := range casos {
		assert.Equal(t, caso.esperado, ParseNumero(caso.entrada), "entrada %q", caso.entrada)
	}
}

func TestFormatarNumero(t *testing.T) {
	assert.Equal(t, "1.234,50", FormatarNumero(1234.5, 2, "0"))
	assert.Equal(t, "1.000.000,99", FormatarNumero(1000000.99, 2, "0"))
	assert.Equal(t, "2,00", FormatarNumero(2, 2, "-"))
	assert.Equal(t, "-300,25", FormatarNumero(-300.25, 2, "0"))
	assert.Equal(t, "150", FormatarNumero(150, 0, "0"))
}

func TestFormatarNumeroSentinelaDeZero(t *testing.T) {
	assert.Equal(t, "0", FormatarNumero(0, 2, "0"))
	assert.Equal(t, "-", FormatarNumero(0, 2, "-"))
}

// Ida e volta: strings brasileiras com duas casas decimais sobrevivem a
// ParseNumero seguido de FormatarNumero sem alteração.
func TestNumeroIdaEVolta(t *testing.T) {
	casos := []string{"1.234,50", "0,75", "999,99", "12.345.678,01"}
	for _, s := range casos {
		assert.Equal(t, s, FormatarNumero(ParseNumero(s), 2, "0"), "entrada %q", s)
	}
}

func TestNormalizarTexto(t *testing.T) {
	assert.Equal(t, "TANQUE CANTEIRO 2", NormalizarTexto("  Tanque — Canteiro   2 "))
	assert.Equal(t, "PA CARREGADEIRA", NormalizarTexto("Pá Carregadeira"))
	assert.Equal(t, "HOR ANTERIOR", NormalizarTexto("HOR_ANTERIOR"))
	assert.Equal(t, "", NormalizarTexto("   "))
}
