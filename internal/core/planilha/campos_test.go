package planilha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValorResolveSinonimos(t *testing.T) {
	reg := Registro{
		"Qtd":           "150,5",
		"Veículo":       "CAM-01",
		"HOR_ANTERIOR":  "1.200",
		"Local":         "Tanque Canteiro 1",
		"Observações  ": "  teste  ",
	}

	assert.Equal(t, "150,5", Valor(reg, CampoQuantidade))
	assert.Equal(t, "CAM-01", Valor(reg, CampoVeiculo))
	assert.Equal(t, "1.200", Valor(reg, CampoHorimetroAnterior))
	assert.Equal(t, "Tanque Canteiro 1", Valor(reg, CampoLocal))
	assert.Equal(t, "teste", Valor(reg, CampoObservacoes))
}

func TestValorPreferePrimeiraVariante(t *testing.T) {
	reg := Registro{
		"QUANTIDADE": "100",
		"LITROS":     "999",
	}
	assert.Equal(t, "100", Valor(reg, CampoQuantidade))
}

func TestValorIgnoraVariantesVazias(t *testing.T) {
	reg := Registro{
		"QUANTIDADE": "   ",
		"LITROS":     "75",
	}
	assert.Equal(t, "75", Valor(reg, CampoQuantidade))
}

func TestValorCampoAusente(t *testing.T) {
	reg := Registro{"DATA": "01/02/2026"}
	assert.Equal(t, "", Valor(reg, CampoFornecedor))
	assert.Equal(t, "", Valor(nil, CampoFornecedor))
}

func TestValorNumero(t *testing.T) {
	reg := Registro{"KM ATUAL": "12.345,6"}
	assert.Equal(t, 12345.6, ValorNumero(reg, CampoKmAtual))
	assert.Equal(t, float64(0), ValorNumero(reg, CampoKmAnterior))
}
