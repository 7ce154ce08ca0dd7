package estoque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"
)

func TestCalcularResumoTanque(t *testing.T) {
	registros := []planilha.Registro{
		{"FORNECEDOR": "Posto Ipiranga", "QUANTIDADE": "500"},
		{"VEICULO": "CB-01", "DESTINO": "Comboio 01", "QUANTIDADE": "200"},
		{"VEICULO": "ESC-02", "QUANTIDADE": "100"},
	}

	resumo := CalcularResumo("Tanque Canteiro 1", domain.LocalTanque, 1000, registros)

	assert.Equal(t, 500.0, resumo.Entradas)
	assert.Equal(t, 200.0, resumo.SaidasComboio)
	assert.Equal(t, 100.0, resumo.SaidasEquipamento)
	assert.Equal(t, 300.0, resumo.SaidasTotal)
	assert.Equal(t, 200.0, resumo.TotalLiquido)
	assert.Equal(t, 1200.0, resumo.EstoqueAtual)
}

func TestCalcularResumoComboio(t *testing.T) {
	registros := []planilha.Registro{
		{"VEICULO": "CAM-05", "QUANTIDADE": "120"},
		{"VEICULO": "TRA-03", "QUANTIDADE": "80"},
		{"LOCAL ENTRADA": "Comboio 01", "QUANTIDADE": "300"},
	}

	resumo := CalcularResumo("Comboio 01", domain.LocalComboio, 50, registros)

	assert.Equal(t, 300.0, resumo.Entradas)
	assert.Equal(t, 200.0, resumo.SaidasTotal)
	assert.Equal(t, 0.0, resumo.SaidasComboio)
	assert.Equal(t, 0.0, resumo.SaidasEquipamento)
	assert.Equal(t, 150.0, resumo.EstoqueAtual)
}

func TestCalcularResumoTruncaEmZero(t *testing.T) {
	registros := []planilha.Registro{
		{"VEICULO": "ESC-02", "QUANTIDADE": "500"},
	}

	resumo := CalcularResumo("Tanque Canteiro 2", domain.LocalTanque, 100, registros)

	assert.Equal(t, -400.0, resumo.TotalLiquido)
	assert.Equal(t, 0.0, resumo.EstoqueAtual)
}

func TestConsolidarResumos(t *testing.T) {
	resumos := []domain.ResumoEstoque{
		{Local: "Tanque Canteiro 1", EstoqueAnterior: 1000, Entradas: 500, SaidasComboio: 200, SaidasEquipamento: 100, SaidasTotal: 300, TotalLiquido: 200, EstoqueAtual: 1200},
		{Local: "Comboio 01", EstoqueAnterior: 50, Entradas: 300, SaidasTotal: 200, TotalLiquido: 100, EstoqueAtual: 150},
	}

	total := ConsolidarResumos(resumos)

	assert.Equal(t, "Todos os locais", total.Local)
	assert.Equal(t, 1050.0, total.EstoqueAnterior)
	assert.Equal(t, 800.0, total.Entradas)
	assert.Equal(t, 500.0, total.SaidasTotal)
	assert.Equal(t, 300.0, total.TotalLiquido)
	assert.Equal(t, 1350.0, total.EstoqueAtual)

	// consolidação por campo: cada coluna do total é a soma da mesma coluna
	// dos resumos de origem
	var somaAtual float64
	for _, r := range resumos {
		somaAtual += r.EstoqueAtual
	}
	assert.Equal(t, somaAtual, total.EstoqueAtual)
}

func TestResumosPorLocal(t *testing.T) {
	registros := []planilha.Registro{
		{"LOCAL": "Tanque Canteiro 1", "VEICULO": "ESC-02", "QUANTIDADE": "100"},
		{"LOCAL": "Comboio 01", "VEICULO": "CAM-05", "QUANTIDADE": "40"},
		{"LOCAL": "TANQUE CANTEIRO 1", "FORNECEDOR": "Posto X", "QUANTIDADE": "500"},
		{"LOCAL": "Posto Externo", "QUANTIDADE": "999"},
	}
	anteriores := map[string]float64{"TANQUE CANTEIRO 1": 1000}

	resumos := ResumosPorLocal(registros, anteriores)

	require.Len(t, resumos, 2)
	assert.Equal(t, "Tanque Canteiro 1", resumos[0].Local)
	assert.Equal(t, 1400.0, resumos[0].EstoqueAtual)
	assert.Equal(t, "Comboio 01", resumos[1].Local)
	assert.Equal(t, 0.0, resumos[1].EstoqueAtual)
}
