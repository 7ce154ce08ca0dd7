package historico

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-service/internal/domain"
)

func dia(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestAgregarUsoCobreTodaAFrota(t *testing.T) {
	frota := []domain.Veiculo{
		{Codigo: "ESC-01", Descricao: "Escavadeira Hidráulica", Categoria: "Escavadeira"},
		{Codigo: "CAM-02", Descricao: "Caminhão Basculante", Categoria: "Caminhão"},
	}
	leituras := []domain.Leitura{
		{Data: dia(10), Codigo: "ESC-01", HorimetroAnterior: 100, HorimetroAtual: 110, Quantidade: 50},
		{Data: dia(12), Codigo: "ESC-01", HorimetroAnterior: 110, HorimetroAtual: 120, Quantidade: 30},
	}

	resumos := AgregarUso(leituras, frota, nil)

	require.Len(t, resumos, 2)

	esc := resumos[0]
	assert.Equal(t, "ESC-01", esc.Codigo)
	assert.True(t, esc.Equipamento)
	assert.Equal(t, 100.0, esc.HorimetroAnterior)
	assert.Equal(t, 120.0, esc.HorimetroAtual)
	assert.Equal(t, 20.0, esc.IntervaloHoras)
	assert.Equal(t, 80.0, esc.TotalLitros)

	// veículo sem leituras permanece no resultado, zerado
	cam := resumos[1]
	assert.Equal(t, "CAM-02", cam.Codigo)
	assert.False(t, cam.Equipamento)
	assert.Equal(t, 0.0, cam.HorimetroAtual)
	assert.Equal(t, 0.0, cam.TotalLitros)
}

func TestAgregarUsoAtualEhMaximoObservado(t *testing.T) {
	frota := []domain.Veiculo{{Codigo: "TRA-03", Categoria: "Trator"}}
	leituras := []domain.Leitura{
		{Data: dia(15), Codigo: "TRA-03", HorimetroAnterior: 210, HorimetroAtual: 205},
		{Data: dia(11), Codigo: "TRA-03", HorimetroAnterior: 200, HorimetroAtual: 212},
	}

	resumos := AgregarUso(leituras, frota, nil)

	require.Len(t, resumos, 1)
	// baseline da leitura mais antiga; atual é o máximo, mesmo vindo de uma
	// leitura fora de ordem
	assert.Equal(t, 200.0, resumos[0].HorimetroAnterior)
	assert.Equal(t, 212.0, resumos[0].HorimetroAtual)
	assert.Equal(t, 12.0, resumos[0].IntervaloHoras)
}

func TestAgregarUsoPreservaIntervaloNegativo(t *testing.T) {
	frota := []domain.Veiculo{{Codigo: "GER-04"}}
	leituras := []domain.Leitura{
		{Data: dia(5), Codigo: "GER-04", HorimetroAnterior: 500, HorimetroAtual: 450},
	}

	resumos := AgregarUso(leituras, frota, nil)

	require.Len(t, resumos, 1)
	assert.Equal(t, -50.0, resumos[0].IntervaloHoras)
}

func TestAgregarUsoFiltraPorPeriodo(t *testing.T) {
	frota := []domain.Veiculo{{Codigo: "CAM-02"}}
	leituras := []domain.Leitura{
		{Data: dia(1), Codigo: "CAM-02", Quantidade: 40},
		{Data: dia(15), Codigo: "CAM-02", Quantidade: 25},
		{Data: dia(31), Codigo: "CAM-02", Quantidade: 10},
	}

	filtro := &Periodo{Inicio: dia(10), Fim: dia(31)}
	resumos := AgregarUso(leituras, frota, filtro)

	require.Len(t, resumos, 1)
	// filtro inclusivo nas duas pontas
	assert.Equal(t, 35.0, resumos[0].TotalLitros)
}

func TestAgregarUsoCasaPorDescricao(t *testing.T) {
	frota := []domain.Veiculo{{Codigo: "ESC-01", Descricao: "Escavadeira Hidráulica"}}
	leituras := []domain.Leitura{
		// código digitado errado em campo; a descrição casa
		{Data: dia(3), Codigo: "ESC01X", Descricao: "escavadeira hidraulica", Quantidade: 60},
	}

	resumos := AgregarUso(leituras, frota, nil)

	require.Len(t, resumos, 1)
	assert.Equal(t, 60.0, resumos[0].TotalLitros)
}

func TestEhEquipamento(t *testing.T) {
	assert.True(t, EhEquipamento("Escavadeira"))
	assert.True(t, EhEquipamento("PÁ CARREGADEIRA"))
	assert.True(t, EhEquipamento("Máquina de Esteira"))
	assert.False(t, EhEquipamento("Caminhão"))
	assert.False(t, EhEquipamento(""))
}

func TestFiltrarFrota(t *testing.T) {
	frota := []domain.Veiculo{
		{Codigo: "ESC-01", Descricao: "Escavadeira Hidráulica", Empresa: "Obra Norte", Categoria: "Escavadeira"},
		{Codigo: "CAM-02", Descricao: "Caminhão Basculante", Empresa: "Obra Sul", Categoria: "Caminhão"},
		{Codigo: "TRA-03", Descricao: "Trator de Esteira", Empresa: "Obra Norte", Categoria: "Trator"},
	}

	porEmpresa := FiltrarFrota(frota, "obra norte", "", "")
	require.Len(t, porEmpresa, 2)

	porCategoria := FiltrarFrota(frota, "", "caminhão", "")
	require.Len(t, porCategoria, 1)
	assert.Equal(t, "CAM-02", porCategoria[0].Codigo)

	porBusca := FiltrarFrota(frota, "", "", "esteira")
	require.Len(t, porBusca, 1)
	assert.Equal(t, "TRA-03", porBusca[0].Codigo)

	semFiltro := FiltrarFrota(frota, "", "", "")
	assert.Len(t, semFiltro, 3)
}
