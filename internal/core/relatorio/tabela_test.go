package relatorio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"
)

func TestMontarLinhasSaidaConsumoPorDistancia(t *testing.T) {
	registros := []planilha.Registro{
		{"DATA": "01/02/2026", "VEICULO": "CAM-01", "KM ANTERIOR": "100", "KM ATUAL": "200", "QUANTIDADE": "10"},
	}

	tabela := MontarLinhasSaida(registros, Opcoes{})

	require.Len(t, tabela.Linhas, 1)
	linha := tabela.Linhas[0]
	assert.Equal(t, "100,00", linha[7])
	assert.Equal(t, "10,00", linha[8])
	// distância: intervalo / quantidade
	assert.Equal(t, "10,00 km/L", linha[9])
}

func TestMontarLinhasSaidaConsumoPorHoras(t *testing.T) {
	registros := []planilha.Registro{
		{"DATA": "01/02/2026", "VEICULO": "ESC-02", "HORIMETRO ANTERIOR": "50", "HORIMETRO ATUAL": "55", "QUANTIDADE": "10"},
	}

	tabela := MontarLinhasSaida(registros, Opcoes{})

	require.Len(t, tabela.Linhas, 1)
	linha := tabela.Linhas[0]
	assert.Equal(t, "5,00", linha[7])
	assert.Equal(t, "2,00 L/h", linha[9]) // horas: quantidade / intervalo
}

func TestMontarLinhasSaidaSemLeituras(t *testing.T) {
	registros := []planilha.Registro{
		{"DATA": "01/02/2026", "VEICULO": "GER-04", "QUANTIDADE": "30"},
	}

	tabela := MontarLinhasSaida(registros, Opcoes{})

	require.Len(t, tabela.Linhas, 1)
	linha := tabela.Linhas[0]
	assert.Equal(t, "-", linha[5])
	assert.Equal(t, "-", linha[6])
	assert.Equal(t, "-", linha[7])
	assert.Equal(t, "-", linha[9])
}

func TestMontarLinhasSaidaTotalEMedia(t *testing.T) {
	registros := []planilha.Registro{
		{"KM ANTERIOR": "100", "KM ATUAL": "200", "QUANTIDADE": "10"},
		{"HORIMETRO ANTERIOR": "50", "HORIMETRO ATUAL": "55", "QUANTIDADE": "10"},
		{"QUANTIDADE": "5"},
	}

	tabela := MontarLinhasSaida(registros, Opcoes{})

	assert.Equal(t, "Total", tabela.Total[3])
	assert.Equal(t, "25,00", tabela.Total[8])
	// média apenas das linhas com consumo calculado: (10 + 2) / 2
	assert.Equal(t, "Média: 6,00", tabela.Total[9])
}

func TestMontarLinhasSaidaSemConsumo(t *testing.T) {
	tabela := MontarLinhasSaida([]planilha.Registro{{"QUANTIDADE": "5"}}, Opcoes{})
	assert.Equal(t, "-", tabela.Total[9])
}

func TestMontarLinhasSaidaOrdenacao(t *testing.T) {
	registros := []planilha.Registro{
		{"DESCRICAO": "Zebra", "QUANTIDADE": "1"},
		{"DESCRICAO": "Alfa", "QUANTIDADE": "2"},
	}

	semOrdem := MontarLinhasSaida(registros, Opcoes{})
	assert.Equal(t, "Zebra", semOrdem.Linhas[0][3])
	assert.Equal(t, "Alfa", semOrdem.Linhas[1][3])

	ordenada := MontarLinhasSaida(registros, Opcoes{OrdenarPorDescricao: true})
	assert.Equal(t, "Alfa", ordenada.Linhas[0][3])
	assert.Equal(t, "Zebra", ordenada.Linhas[1][3])

	// a entrada original não é mutada
	assert.Equal(t, "Zebra", planilha.Valor(registros[0], planilha.CampoDescricao))
}

func TestMontarLinhasEntradaContraparte(t *testing.T) {
	registros := []planilha.Registro{
		{"DATA": "01/02/2026", "FORNECEDOR": "Posto Ipiranga", "LOCAL ENTRADA": "Tanque Canteiro 1", "QUANTIDADE": "500"},
	}

	tanque := MontarLinhasEntrada(registros, Opcoes{Tipo: domain.LocalTanque})
	require.Len(t, tanque.Linhas, 1)
	assert.Equal(t, "Posto Ipiranga", tanque.Linhas[0][2])
	assert.Equal(t, "500,00 L", tanque.Linhas[0][3])
	assert.Equal(t, "500,00 L", tanque.Total[3])

	comboio := MontarLinhasEntrada(registros, Opcoes{Tipo: domain.LocalComboio})
	assert.Equal(t, "Tanque Canteiro 1", comboio.Linhas[0][2])
}

func TestCabecalhoEntradasPorTipo(t *testing.T) {
	assert.Contains(t, CabecalhoEntradas(domain.LocalTanque), "Fornecedor")
	assert.Contains(t, CabecalhoEntradas(domain.LocalComboio), "Local de Entrada")
}

func TestMontarLinhasHorimetro(t *testing.T) {
	resumos := []domain.ResumoUso{
		{Codigo: "ESC-01", Descricao: "Escavadeira", HorimetroAnterior: 100, HorimetroAtual: 120, IntervaloHoras: 20, TotalLitros: 80},
		{Codigo: "TRA-03", HorimetroAnterior: 500, HorimetroAtual: 450, IntervaloHoras: -50, TotalLitros: 20},
	}

	tabela := MontarLinhasHorimetro(resumos)

	require.Len(t, tabela.Linhas, 2)
	assert.Equal(t, "20,00", tabela.Linhas[0][6])
	// intervalo negativo exibido como está
	assert.Equal(t, "-50,00", tabela.Linhas[1][6])
	assert.Equal(t, "-", tabela.Linhas[0][7])

	assert.Equal(t, "Total", tabela.Total[1])
	assert.Equal(t, "100,00", tabela.Total[len(tabela.Total)-1])
}
