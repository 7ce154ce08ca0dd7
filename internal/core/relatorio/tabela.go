// Package relatorio monta tabelas de relatório a partir de movimentações
// classificadas e as exporta para PDF e XLSX com formatação determinística.
package relatorio

import (
	"fmt"
	"sort"
	"strconv"

	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sentinelas de zero por contexto de tabela: resumos mostram "0",
// detalhes mostram "-".
const (
	ZeroResumo  = "0"
	ZeroDetalhe = "-"
)

// Opcoes controla a montagem das tabelas de detalhe.
type Opcoes struct {
	OrdenarPorDescricao bool
	Tipo                domain.TipoLocal
}

// Cabeçalhos fixos das tabelas.
var (
	CabecalhoSaidas = []string{"#", "Data", "Veículo", "Descrição", "Operador", "Anterior", "Atual", "Intervalo", "Qtd (L)", "Consumo"}

	CabecalhoHorimetros = []string{"Código", "Descrição", "Empresa", "Operador", "Hor. Anterior", "Hor. Atual", "Intervalo (h)", "Km Anterior", "Km Atual", "Intervalo (km)", "Litros"}
)

// CabecalhoEntradas devolve o cabeçalho da tabela de entradas conforme o tipo
// de local: tanques mostram o fornecedor, comboios o local de entrada.
func CabecalhoEntradas(tipo domain.TipoLocal) []string {
	if tipo == domain.LocalComboio {
		return []string{"#", "Data", "Local de Entrada", "Qtd (L)"}
	}
	return []string{"#", "Data", "Fornecedor", "Qtd (L)"}
}

// OrdenarRegistros devolve uma cópia dos registros ordenada alfabeticamente
// pela descrição, com colação do português brasileiro. A entrada nunca é
// mutada; a ordenação é estável.
func OrdenarRegistros(registros []planilha.Registro) []planilha.Registro {
	ordenados := make([]planilha.Registro, len(registros))
	copy(ordenados, registros)

	col := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(ordenados, func(i, j int) bool {
		a := planilha.Valor(ordenados[i], planilha.CampoDescricao)
		b := planilha.Valor(ordenados[j], planilha.CampoDescricao)
		return col.CompareString(a, b) < 0
	})
	return ordenados
}

// leituraPreferida escolhe o par anterior/atual da linha: o odômetro tem
// precedência quando qualquer um de seus valores é diferente de zero, senão
// cai no horímetro. O segundo retorno indica se o par escolhido é de
// distância (km) ou de horas.
func leituraPreferida(reg planilha.Registro) (anterior, atual float64, distancia bool) {
	kmAnterior := planilha.ValorNumero(reg, planilha.CampoKmAnterior)
	kmAtual := planilha.ValorNumero(reg, planilha.CampoKmAtual)
	if kmAnterior != 0 || kmAtual != 0 {
		return kmAnterior, kmAtual, true
	}

	horAnterior := planilha.ValorNumero(reg, planilha.CampoHorimetroAnterior)
	horAtual := planilha.ValorNumero(reg, planilha.CampoHorimetroAtual)
	return horAnterior, horAtual, false
}

// acumulador carrega os totais correntes durante a montagem em passada única.
type acumulador struct {
	totalQtd    float64
	somaConsumo float64
	numConsumo  int
}

// MontarLinhasSaida converte movimentações de saída em linhas de exibição com
// campos derivados (intervalo e consumo) e uma linha final de totais.
//
// O consumo inverte de semântica conforme o tipo de leitura: com odômetro é
// intervalo/quantidade (km por litro); com horímetro é quantidade/intervalo
// (litros por hora). A linha de total traz a quantidade somada e a média dos
// consumos calculados ("Média: X"), ou "-" quando nenhuma linha teve consumo.
func MontarLinhasSaida(registros []planilha.Registro, opts Opcoes) domain.TabelaRelatorio {
	if opts.OrdenarPorDescricao {
		registros = OrdenarRegistros(registros)
	}

	var acc acumulador
	linhas := make([][]string, 0, len(registros))

	for i, reg := range registros {
		qtd := planilha.ValorNumero(reg, planilha.CampoQuantidade)
		anterior, atual, distancia := leituraPreferida(reg)

		intervalo := 0.0
		if anterior > 0 && atual > 0 {
			intervalo = atual - anterior
		}

		consumo := ""
		if qtd > 0 && intervalo > 0 {
			var razao float64
			if distancia {
				razao = intervalo / qtd
			} else {
				razao = qtd / intervalo
			}
			acc.somaConsumo += razao
			acc.numConsumo++
			consumo = planilha.FormatarNumero(razao, 2, ZeroDetalhe)
			if distancia {
				consumo += " km/L"
			} else {
				consumo += " L/h"
			}
		} else {
			consumo = ZeroDetalhe
		}

		acc.totalQtd += qtd

		linhas = append(linhas, []string{
			strconv.Itoa(i + 1),
			planilha.Valor(reg, planilha.CampoData),
			planilha.Valor(reg, planilha.CampoVeiculo),
			planilha.Valor(reg, planilha.CampoDescricao),
			planilha.Valor(reg, planilha.CampoOperador),
			planilha.FormatarNumero(anterior, 2, ZeroDetalhe),
			planilha.FormatarNumero(atual, 2, ZeroDetalhe),
			planilha.FormatarNumero(intervalo, 2, ZeroDetalhe),
			planilha.FormatarNumero(qtd, 2, ZeroDetalhe),
			consumo,
		})
	}

	media := ZeroDetalhe
	if acc.numConsumo > 0 {
		media = fmt.Sprintf("Média: %s", planilha.FormatarNumero(acc.somaConsumo/float64(acc.numConsumo), 2, ZeroResumo))
	}

	total := []string{"", "", "", "Total", "", "", "", "", planilha.FormatarNumero(acc.totalQtd, 2, ZeroResumo), media}

	return domain.TabelaRelatorio{Linhas: linhas, Total: total}
}

// MontarLinhasEntrada converte movimentações de entrada na forma reduzida:
// índice, data, contraparte (fornecedor ou local de entrada, conforme o tipo
// de local) e quantidade com sufixo de unidade. A linha de total soma apenas
// a quantidade.
func MontarLinhasEntrada(registros []planilha.Registro, opts Opcoes) domain.TabelaRelatorio {
	if opts.OrdenarPorDescricao {
		registros = OrdenarRegistros(registros)
	}

	campoContraparte := planilha.CampoFornecedor
	if opts.Tipo == domain.LocalComboio {
		campoContraparte = planilha.CampoLocalEntrada
	}

	var totalQtd float64
	linhas := make([][]string, 0, len(registros))

	for i, reg := range registros {
		qtd := planilha.ValorNumero(reg, planilha.CampoQuantidade)
		totalQtd += qtd

		linhas = append(linhas, []string{
			strconv.Itoa(i + 1),
			planilha.Valor(reg, planilha.CampoData),
			planilha.Valor(reg, campoContraparte),
			planilha.FormatarNumero(qtd, 2, ZeroDetalhe) + " L",
		})
	}

	total := []string{"", "", "Total", planilha.FormatarNumero(totalQtd, 2, ZeroResumo) + " L"}

	return domain.TabelaRelatorio{Linhas: linhas, Total: total}
}

// MontarLinhasHorimetro converte os resumos de uso por veículo em linhas de
// exibição. Valores zerados aparecem como "-"; intervalos negativos são
// exibidos como estão, servindo de alerta de leitura inconsistente.
func MontarLinhasHorimetro(resumos []domain.ResumoUso) domain.TabelaRelatorio {
	var totalLitros float64
	linhas := make([][]string, 0, len(resumos))

	for _, r := range resumos {
		totalLitros += r.TotalLitros

		linhas = append(linhas, []string{
			r.Codigo,
			r.Descricao,
			r.Empresa,
			r.Operador,
			planilha.FormatarNumero(r.HorimetroAnterior, 2, ZeroDetalhe),
			planilha.FormatarNumero(r.HorimetroAtual, 2, ZeroDetalhe),
			planilha.FormatarNumero(r.IntervaloHoras, 2, ZeroDetalhe),
			planilha.FormatarNumero(r.KmAnterior, 2, ZeroDetalhe),
			planilha.FormatarNumero(r.KmAtual, 2, ZeroDetalhe),
			planilha.FormatarNumero(r.IntervaloKm, 2, ZeroDetalhe),
			planilha.FormatarNumero(r.TotalLitros, 2, ZeroDetalhe),
		})
	}

	total := make([]string, len(CabecalhoHorimetros))
	total[1] = "Total"
	total[len(total)-1] = planilha.FormatarNumero(totalLitros, 2, ZeroResumo)

	return domain.TabelaRelatorio{Linhas: linhas, Total: total}
}
