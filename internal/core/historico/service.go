// Package historico agrega leituras de horímetro/odômetro por veículo,
// derivando baselines, valores atuais e intervalos de uso para os relatórios
// de horímetros.
package historico

import (
	"strings"
	"time"

	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"

	"github.com/schollz/closestmatch"
)

// Periodo delimita um filtro de datas inclusivo, com granularidade de dia.
type Periodo struct {
	Inicio time.Time
	Fim    time.Time
}

// palavrasEquipamento são os termos de categoria que classificam um veículo
// como equipamento (comparação sem acentos e sem caixa).
var palavrasEquipamento = []string{
	"EQUIPAMENTO",
	"MAQUINA",
	"TRATOR",
	"ESCAVADEIRA",
	"RETROESCAVADEIRA",
	"PA CARREGADEIRA",
	"ROLO",
	"MOTONIVELADORA",
	"COMPACTADOR",
	"GERADOR",
}

// EhEquipamento indica se a categoria descreve um equipamento. Usado apenas
// para separar os grupos de exibição; não altera a agregação numérica.
func EhEquipamento(categoria string) bool {
	n := planilha.NormalizarTexto(categoria)
	for _, palavra := range palavrasEquipamento {
		if strings.Contains(n, palavra) {
			return true
		}
	}
	return false
}

// AgregarUso agrupa as leituras por veículo e produz um resumo por entrada do
// cadastro da frota. Veículos sem leituras no filtro aparecem com campos
// zerados, garantindo cobertura completa do cadastro nos relatórios.
//
// O baseline "anterior" vem da leitura mais antiga do grupo; o valor "atual"
// é o máximo numérico observado em todas as leituras do grupo, protegendo
// contra dados fora de ordem ou parcialmente atualizados. Intervalos
// negativos são preservados como sinal, nunca truncados.
func AgregarUso(leituras []domain.Leitura, frota []domain.Veiculo, filtro *Periodo) []domain.ResumoUso {
	filtradas := filtrarPorPeriodo(leituras, filtro)
	grupos := agruparPorVeiculo(filtradas, frota)

	resumos := make([]domain.ResumoUso, 0, len(frota))
	for _, veiculo := range frota {
		resumo := domain.ResumoUso{
			Codigo:      veiculo.Codigo,
			Descricao:   veiculo.Descricao,
			Empresa:     veiculo.Empresa,
			Categoria:   veiculo.Categoria,
			Operador:    veiculo.Operador,
			Equipamento: EhEquipamento(veiculo.Categoria),
		}

		grupo := grupos[chaveVeiculo(veiculo)]
		if len(grupo) > 0 {
			preencherResumo(&resumo, grupo)
		}

		resumos = append(resumos, resumo)
	}
	return resumos
}

// FiltrarFrota restringe o cadastro por empresa, categoria e texto livre de
// busca (código ou descrição). Filtros vazios não restringem.
func FiltrarFrota(frota []domain.Veiculo, empresa, categoria, busca string) []domain.Veiculo {
	ne := planilha.NormalizarTexto(empresa)
	nc := planilha.NormalizarTexto(categoria)
	nb := planilha.NormalizarTexto(busca)

	var filtrada []domain.Veiculo
	for _, v := range frota {
		if ne != "" && !strings.Contains(planilha.NormalizarTexto(v.Empresa), ne) {
			continue
		}
		if nc != "" && !strings.Contains(planilha.NormalizarTexto(v.Categoria), nc) {
			continue
		}
		if nb != "" {
			alvo := planilha.NormalizarTexto(v.Codigo + " " + v.Descricao)
			if !strings.Contains(alvo, nb) {
				continue
			}
		}
		filtrada = append(filtrada, v)
	}
	return filtrada
}

func filtrarPorPeriodo(leituras []domain.Leitura, filtro *Periodo) []domain.Leitura {
	if filtro == nil {
		return leituras
	}

	inicio := diaInicial(filtro.Inicio)
	fim := diaFinal(filtro.Fim)

	var filtradas []domain.Leitura
	for _, l := range leituras {
		if l.Data.Before(inicio) || l.Data.After(fim) {
			continue
		}
		filtradas = append(filtradas, l)
	}
	return filtradas
}

func diaInicial(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func diaFinal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

func chaveVeiculo(v domain.Veiculo) string {
	if v.Codigo != "" {
		return planilha.NormalizarTexto(v.Codigo)
	}
	return planilha.NormalizarTexto(v.Descricao)
}

// agruparPorVeiculo casa cada leitura com uma entrada do cadastro. Leituras
// cujo código não bate exatamente são casadas de forma aproximada pela
// descrição, tolerando os textos livres digitados em campo.
func agruparPorVeiculo(leituras []domain.Leitura, frota []domain.Veiculo) map[string][]domain.Leitura {
	chaves := make(map[string]bool, len(frota)*2)
	var descricoes []string
	descParaChave := make(map[string]string, len(frota))

	for _, v := range frota {
		chaves[chaveVeiculo(v)] = true
		if v.Descricao != "" {
			nd := planilha.NormalizarTexto(v.Descricao)
			if _, existe := descParaChave[nd]; !existe {
				descricoes = append(descricoes, nd)
				descParaChave[nd] = chaveVeiculo(v)
			}
		}
	}

	var cm *closestmatch.ClosestMatch
	if len(descricoes) > 0 {
		cm = closestmatch.New(descricoes, []int{3, 4})
	}

	grupos := make(map[string][]domain.Leitura)
	for _, l := range leituras {
		chave := planilha.NormalizarTexto(l.Codigo)
		if chave != "" && chaves[chave] {
			grupos[chave] = append(grupos[chave], l)
			continue
		}

		nd := planilha.NormalizarTexto(l.Descricao)
		if destino, ok := descParaChave[nd]; ok {
			grupos[destino] = append(grupos[destino], l)
			continue
		}
		if cm != nil && nd != "" {
			if match := cm.Closest(nd); match != "" {
				grupos[descParaChave[match]] = append(grupos[descParaChave[match]], l)
			}
		}
	}
	return grupos
}

func preencherResumo(resumo *domain.ResumoUso, grupo []domain.Leitura) {
	maisAntiga := grupo[0]
	for _, l := range grupo {
		if l.Data.Before(maisAntiga.Data) {
			maisAntiga = l
		}

		// "atual" é o máximo observado em todo o grupo
		if l.HorimetroAtual > resumo.HorimetroAtual {
			resumo.HorimetroAtual = l.HorimetroAtual
		}
		if l.KmAtual > resumo.KmAtual {
			resumo.KmAtual = l.KmAtual
		}

		resumo.TotalLitros += l.Quantidade
	}

	resumo.HorimetroAnterior = maisAntiga.HorimetroAnterior
	resumo.KmAnterior = maisAntiga.KmAnterior
	resumo.IntervaloHoras = resumo.HorimetroAtual - resumo.HorimetroAnterior
	resumo.IntervaloKm = resumo.KmAtual - resumo.KmAnterior
}
