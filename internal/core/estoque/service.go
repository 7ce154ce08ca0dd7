// Package estoque deriva resumos de estoque consistentes a partir de linhas
// de movimentação classificadas: estoque anterior, entradas, saídas por
// destino e estoque atual, por local e consolidado.
package estoque

import (
	"frota-service/internal/core/movimento"
	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"
)

// CalcularResumo particiona as movimentações de um local entre entradas e
// saídas e reconcilia o estoque:
//
//	EstoqueAtual = max(0, EstoqueAnterior + Entradas - SaídasTotais)
//
// Para tanques as saídas são divididas por destino (comboio ou equipamento);
// para comboios existe um único total de saídas. Resultados negativos são
// sempre truncados em zero, nunca propagados.
func CalcularResumo(local string, tipo domain.TipoLocal, estoqueAnterior float64, registros []planilha.Registro) domain.ResumoEstoque {
	resumo := domain.ResumoEstoque{
		Local:           local,
		Tipo:            tipo,
		EstoqueAnterior: estoqueAnterior,
	}

	for _, reg := range registros {
		qtd := planilha.ValorNumero(reg, planilha.CampoQuantidade)

		if movimento.EhEntrada(reg) {
			resumo.Entradas += qtd
			continue
		}

		if tipo == domain.LocalTanque {
			if movimento.SaidaParaComboio(reg) {
				resumo.SaidasComboio += qtd
			} else {
				resumo.SaidasEquipamento += qtd
			}
		} else {
			resumo.SaidasTotal += qtd
		}
	}

	if tipo == domain.LocalTanque {
		resumo.SaidasTotal = resumo.SaidasComboio + resumo.SaidasEquipamento
	}

	resumo.TotalLiquido = resumo.Entradas - resumo.SaidasTotal
	resumo.EstoqueAtual = resumo.EstoqueAnterior + resumo.TotalLiquido
	if resumo.EstoqueAtual < 0 {
		resumo.EstoqueAtual = 0
	}

	return resumo
}

// ConsolidarResumos produz o resumo "todos os locais" somando cada campo dos
// resumos por local de forma independente. A consolidação nunca recalcula a
// partir das linhas cruas mescladas; a ordem das somas importa para a
// estabilidade numérica.
func ConsolidarResumos(resumos []domain.ResumoEstoque) domain.ResumoEstoque {
	total := domain.ResumoEstoque{Local: "Todos os locais"}

	for _, r := range resumos {
		total.EstoqueAnterior += r.EstoqueAnterior
		total.Entradas += r.Entradas
		total.SaidasComboio += r.SaidasComboio
		total.SaidasEquipamento += r.SaidasEquipamento
		total.SaidasTotal += r.SaidasTotal
		total.TotalLiquido += r.TotalLiquido
		total.EstoqueAtual += r.EstoqueAtual
	}

	return total
}
