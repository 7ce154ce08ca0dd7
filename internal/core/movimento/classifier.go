// Package movimento classifica linhas cruas de movimentação de combustível
// em entradas/saídas e por tipo de local, sem nunca falhar: linhas que não
// casam com nenhum padrão conhecido recebem o tipo LocalOutro e são excluídas
// das agregações por local pelos chamadores.
package movimento

import (
	"strings"

	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"
)

// Classificacao é o resultado da classificação de uma linha de movimentação.
type Classificacao struct {
	Entrada bool
	Local   domain.TipoLocal
}

// Classificar decide se o registro é uma entrada (recebimento de combustível)
// ou saída (abastecimento) e a qual tipo de local pertence.
//
// A heurística de entrada é um OU sem precedência: basta o campo de tipo
// conter "entrada", ou o fornecedor estar preenchido, ou o local de entrada
// estar preenchido. Um registro com fornecedor preenchido mas tipo explícito
// de saída ainda classifica como entrada.
func Classificar(reg planilha.Registro) Classificacao {
	return Classificacao{
		Entrada: EhEntrada(reg),
		Local:   TipoDeLocal(planilha.Valor(reg, planilha.CampoLocal)),
	}
}

// EhEntrada aplica a heurística OU de classificação de entradas.
func EhEntrada(reg planilha.Registro) bool {
	tipo := strings.ToLower(planilha.Valor(reg, planilha.CampoTipo))
	if strings.Contains(tipo, "entrada") {
		return true
	}
	if planilha.Valor(reg, planilha.CampoFornecedor) != "" {
		return true
	}
	if planilha.Valor(reg, planilha.CampoLocalEntrada) != "" {
		return true
	}
	return false
}

// TipoDeLocal deriva o tipo de local a partir do texto livre do campo de local.
func TipoDeLocal(local string) domain.TipoLocal {
	l := strings.ToLower(local)
	switch {
	case strings.Contains(l, "tanque") || strings.Contains(l, "canteiro"):
		return domain.LocalTanque
	case strings.Contains(l, "comboio"):
		return domain.LocalComboio
	default:
		return domain.LocalOutro
	}
}

// SaidaParaComboio indica se uma saída de tanque teve um comboio como
// destino. Na ausência do indicador, a saída conta como equipamento.
func SaidaParaComboio(reg planilha.Registro) bool {
	destino := strings.ToLower(planilha.Valor(reg, planilha.CampoDestino))
	return strings.Contains(destino, "comboio")
}
