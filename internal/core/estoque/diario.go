package estoque

import (
	"time"

	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"
)

// ResumoDoDia resolve "o estoque de hoje" de um local a partir da série
// diária pré-agregada. Primeiro procura a linha cuja data bate exatamente
// com a data de referência (igualdade de string dd/MM/yyyy ou de data
// interpretada); se não houver, recua para a linha mais recente não vazia.
// Linhas com estoque, entradas e saídas todos zerados contam como vazias e
// são puladas durante o recuo.
func ResumoDoDia(serie []domain.LinhaEstoqueDiario, hoje time.Time) (domain.LinhaEstoqueDiario, bool) {
	alvo := hoje.Format(planilha.FormatoData)

	for _, linha := range serie {
		if linha.Data == alvo {
			return linha, true
		}
		if d, err := time.Parse(planilha.FormatoData, linha.Data); err == nil {
			if d.Year() == hoje.Year() && d.Month() == hoje.Month() && d.Day() == hoje.Day() {
				return linha, true
			}
		}
	}

	// recuo: a linha mais recente com algum movimento ou saldo
	for i := len(serie) - 1; i >= 0; i-- {
		linha := serie[i]
		if linha.EstoqueAtual == 0 && linha.Entradas == 0 && linha.Saidas == 0 {
			continue
		}
		return linha, true
	}

	return domain.LinhaEstoqueDiario{}, false
}
