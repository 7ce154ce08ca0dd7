package estoque

import (
	"fmt"
	"io"
	"time"

	"frota-service/internal/core/movimento"
	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"
)

// Service define a interface do painel de estoque consumido pela API.
type Service interface {
	ResumosDeArquivo(movimentos io.Reader, nomeArquivo string, anteriores map[string]float64) ([]domain.ResumoEstoque, domain.ResumoEstoque, error)
	ResumoDeHoje(serie io.Reader, nomeArquivo string, hoje time.Time) (domain.LinhaEstoqueDiario, bool, error)
}

type service struct{}

// NewService cria uma nova instância do serviço de estoque.
func NewService() Service {
	return &service{}
}

// ResumosPorLocal agrupa as movimentações pelo texto do campo de local e
// calcula um resumo por local, na ordem de primeira aparição. Linhas com
// local de tipo desconhecido ficam fora das agregações. O saldo anterior de
// cada local vem do mapa, chaveado pelo nome normalizado.
func ResumosPorLocal(registros []planilha.Registro, anteriores map[string]float64) []domain.ResumoEstoque {
	type grupo struct {
		nome string
		tipo domain.TipoLocal
		regs []planilha.Registro
	}

	var ordem []string
	grupos := make(map[string]*grupo)

	for _, reg := range registros {
		local := planilha.Valor(reg, planilha.CampoLocal)
		tipo := movimento.TipoDeLocal(local)
		if tipo == domain.LocalOutro {
			continue
		}

		chave := planilha.NormalizarTexto(local)
		g, ok := grupos[chave]
		if !ok {
			g = &grupo{nome: local, tipo: tipo}
			grupos[chave] = g
			ordem = append(ordem, chave)
		}
		g.regs = append(g.regs, reg)
	}

	resumos := make([]domain.ResumoEstoque, 0, len(ordem))
	for _, chave := range ordem {
		g := grupos[chave]
		resumos = append(resumos, CalcularResumo(g.nome, g.tipo, anteriores[chave], g.regs))
	}
	return resumos
}

func (svc *service) ResumosDeArquivo(movimentos io.Reader, nomeArquivo string, anteriores map[string]float64) ([]domain.ResumoEstoque, domain.ResumoEstoque, error) {
	registros, err := planilha.CarregarRegistros(movimentos, nomeArquivo)
	if err != nil {
		return nil, domain.ResumoEstoque{}, fmt.Errorf("erro ao carregar arquivo de movimentações: %w", err)
	}

	resumos := ResumosPorLocal(registros, anteriores)
	return resumos, ConsolidarResumos(resumos), nil
}

func (svc *service) ResumoDeHoje(serie io.Reader, nomeArquivo string, hoje time.Time) (domain.LinhaEstoqueDiario, bool, error) {
	registros, err := planilha.CarregarRegistros(serie, nomeArquivo)
	if err != nil {
		return domain.LinhaEstoqueDiario{}, false, fmt.Errorf("erro ao carregar série diária: %w", err)
	}

	linha, ok := ResumoDoDia(planilha.SerieDeRegistros(registros), hoje)
	return linha, ok, nil
}
