package relatorio

import (
	"fmt"
	"io"
	"time"

	"frota-service/internal/core/estoque"
	"frota-service/internal/core/historico"
	"frota-service/internal/core/movimento"
	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"
)

// Rótulos dos relatórios, usados nos nomes de arquivo.
const (
	RotuloTanques   = "RelatorioTanques"
	RotuloComboios  = "RelatorioComboios"
	RotuloCombinado = "RelatorioCombinado"
)

// FiltrosHorimetro reúne os filtros aceitos pelo relatório de horímetros.
type FiltrosHorimetro struct {
	Periodo   *historico.Periodo
	Empresa   string
	Categoria string
	Busca     string
}

// Service define a interface para a geração de relatórios exportáveis.
type Service interface {
	ExportarMovimentosPDF(movimentos io.Reader, nomeArquivo string, tipo domain.TipoLocal, data time.Time, estoqueAnterior float64, ordenar bool) ([]byte, string, error)
	ExportarMovimentosXLSX(movimentos io.Reader, nomeArquivo string, tipo domain.TipoLocal, data time.Time, ordenar bool) ([]byte, string, error)
	ExportarCombinadoPDF(tanques io.Reader, nomeTanques string, comboios io.Reader, nomeComboios string, data time.Time, anteriorTanques, anteriorComboios float64, ordenar bool) ([]byte, string, error)
	ExportarHorimetrosPDF(leituras io.Reader, nomeLeituras string, frota io.Reader, nomeFrota string, data time.Time, filtros FiltrosHorimetro) ([]byte, string, error)
	ExportarHorimetrosXLSX(leituras io.Reader, nomeLeituras string, frota io.Reader, nomeFrota string, data time.Time, filtros FiltrosHorimetro) ([]byte, string, error)
}

type service struct{}

// NewService cria uma nova instância do serviço de relatórios.
func NewService() Service {
	return &service{}
}

// ParticionarMovimentos separa os registros de um tipo de local entre saídas
// e entradas, descartando linhas de outros locais. Linhas que não casam com
// nenhum padrão de local nunca causam falha; apenas ficam de fora.
func ParticionarMovimentos(registros []planilha.Registro, tipo domain.TipoLocal) (saidas, entradas []planilha.Registro) {
	for _, reg := range registros {
		c := movimento.Classificar(reg)
		if c.Local != tipo {
			continue
		}
		if c.Entrada {
			entradas = append(entradas, reg)
		} else {
			saidas = append(saidas, reg)
		}
	}
	return saidas, entradas
}

func nomeLocal(tipo domain.TipoLocal) string {
	if tipo == domain.LocalComboio {
		return "Comboios"
	}
	return "Tanques"
}

func rotuloPorTipo(tipo domain.TipoLocal) string {
	if tipo == domain.LocalComboio {
		return RotuloComboios
	}
	return RotuloTanques
}

func montarDadosLocal(registros []planilha.Registro, tipo domain.TipoLocal, estoqueAnterior float64) DadosLocal {
	saidas, entradas := ParticionarMovimentos(registros, tipo)
	movimentosLocal := make([]planilha.Registro, 0, len(saidas)+len(entradas))
	movimentosLocal = append(movimentosLocal, saidas...)
	movimentosLocal = append(movimentosLocal, entradas...)

	return DadosLocal{
		Nome:     nomeLocal(tipo),
		Tipo:     tipo,
		Resumo:   estoque.CalcularResumo(nomeLocal(tipo), tipo, estoqueAnterior, movimentosLocal),
		Saidas:   saidas,
		Entradas: entradas,
	}
}

func (svc *service) ExportarMovimentosPDF(movimentos io.Reader, nomeArquivo string, tipo domain.TipoLocal, data time.Time, estoqueAnterior float64, ordenar bool) ([]byte, string, error) {
	registros, err := planilha.CarregarRegistros(movimentos, nomeArquivo)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao carregar arquivo de movimentações: %w", err)
	}

	local := montarDadosLocal(registros, tipo, estoqueAnterior)
	return ExportarPDF([]DadosLocal{local}, rotuloPorTipo(tipo), data, Opcoes{OrdenarPorDescricao: ordenar, Tipo: tipo})
}

func (svc *service) ExportarMovimentosXLSX(movimentos io.Reader, nomeArquivo string, tipo domain.TipoLocal, data time.Time, ordenar bool) ([]byte, string, error) {
	registros, err := planilha.CarregarRegistros(movimentos, nomeArquivo)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao carregar arquivo de movimentações: %w", err)
	}

	saidas, entradas := ParticionarMovimentos(registros, tipo)
	grupo := GrupoXLSX{Nome: nomeLocal(tipo), Registros: append(saidas, entradas...)}

	return ExportarXLSX([]GrupoXLSX{grupo}, rotuloPorTipo(tipo), data, Opcoes{OrdenarPorDescricao: ordenar, Tipo: tipo})
}

func (svc *service) ExportarCombinadoPDF(tanques io.Reader, nomeTanques string, comboios io.Reader, nomeComboios string, data time.Time, anteriorTanques, anteriorComboios float64, ordenar bool) ([]byte, string, error) {
	registrosTanques, err := planilha.CarregarRegistros(tanques, nomeTanques)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao carregar arquivo de tanques: %w", err)
	}
	registrosComboios, err := planilha.CarregarRegistros(comboios, nomeComboios)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao carregar arquivo de comboios: %w", err)
	}

	locais := []DadosLocal{
		montarDadosLocal(registrosTanques, domain.LocalTanque, anteriorTanques),
		montarDadosLocal(registrosComboios, domain.LocalComboio, anteriorComboios),
	}
	return ExportarPDF(locais, RotuloCombinado, data, Opcoes{OrdenarPorDescricao: ordenar})
}

func (svc *service) resumosDeUso(leituras io.Reader, nomeLeituras string, frota io.Reader, nomeFrota string, filtros FiltrosHorimetro) ([]domain.ResumoUso, error) {
	registrosLeituras, err := planilha.CarregarRegistros(leituras, nomeLeituras)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivo de leituras: %w", err)
	}
	registrosFrota, err := planilha.CarregarRegistros(frota, nomeFrota)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivo da frota: %w", err)
	}

	cadastro := historico.FiltrarFrota(planilha.FrotaDeRegistros(registrosFrota), filtros.Empresa, filtros.Categoria, filtros.Busca)
	return historico.AgregarUso(planilha.LeiturasDeRegistros(registrosLeituras), cadastro, filtros.Periodo), nil
}

func (svc *service) ExportarHorimetrosPDF(leituras io.Reader, nomeLeituras string, frota io.Reader, nomeFrota string, data time.Time, filtros FiltrosHorimetro) ([]byte, string, error) {
	resumos, err := svc.resumosDeUso(leituras, nomeLeituras, frota, nomeFrota, filtros)
	if err != nil {
		return nil, "", err
	}
	return ExportarPDFHorimetros(resumos, data)
}

func (svc *service) ExportarHorimetrosXLSX(leituras io.Reader, nomeLeituras string, frota io.Reader, nomeFrota string, data time.Time, filtros FiltrosHorimetro) ([]byte, string, error) {
	resumos, err := svc.resumosDeUso(leituras, nomeLeituras, frota, nomeFrota, filtros)
	if err != nil {
		return nil, "", err
	}
	return ExportarXLSXHorimetros(resumos, data)
}
