package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"frota-service/internal/api/responses"
	"frota-service/internal/core/historico"
	"frota-service/internal/core/planilha"
	"frota-service/internal/core/relatorio"
	"frota-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Tipos MIME dos artefatos exportados.
const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RelatorioHandler lida com as requisições da API de geração de relatórios.
type RelatorioHandler struct {
	service relatorio.Service
}

// NewRelatorioHandler cria um novo handler de relatórios.
func NewRelatorioHandler(service relatorio.Service) *RelatorioHandler {
	return &RelatorioHandler{
		service: service,
	}
}

// abrirPlanilha valida a extensão e abre um arquivo de formulário.
func abrirPlanilha(c *gin.Context, campo string) (multipart.File, string, bool) {
	header, err := c.FormFile(campo)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Arquivo %q (.csv, .xls, .xlsx) não encontrado ou inválido", campo))
		return nil, "", false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".xls" && ext != ".xlsx" {
		responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Extensão de arquivo não suportada: %s", ext))
		return nil, "", false
	}

	file, err := header.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, fmt.Sprintf("Não foi possível abrir o arquivo %q", campo))
		return nil, "", false
	}
	return file, header.Filename, true
}

// dataDeReferencia lê o campo "data" (dd/MM/yyyy); ausente, usa a data atual.
func dataDeReferencia(c *gin.Context) (time.Time, bool) {
	raw := c.PostForm("data")
	if raw == "" {
		return time.Now(), true
	}
	data, err := time.Parse(planilha.FormatoData, raw)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Data de referência inválida: %q (esperado dd/MM/aaaa)", raw))
		return time.Time{}, false
	}
	return data, true
}

func ordenarPorDescricao(c *gin.Context) bool {
	v := strings.ToLower(strings.TrimSpace(c.PostForm("ordenar")))
	return v == "1" || v == "true" || v == "sim"
}

func (h *RelatorioHandler) exportarMovimentos(c *gin.Context, tipo domain.TipoLocal, xlsx bool) {
	movimentos, nomeArquivo, ok := abrirPlanilha(c, "movimentosFile")
	if !ok {
		return
	}
	defer movimentos.Close()

	data, ok := dataDeReferencia(c)
	if !ok {
		return
	}
	ordenar := ordenarPorDescricao(c)
	estoqueAnterior := planilha.ParseNumero(c.PostForm("estoqueAnterior"))

	var conteudo []byte
	var nome string
	var err error
	if xlsx {
		conteudo, nome, err = h.service.ExportarMovimentosXLSX(movimentos, nomeArquivo, tipo, data, ordenar)
	} else {
		conteudo, nome, err = h.service.ExportarMovimentosPDF(movimentos, nomeArquivo, tipo, data, estoqueAnterior, ordenar)
	}
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o relatório", err.Error())
		return
	}

	tipoConteudo := mimePDF
	if xlsx {
		tipoConteudo = mimeXLSX
	}
	responses.Download(c, nome, tipoConteudo, conteudo)
}

// HandleTanquePDF gera o relatório PDF de movimentações de tanques.
func (h *RelatorioHandler) HandleTanquePDF(c *gin.Context) {
	h.exportarMovimentos(c, domain.LocalTanque, false)
}

// HandleTanqueXLSX gera o relatório XLSX de movimentações de tanques.
func (h *RelatorioHandler) HandleTanqueXLSX(c *gin.Context) {
	h.exportarMovimentos(c, domain.LocalTanque, true)
}

// HandleComboioPDF gera o relatório PDF de movimentações de comboios.
func (h *RelatorioHandler) HandleComboioPDF(c *gin.Context) {
	h.exportarMovimentos(c, domain.LocalComboio, false)
}

// HandleComboioXLSX gera o relatório XLSX de movimentações de comboios.
func (h *RelatorioHandler) HandleComboioXLSX(c *gin.Context) {
	h.exportarMovimentos(c, domain.LocalComboio, true)
}

// HandleCombinadoPDF gera o relatório PDF combinado de tanques e comboios em
// um único documento.
func (h *RelatorioHandler) HandleCombinadoPDF(c *gin.Context) {
	tanques, nomeTanques, ok := abrirPlanilha(c, "tanquesFile")
	if !ok {
		return
	}
	defer tanques.Close()

	comboios, nomeComboios, ok := abrirPlanilha(c, "comboiosFile")
	if !ok {
		return
	}
	defer comboios.Close()

	data, ok := dataDeReferencia(c)
	if !ok {
		return
	}

	conteudo, nome, err := h.service.ExportarCombinadoPDF(
		tanques, nomeTanques,
		comboios, nomeComboios,
		data,
		planilha.ParseNumero(c.PostForm("estoqueAnteriorTanques")),
		planilha.ParseNumero(c.PostForm("estoqueAnteriorComboios")),
		ordenarPorDescricao(c),
	)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o relatório combinado", err.Error())
		return
	}

	responses.Download(c, nome, mimePDF, conteudo)
}

// filtrosHorimetro monta os filtros do relatório de horímetros a partir do
// formulário: período inclusivo, empresa, categoria e texto de busca.
func filtrosHorimetro(c *gin.Context) (relatorio.FiltrosHorimetro, bool) {
	filtros := relatorio.FiltrosHorimetro{
		Empresa:   c.PostForm("empresa"),
		Categoria: c.PostForm("categoria"),
		Busca:     c.PostForm("busca"),
	}

	inicioRaw := c.PostForm("dataInicio")
	fimRaw := c.PostForm("dataFim")
	if inicioRaw != "" || fimRaw != "" {
		inicio, err := time.Parse(planilha.FormatoData, inicioRaw)
		if err != nil {
			responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Data inicial inválida: %q", inicioRaw))
			return filtros, false
		}
		fim, err := time.Parse(planilha.FormatoData, fimRaw)
		if err != nil {
			responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Data final inválida: %q", fimRaw))
			return filtros, false
		}
		filtros.Periodo = &historico.Periodo{Inicio: inicio, Fim: fim}
	}

	return filtros, true
}

func (h *RelatorioHandler) exportarHorimetros(c *gin.Context, exportar func(leituras io.Reader, nomeLeituras string, frota io.Reader, nomeFrota string, data time.Time, filtros relatorio.FiltrosHorimetro) ([]byte, string, error), tipoConteudo string) {
	leituras, nomeLeituras, ok := abrirPlanilha(c, "leiturasFile")
	if !ok {
		return
	}
	defer leituras.Close()

	frota, nomeFrota, ok := abrirPlanilha(c, "frotaFile")
	if !ok {
		return
	}
	defer frota.Close()

	data, ok := dataDeReferencia(c)
	if !ok {
		return
	}
	filtros, ok := filtrosHorimetro(c)
	if !ok {
		return
	}

	conteudo, nome, err := exportar(leituras, nomeLeituras, frota, nomeFrota, data, filtros)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o relatório de horímetros", err.Error())
		return
	}

	responses.Download(c, nome, tipoConteudo, conteudo)
}

// HandleHorimetrosPDF gera o relatório PDF de horímetros da frota.
func (h *RelatorioHandler) HandleHorimetrosPDF(c *gin.Context) {
	h.exportarHorimetros(c, h.service.ExportarHorimetrosPDF, mimePDF)
}

// HandleHorimetrosXLSX gera o relatório XLSX de horímetros da frota.
func (h *RelatorioHandler) HandleHorimetrosXLSX(c *gin.Context) {
	h.exportarHorimetros(c, h.service.ExportarHorimetrosXLSX, mimeXLSX)
}
