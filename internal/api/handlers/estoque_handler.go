package handlers

import (
	"net/http"
	"strings"

	"frota-service/internal/api/responses"
	"frota-service/internal/core/estoque"
	"frota-service/internal/core/planilha"

	"github.com/gin-gonic/gin"
)

// EstoqueHandler lida com as requisições do painel de estoque.
type EstoqueHandler struct {
	service estoque.Service
}

// NewEstoqueHandler cria um novo handler de estoque.
func NewEstoqueHandler(service estoque.Service) *EstoqueHandler {
	return &EstoqueHandler{
		service: service,
	}
}

// anterioresDoForm lê o campo "anteriores" no formato
// "Tanque Central=1.000,50;Comboio 01=350" e devolve o mapa de saldos
// anteriores chaveado pelo nome normalizado do local.
func anterioresDoForm(c *gin.Context) map[string]float64 {
	raw := c.PostForm("anteriores")
	if raw == "" {
		return nil
	}

	anteriores := make(map[string]float64)
	for _, par := range strings.Split(raw, ";") {
		partes := strings.SplitN(par, "=", 2)
		if len(partes) != 2 {
			continue
		}
		chave := planilha.NormalizarTexto(partes[0])
		if chave == "" {
			continue
		}
		anteriores[chave] = planilha.ParseNumero(partes[1])
	}
	return anteriores
}

// HandleResumo calcula os resumos de estoque por local e o consolidado a
// partir de uma planilha de movimentações enviada.
func (h *EstoqueHandler) HandleResumo(c *gin.Context) {
	movimentos, nomeArquivo, ok := abrirPlanilha(c, "movimentosFile")
	if !ok {
		return
	}
	defer movimentos.Close()

	resumos, consolidado, err := h.service.ResumosDeArquivo(movimentos, nomeArquivo, anterioresDoForm(c))
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao calcular o resumo de estoque", err.Error())
		return
	}

	responses.Success(c, gin.H{
		"locais":      resumos,
		"consolidado": consolidado,
	}, "Resumo de estoque calculado")
}

// HandleResumoDeHoje resolve o estoque do dia a partir da série diária
// pré-agregada de um local.
func (h *EstoqueHandler) HandleResumoDeHoje(c *gin.Context) {
	serie, nomeArquivo, ok := abrirPlanilha(c, "serieFile")
	if !ok {
		return
	}
	defer serie.Close()

	hoje, ok := dataDeReferencia(c)
	if !ok {
		return
	}

	linha, encontrado, err := h.service.ResumoDeHoje(serie, nomeArquivo, hoje)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao resolver o estoque do dia", err.Error())
		return
	}
	if !encontrado {
		responses.Error(c, http.StatusNotFound, "Nenhuma linha de estoque encontrada na série enviada")
		return
	}

	responses.Success(c, linha, "Estoque do dia resolvido")
}
