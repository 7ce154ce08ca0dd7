package relatorio

import (
	"bytes"
	"fmt"
	"time"

	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// Geometria A4 em milímetros e o limite de espaço restante abaixo do qual uma
// nova seção força quebra de página.
const (
	alturaPaginaA4     = 297.0
	margemRodape       = 20.0
	alturaLinhaTabela  = 6.0
	alturaCabecalhoSec = 18.0
)

// rodapeEsquerda é a marca fixa exibida em todas as páginas.
const rodapeEsquerda = "Controle de Abastecimento"

// avisoSemRegistros é exibido no lugar de seções sem linhas; omitir a seção
// silenciosamente não é permitido.
const avisoSemRegistros = "Nenhum registro encontrado"

// Cores por tema de seção.
var (
	corCabecalho = [3]int{41, 84, 144}
	corSaidas    = [3]int{192, 57, 43}
	corEntradas  = [3]int{39, 174, 96}
	corTexto     = [3]int{50, 50, 50}
	corZebra     = [3]int{240, 240, 240}
)

var largurasSaidas = []float64{8, 18, 20, 36, 24, 16, 16, 16, 16, 20}
var largurasEntradas = []float64{10, 30, 110, 40}
var largurasHorimetros = []float64{14, 30, 20, 20, 15, 15, 15, 15, 15, 15, 16}

// DadosLocal reúne tudo que um local contribui para um relatório: o resumo de
// estoque e as movimentações já particionadas entre saídas e entradas.
type DadosLocal struct {
	Nome     string
	Tipo     domain.TipoLocal
	Resumo   domain.ResumoEstoque
	Saidas   []planilha.Registro
	Entradas []planilha.Registro
}

// PrecisaQuebra decide, como função pura de posição e alturas, se a próxima
// seção ainda cabe na página corrente.
func PrecisaQuebra(yAtual, alturaPagina, alturaProxima float64) bool {
	return yAtual+alturaProxima > alturaPagina-margemRodape
}

// NomeArquivoPDF monta o nome do arquivo a partir do rótulo do relatório e da
// data de referência (nunca do relógio de parede).
func NomeArquivoPDF(rotulo string, data time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", rotulo, data.Format("02-01-2006"))
}

// ExportarPDF gera o documento completo de um relatório de movimentações:
// para cada local, um cabeçalho colorido, a tabela de resumo de estoque, a
// seção de saídas (vermelha) e a de entradas (verde). Locais combinados são
// renderizados sequencialmente no mesmo documento e o rodapé com paginação
// "Página N de T" cobre todas as páginas ao final.
func ExportarPDF(locais []DadosLocal, rotulo string, data time.Time, opts Opcoes) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("{nb}")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(rodapeEsquerda), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	for _, local := range locais {
		optsLocal := opts
		optsLocal.Tipo = local.Tipo

		pdf.AddPage()
		desenharCabecalho(pdf, tr, local.Nome, rotulo, data)
		desenharResumo(pdf, tr, local.Resumo)

		saidas := MontarLinhasSaida(local.Saidas, optsLocal)
		desenharSecao(pdf, tr, fmt.Sprintf("Saídas (%d)", len(local.Saidas)), corSaidas, CabecalhoSaidas, largurasSaidas, saidas, len(local.Saidas) > 0)

		entradas := MontarLinhasEntrada(local.Entradas, optsLocal)
		desenharSecao(pdf, tr, fmt.Sprintf("Entradas (%d)", len(local.Entradas)), corEntradas, CabecalhoEntradas(local.Tipo), largurasEntradas, entradas, len(local.Entradas) > 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("erro ao gerar PDF do relatório: %w", err)
	}
	return buf.Bytes(), NomeArquivoPDF(rotulo, data), nil
}

// ExportarPDFHorimetros gera o relatório de horímetros, com os resumos de uso
// separados em dois grupos de exibição: veículos e equipamentos.
func ExportarPDFHorimetros(resumos []domain.ResumoUso, data time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("{nb}")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(rodapeEsquerda), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	var veiculos, equipamentos []domain.ResumoUso
	for _, r := range resumos {
		if r.Equipamento {
			equipamentos = append(equipamentos, r)
		} else {
			veiculos = append(veiculos, r)
		}
	}

	pdf.AddPage()
	desenharCabecalho(pdf, tr, "Frota", "Relatório de Horímetros", data)

	tabVeiculos := MontarLinhasHorimetro(veiculos)
	desenharSecao(pdf, tr, fmt.Sprintf("Veículos (%d)", len(veiculos)), corCabecalho, CabecalhoHorimetros, largurasHorimetros, tabVeiculos, len(veiculos) > 0)

	tabEquipamentos := MontarLinhasHorimetro(equipamentos)
	desenharSecao(pdf, tr, fmt.Sprintf("Equipamentos (%d)", len(equipamentos)), corCabecalho, CabecalhoHorimetros, largurasHorimetros, tabEquipamentos, len(equipamentos) > 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("erro ao gerar PDF de horímetros: %w", err)
	}
	return buf.Bytes(), NomeArquivoPDF("RelatorioHorimetros", data), nil
}

func alturaPagina(pdf *gofpdf.Fpdf) float64 {
	_, h := pdf.GetPageSize()
	if h == 0 {
		return alturaPaginaA4
	}
	return h
}

func desenharCabecalho(pdf *gofpdf.Fpdf, tr func(string) string, nomeLocal, titulo string, data time.Time) {
	pdf.SetFillColor(corCabecalho[0], corCabecalho[1], corCabecalho[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s — %s", titulo, nomeLocal)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(corZebra[0], corZebra[1], corZebra[2])
	pdf.SetTextColor(corTexto[0], corTexto[1], corTexto[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Data de referência: %s", data.Format(planilha.FormatoData))), "", 1, "L", true, 0, "")
	pdf.Ln(6)
}

// desenharResumo imprime a tabela de resumo de estoque do local, com a linha
// de estoque atual destacada em negrito como total geral.
func desenharResumo(pdf *gofpdf.Fpdf, tr func(string) string, resumo domain.ResumoEstoque) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr("Resumo de Estoque"))
	pdf.Ln(8)

	linha := func(rotulo string, valor float64, negrito bool) {
		estilo := ""
		if negrito {
			estilo = "B"
		}
		pdf.SetFont("Arial", estilo, 10)
		pdf.SetTextColor(corTexto[0], corTexto[1], corTexto[2])
		pdf.CellFormat(120, alturaLinhaTabela, tr(rotulo), "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, alturaLinhaTabela, tr(planilha.FormatarNumero(valor, 2, ZeroResumo)+" L"), "1", 1, "R", false, 0, "")
	}

	linha("Estoque Anterior", resumo.EstoqueAnterior, false)
	linha("Entradas", resumo.Entradas, false)
	if resumo.Tipo == domain.LocalTanque {
		linha("Saídas para Comboios", resumo.SaidasComboio, false)
		linha("Saídas para Equipamentos", resumo.SaidasEquipamento, false)
	} else {
		linha("Saídas", resumo.SaidasTotal, false)
	}
	linha("Total Líquido", resumo.TotalLiquido, false)
	linha("Estoque Atual", resumo.EstoqueAtual, true)
	pdf.Ln(6)
}

// desenharSecao imprime um bloco de tabela com título temático e contagem.
// Seções sem linhas recebem o aviso de ausência de registros; a decisão de
// quebra de página é tomada antes do título e a cada linha.
func desenharSecao(pdf *gofpdf.Fpdf, tr func(string) string, titulo string, cor [3]int, cabecalho []string, larguras []float64, tabela domain.TabelaRelatorio, temLinhas bool) {
	if PrecisaQuebra(pdf.GetY(), alturaPagina(pdf), alturaCabecalhoSec) {
		pdf.AddPage()
	}

	pdf.SetFillColor(cor[0], cor[1], cor[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 9, tr("  "+titulo), "", 1, "L", true, 0, "")
	pdf.Ln(2)

	if !temLinhas {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(corTexto[0], corTexto[1], corTexto[2])
		pdf.CellFormat(0, 8, tr(avisoSemRegistros), "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	desenharLinhaTabela(pdf, tr, cabecalho, larguras, true, false)

	for i, linha := range tabela.Linhas {
		if PrecisaQuebra(pdf.GetY(), alturaPagina(pdf), alturaLinhaTabela) {
			pdf.AddPage()
			desenharLinhaTabela(pdf, tr, cabecalho, larguras, true, false)
		}
		desenharLinhaTabela(pdf, tr, linha, larguras, false, i%2 == 1)
	}

	if PrecisaQuebra(pdf.GetY(), alturaPagina(pdf), alturaLinhaTabela) {
		pdf.AddPage()
	}
	pdf.SetFont("Arial", "B", 9)
	desenharLinhaTabelaComEstilo(pdf, tr, tabela.Total, larguras, false)
	pdf.Ln(6)
}

func desenharLinhaTabela(pdf *gofpdf.Fpdf, tr func(string) string, celulas []string, larguras []float64, cabecalho, zebra bool) {
	if cabecalho {
		pdf.SetFont("Arial", "B", 9)
	} else {
		pdf.SetFont("Arial", "", 9)
	}
	pdf.SetTextColor(corTexto[0], corTexto[1], corTexto[2])
	if zebra {
		pdf.SetFillColor(corZebra[0], corZebra[1], corZebra[2])
	}
	desenharLinhaTabelaComEstilo(pdf, tr, celulas, larguras, zebra)
}

func desenharLinhaTabelaComEstilo(pdf *gofpdf.Fpdf, tr func(string) string, celulas []string, larguras []float64, preencher bool) {
	for i, celula := range celulas {
		if i >= len(larguras) {
			break
		}
		fim := 0
		if i == len(celulas)-1 {
			fim = 1
		}
		pdf.CellFormat(larguras[i], alturaLinhaTabela, tr(celula), "1", fim, "L", preencher, 0, "")
	}
}
