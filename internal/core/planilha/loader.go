package planilha

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"frota-service/internal/domain"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// FormatoData é o formato brasileiro usado em todas as datas de planilha.
const FormatoData = "02/01/2006"

// CarregarRegistros lê uma planilha de movimentações (.xlsx, .xls ou .csv) e
// devolve uma lista de registros chaveados pelo cabeçalho encontrado.
func CarregarRegistros(file io.Reader, filename string) ([]Registro, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var linhas [][]string
	var err error

	switch ext {
	case ".xlsx":
		linhas, err = lerLinhasXLSX(file)
	case ".xls":
		linhas, err = lerLinhasXLS(file)
	case ".csv":
		linhas, err = lerLinhasCSV(file)
	default:
		return nil, fmt.Errorf("formato de arquivo de movimentações não suportado: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	return registrosDeLinhas(linhas), nil
}

func lerLinhasXLSX(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo .xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("o arquivo .xlsx não contém planilhas")
	}
	return f.GetRows(sheets[0])
}

func lerLinhasXLS(file io.Reader) ([][]string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	reader := bytes.NewReader(data)

	workbook, err := xls.OpenReader(reader)
	if err != nil {
		// talvez seja xlsx lido como bytes; tentar excelize
		if _, errX := excelize.OpenReader(bytes.NewReader(data)); errX == nil {
			return lerLinhasXLSX(bytes.NewReader(data))
		}
		return nil, fmt.Errorf("erro ao abrir arquivo .xls: %w", err)
	}

	if len(workbook.GetSheets()) == 0 {
		return nil, fmt.Errorf("o arquivo .xls não contém planilhas")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter planilha do arquivo .xls: %w", err)
	}

	var linhas [][]string
	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}
		linhas = append(linhas, cells)
	}
	return linhas, nil
}

func lerLinhasCSV(file io.Reader) ([][]string, error) {
	decoder := charmap.ISO8859_1.NewDecoder()
	reader := csv.NewReader(transform.NewReader(file, decoder))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	return reader.ReadAll()
}

// encontrarCabecalho procura nas primeiras linhas aquela que contém uma
// coluna de data ou quantidade, tratando-a como cabeçalho.
func encontrarCabecalho(linhas [][]string) int {
	maxBusca := 40
	if len(linhas) < maxBusca {
		maxBusca = len(linhas)
	}
	for i := 0; i < maxBusca; i++ {
		for _, cell := range linhas[i] {
			n := NormalizarTexto(cell)
			if n == "DATA" || strings.Contains(n, "QUANTIDADE") || strings.Contains(n, "QTD") {
				return i
			}
		}
	}
	return 0
}

func registrosDeLinhas(linhas [][]string) []Registro {
	if len(linhas) == 0 {
		return nil
	}

	idxCabecalho := encontrarCabecalho(linhas)
	cabecalho := linhas[idxCabecalho]

	var registros []Registro
	for i := idxCabecalho + 1; i < len(linhas); i++ {
		linha := linhas[i]

		vazia := true
		for _, cell := range linha {
			if strings.TrimSpace(cell) != "" {
				vazia = false
				break
			}
		}
		if vazia {
			continue
		}

		// linhas de totalização da própria planilha não são movimentações
		primeiro := NormalizarTexto(primeiraCelula(linha))
		if strings.Contains(primeiro, "TOTAL") || strings.Contains(primeiro, "TOTAIS") {
			continue
		}

		reg := make(Registro, len(cabecalho))
		for j, nome := range cabecalho {
			if strings.TrimSpace(nome) == "" {
				continue
			}
			if j < len(linha) {
				reg[nome] = strings.TrimSpace(linha[j])
			}
		}
		registros = append(registros, reg)
	}
	return registros
}

func primeiraCelula(linha []string) string {
	for _, cell := range linha {
		if strings.TrimSpace(cell) != "" {
			return cell
		}
	}
	return ""
}

// LeiturasDeRegistros converte registros crus em leituras de
// horímetro/odômetro. Registros sem data válida são descartados.
func LeiturasDeRegistros(registros []Registro) []domain.Leitura {
	var leituras []domain.Leitura
	for _, reg := range registros {
		data, err := time.Parse(FormatoData, Valor(reg, CampoData))
		if err != nil {
			continue
		}

		leituras = append(leituras, domain.Leitura{
			Data:              data,
			Codigo:            Valor(reg, CampoVeiculo),
			Descricao:         Valor(reg, CampoDescricao),
			Operador:          Valor(reg, CampoOperador),
			HorimetroAnterior: ValorNumero(reg, CampoHorimetroAnterior),
			HorimetroAtual:    ValorNumero(reg, CampoHorimetroAtual),
			KmAnterior:        ValorNumero(reg, CampoKmAnterior),
			KmAtual:           ValorNumero(reg, CampoKmAtual),
			Quantidade:        ValorNumero(reg, CampoQuantidade),
		})
	}
	return leituras
}

// FrotaDeRegistros converte registros crus em entradas do cadastro da frota.
func FrotaDeRegistros(registros []Registro) []domain.Veiculo {
	var frota []domain.Veiculo
	for _, reg := range registros {
		codigo := Valor(reg, CampoVeiculo)
		descricao := Valor(reg, CampoDescricao)
		if codigo == "" && descricao == "" {
			continue
		}
		frota = append(frota, domain.Veiculo{
			Codigo:    codigo,
			Descricao: descricao,
			Empresa:   Valor(reg, CampoEmpresa),
			Categoria: Valor(reg, CampoCategoria),
			Operador:  Valor(reg, CampoOperador),
		})
	}
	return frota
}

// SerieDeRegistros converte registros crus na série diária pré-agregada de um
// local, preservando a data como string brasileira.
func SerieDeRegistros(registros []Registro) []domain.LinhaEstoqueDiario {
	var serie []domain.LinhaEstoqueDiario
	for _, reg := range registros {
		data := Valor(reg, CampoData)
		if data == "" {
			continue
		}
		serie = append(serie, domain.LinhaEstoqueDiario{
			Data:         data,
			EstoqueAtual: ValorNumero(reg, CampoEstoqueAtual),
			Entradas:     ValorNumero(reg, CampoEntradas),
			Saidas:       ValorNumero(reg, CampoSaidas),
		})
	}
	return serie
}
