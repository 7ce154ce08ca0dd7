package relatorio

import (
	"fmt"
	"time"

	"frota-service/internal/core/movimento"
	"frota-service/internal/core/planilha"
	"frota-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

// projecaoXLSX renomeia os campos internos para os cabeçalhos em português
// usados nas abas do arquivo exportado, na ordem das colunas.
var projecaoXLSX = []struct {
	Cabecalho string
	Campo     planilha.Campo
}{
	{"Data", planilha.CampoData},
	{"Hora", planilha.CampoHora},
	{"Veículo", planilha.CampoVeiculo},
	{"Descrição", planilha.CampoDescricao},
	{"Operador", planilha.CampoOperador},
	{"Quantidade (L)", planilha.CampoQuantidade},
	{"Local", planilha.CampoLocal},
	{"Destino", planilha.CampoDestino},
	{"Fornecedor", planilha.CampoFornecedor},
	{"Nota Fiscal", planilha.CampoNotaFiscal},
	{"Preço Unitário", planilha.CampoPrecoUnitario},
	{"Local de Entrada", planilha.CampoLocalEntrada},
	{"Observações", planilha.CampoObservacoes},
}

// largurasColunasXLSX é o preset compartilhado de larguras de coluna.
var largurasColunasXLSX = []float64{12, 8, 14, 30, 22, 14, 18, 18, 22, 14, 14, 22, 30}

// GrupoXLSX é um grupo lógico de registros que vira uma aba nomeada.
type GrupoXLSX struct {
	Nome      string
	Registros []planilha.Registro
}

// NomeArquivoXLSX monta o nome do arquivo a partir do rótulo e da data de
// referência.
func NomeArquivoXLSX(rotulo string, data time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", rotulo, data.Format("02-01-2006"))
}

// ExportarXLSX serializa um ou mais grupos de registros classificados em um
// único arquivo, uma aba nomeada por grupo (ex.: "Tanques", "Comboios"). A
// mesma política de ordenação dos PDFs é aplicada antes da montagem, de modo
// que as duas saídas do mesmo relatório tenham ordem de linhas idêntica.
func ExportarXLSX(grupos []GrupoXLSX, rotulo string, data time.Time, opts Opcoes) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, grupo := range grupos {
		nome := grupo.Nome
		if i == 0 {
			f.SetSheetName(f.GetSheetName(0), nome)
		} else {
			if _, err := f.NewSheet(nome); err != nil {
				return nil, "", fmt.Errorf("erro ao criar aba %q: %w", nome, err)
			}
		}

		registros := grupo.Registros
		if opts.OrdenarPorDescricao {
			registros = OrdenarRegistros(registros)
		}

		if err := escreverAba(f, nome, registros); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("erro ao gerar XLSX do relatório: %w", err)
	}
	return buf.Bytes(), NomeArquivoXLSX(rotulo, data), nil
}

func escreverAba(f *excelize.File, aba string, registros []planilha.Registro) error {
	for col, p := range projecaoXLSX {
		celula, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(aba, celula, p.Cabecalho); err != nil {
			return err
		}

		nomeColuna, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(aba, nomeColuna, nomeColuna, largurasColunasXLSX[col]); err != nil {
			return err
		}
	}

	// coluna extra com o tipo de movimento derivado pelo classificador
	colTipo := len(projecaoXLSX) + 1
	celulaTipo, err := excelize.CoordinatesToCellName(colTipo, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(aba, celulaTipo, "Movimento"); err != nil {
		return err
	}

	for i, reg := range registros {
		for col, p := range projecaoXLSX {
			celula, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			valor := planilha.Valor(reg, p.Campo)
			if p.Campo == planilha.CampoQuantidade || p.Campo == planilha.CampoPrecoUnitario {
				if valor != "" {
					if err := f.SetCellValue(aba, celula, planilha.ParseNumero(valor)); err != nil {
						return err
					}
					continue
				}
			}
			if err := f.SetCellValue(aba, celula, valor); err != nil {
				return err
			}
		}

		celula, err := excelize.CoordinatesToCellName(colTipo, i+2)
		if err != nil {
			return err
		}
		tipoMovimento := "Saída"
		if movimento.EhEntrada(reg) {
			tipoMovimento = "Entrada"
		}
		if err := f.SetCellValue(aba, celula, tipoMovimento); err != nil {
			return err
		}
	}

	return nil
}

// ExportarXLSXHorimetros serializa os resumos de uso em duas abas, separando
// veículos de equipamentos.
func ExportarXLSXHorimetros(resumos []domain.ResumoUso, data time.Time) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	var veiculos, equipamentos []domain.ResumoUso
	for _, r := range resumos {
		if r.Equipamento {
			equipamentos = append(equipamentos, r)
		} else {
			veiculos = append(veiculos, r)
		}
	}

	f.SetSheetName(f.GetSheetName(0), "Veículos")
	if err := escreverAbaHorimetros(f, "Veículos", veiculos); err != nil {
		return nil, "", err
	}

	if _, err := f.NewSheet("Equipamentos"); err != nil {
		return nil, "", fmt.Errorf("erro ao criar aba de equipamentos: %w", err)
	}
	if err := escreverAbaHorimetros(f, "Equipamentos", equipamentos); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("erro ao gerar XLSX de horímetros: %w", err)
	}
	return buf.Bytes(), NomeArquivoXLSX("RelatorioHorimetros", data), nil
}

func escreverAbaHorimetros(f *excelize.File, aba string, resumos []domain.ResumoUso) error {
	for col, cabecalho := range CabecalhoHorimetros {
		celula, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(aba, celula, cabecalho); err != nil {
			return err
		}
	}

	tabela := MontarLinhasHorimetro(resumos)
	for i, linha := range tabela.Linhas {
		for col, valor := range linha {
			celula, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(aba, celula, valor); err != nil {
				return err
			}
		}
	}

	return nil
}
