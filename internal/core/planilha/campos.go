package planilha

import "strings"

// Campo identifica um campo lógico de uma linha de movimentação.
type Campo string

// Campos lógicos conhecidos.
const (
	CampoData              Campo = "data"
	CampoHora              Campo = "hora"
	CampoVeiculo           Campo = "veiculo"
	CampoDescricao         Campo = "descricao"
	CampoOperador          Campo = "operador"
	CampoQuantidade        Campo = "quantidade"
	CampoTipo              Campo = "tipo"
	CampoLocal             Campo = "local"
	CampoDestino           Campo = "destino"
	CampoFornecedor        Campo = "fornecedor"
	CampoNotaFiscal        Campo = "nota_fiscal"
	CampoPrecoUnitario     Campo = "preco_unitario"
	CampoLocalEntrada      Campo = "local_entrada"
	CampoObservacoes       Campo = "observacoes"
	CampoEmpresa           Campo = "empresa"
	CampoCategoria         Campo = "categoria"
	CampoHorimetroAnterior Campo = "horimetro_anterior"
	CampoHorimetroAtual    Campo = "horimetro_atual"
	CampoKmAnterior        Campo = "km_anterior"
	CampoKmAtual           Campo = "km_atual"
	CampoEstoqueAtual      Campo = "estoque_atual"
	CampoEntradas          Campo = "entradas"
	CampoSaidas            Campo = "saidas"
)

// Registro é uma linha crua vinda da planilha ou do armazenamento externo.
// As chaves variam entre maiúsculas/minúsculas, com e sem acento e com nomes
// sinônimos; o acesso deve sempre passar por Valor.
type Registro map[string]string

// candidatos lista, por campo lógico, as variantes de nome de coluna aceitas,
// em ordem de preferência. A comparação ignora caixa, acentos e espaços
// duplicados (ver NormalizarTexto).
var candidatos = map[Campo][]string{
	CampoData:              {"DATA", "DT", "DATA ABASTECIMENTO"},
	CampoHora:              {"HORA", "HORARIO"},
	CampoVeiculo:           {"VEICULO", "CODIGO", "COD VEICULO", "PLACA", "PREFIXO"},
	CampoDescricao:         {"DESCRICAO", "DESCRICAO VEICULO", "EQUIPAMENTO", "MODELO"},
	CampoOperador:          {"OPERADOR", "MOTORISTA", "NOME OPERADOR"},
	CampoQuantidade:        {"QUANTIDADE", "QTD", "LITROS", "QUANTIDADE LITROS"},
	CampoTipo:              {"TIPO", "TIPO MOVIMENTO", "MOVIMENTO", "OPERACAO"},
	CampoLocal:             {"LOCAL", "LOCAL ABASTECIMENTO", "TANQUE COMBOIO", "ORIGEM"},
	CampoDestino:           {"DESTINO", "DESTINO SAIDA", "ABASTECIDO"},
	CampoFornecedor:        {"FORNECEDOR", "POSTO", "NOME FORNECEDOR"},
	CampoNotaFiscal:        {"NOTA FISCAL", "NF", "NUMERO NOTA"},
	CampoPrecoUnitario:     {"PRECO UNITARIO", "PRECO", "VALOR UNITARIO", "VALOR LITRO"},
	CampoLocalEntrada:      {"LOCAL ENTRADA", "ENTRADA EM", "RECEBIDO EM"},
	CampoObservacoes:       {"OBSERVACOES", "OBS", "OBSERVACAO"},
	CampoEmpresa:           {"EMPRESA", "OBRA", "CENTRO CUSTO"},
	CampoCategoria:         {"CATEGORIA", "TIPO VEICULO", "CLASSE"},
	CampoHorimetroAnterior: {"HORIMETRO ANTERIOR", "HOR_ANTERIOR", "HOR ANTERIOR", "HORIMETRO INICIAL"},
	CampoHorimetroAtual:    {"HORIMETRO ATUAL", "HOR_ATUAL", "HOR ATUAL", "HORIMETRO", "HORIMETRO FINAL"},
	CampoKmAnterior:        {"KM ANTERIOR", "KM_ANTERIOR", "ODOMETRO ANTERIOR", "KM INICIAL"},
	CampoKmAtual:           {"KM ATUAL", "KM_ATUAL", "ODOMETRO ATUAL", "KM", "ODOMETRO", "KM FINAL"},
	CampoEstoqueAtual:      {"ESTOQUE ATUAL", "ESTOQUE", "SALDO"},
	CampoEntradas:          {"ENTRADAS", "TOTAL ENTRADAS"},
	CampoSaidas:            {"SAIDAS", "TOTAL SAIDAS"},
}

// Valor resolve um campo lógico contra as chaves presentes no registro,
// retornando o primeiro valor definido dentre as variantes candidatas.
// Retorna string vazia quando nenhuma variante está presente.
func Valor(reg Registro, campo Campo) string {
	variantes, ok := candidatos[campo]
	if !ok {
		return ""
	}

	// índice normalizado das chaves reais do registro
	porChave := make(map[string]string, len(reg))
	for k, v := range reg {
		nk := NormalizarTexto(k)
		if _, existe := porChave[nk]; !existe || strings.TrimSpace(porChave[nk]) == "" {
			porChave[nk] = v
		}
	}

	for _, variante := range variantes {
		if v, ok := porChave[NormalizarTexto(variante)]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ValorNumero resolve um campo lógico e o converte com ParseNumero.
func ValorNumero(reg Registro, campo Campo) float64 {
	return ParseNumero(Valor(reg, campo))
}
