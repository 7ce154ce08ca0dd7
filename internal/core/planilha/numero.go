package planilha

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumericRegex = regexp.MustCompile(`[^A-Z0-9 ]+`)
var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizarTexto remove acentos, converte para maiúsculas e colapsa
// espaços, produzindo uma chave estável para comparação de textos.
func NormalizarTexto(str string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, _ := transform.String(t, str)
	result = strings.ToUpper(result)
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// ParseNumero converte um valor textual na convenção brasileira (ponto como
// separador de milhar, vírgula como decimal) para float64. Entradas vazias ou
// inválidas degradam para zero; nunca retorna erro.
func ParseNumero(val string) float64 {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if neg {
		f = -f
	}
	return f
}

// FormatarNumero renderiza o inverso de ParseNumero: milhares agrupados com
// ponto, vírgula decimal e casas fixas. Quando o valor é exatamente zero
// retorna a sentinela escolhida pelo chamador ("0" em tabelas de resumo,
// "-" em tabelas de detalhe).
func FormatarNumero(val float64, casas int, zero string) string {
	if val == 0 {
		return zero
	}

	neg := val < 0
	if neg {
		val = -val
	}

	s := strconv.FormatFloat(val, 'f', casas, 64)
	inteiro := s
	decimal := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		inteiro = s[:idx]
		decimal = s[idx+1:]
	}

	var grupos []string
	for len(inteiro) > 3 {
		grupos = append([]string{inteiro[len(inteiro)-3:]}, grupos...)
		inteiro = inteiro[:len(inteiro)-3]
	}
	grupos = append([]string{inteiro}, grupos...)

	out := strings.Join(grupos, ".")
	if decimal != "" {
		out += "," + decimal
	}
	if neg {
		out = "-" + out
	}
	return out
}
