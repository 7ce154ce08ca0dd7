// internal/domain/models.go
package domain

import "time"

// TipoLocal classifica o local físico de armazenamento de combustível.
type TipoLocal string

// Constantes para os tipos de local.
const (
	LocalTanque  TipoLocal = "tanque"
	LocalComboio TipoLocal = "comboio"
	LocalOutro   TipoLocal = "outro"
)

// ResumoEstoque consolida as movimentações de um local em uma data de referência.
// Para tanques as saídas são separadas por destino (comboio ou equipamento);
// para comboios existe um único canal de saída.
type ResumoEstoque struct {
	Local             string    `json:"local"`
	Tipo              TipoLocal `json:"tipo"`
	EstoqueAnterior   float64   `json:"estoque_anterior"`
	Entradas          float64   `json:"entradas"`
	SaidasComboio     float64   `json:"saidas_comboio"`
	SaidasEquipamento float64   `json:"saidas_equipamento"`
	SaidasTotal       float64   `json:"saidas_total"`
	TotalLiquido      float64   `json:"total_liquido"`
	EstoqueAtual      float64   `json:"estoque_atual"`
}

// LinhaEstoqueDiario é uma linha da série diária pré-agregada de um local,
// chaveada por data no formato brasileiro (dd/MM/yyyy).
type LinhaEstoqueDiario struct {
	Data         string  `json:"data"`
	EstoqueAtual float64 `json:"estoque_atual"`
	Entradas     float64 `json:"entradas"`
	Saidas       float64 `json:"saidas"`
}

// Leitura é uma leitura datada de horímetro/odômetro vinculada a um veículo.
type Leitura struct {
	Data              time.Time
	Codigo            string
	Descricao         string
	Operador          string
	HorimetroAnterior float64
	HorimetroAtual    float64
	KmAnterior        float64
	KmAtual           float64
	Quantidade        float64
}

// Veiculo é uma entrada do cadastro da frota.
type Veiculo struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
	Empresa   string `json:"empresa"`
	Categoria string `json:"categoria"`
	Operador  string `json:"operador"`
}

// ResumoUso agrega as leituras de um veículo dentro do filtro aplicado.
// "Atual" é o maior valor atual observado no grupo, não necessariamente o da
// leitura mais recente; intervalos negativos são preservados como sinal.
type ResumoUso struct {
	Codigo            string  `json:"codigo"`
	Descricao         string  `json:"descricao"`
	Empresa           string  `json:"empresa"`
	Categoria         string  `json:"categoria"`
	Operador          string  `json:"operador"`
	Equipamento       bool    `json:"equipamento"`
	HorimetroAnterior float64 `json:"horimetro_anterior"`
	HorimetroAtual    float64 `json:"horimetro_atual"`
	IntervaloHoras    float64 `json:"intervalo_horas"`
	KmAnterior        float64 `json:"km_anterior"`
	KmAtual           float64 `json:"km_atual"`
	IntervaloKm       float64 `json:"intervalo_km"`
	TotalLitros       float64 `json:"total_litros"`
}

// TabelaRelatorio é o resultado do montador de tabelas: linhas já formatadas
// para exibição e uma linha de total final.
type TabelaRelatorio struct {
	Linhas [][]string
	Total  []string
}
