// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord é uma linha da tabela de vendas carregada na inicialização
type SalesRecord struct {
	Date   time.Time       `json:"date"`
	Region string          `json:"region"`
	Sales  decimal.Decimal `json:"sales"`
}

// NewDate normaliza um instante para a meia-noite UTC do seu dia de calendário
func NewDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeriesPoint é o total de vendas de um único dia
type SeriesPoint struct {
	Date  time.Time
	Total decimal.Decimal
}

// AggregatedSeries é ordenada por data, sem datas repetidas
type AggregatedSeries []SeriesPoint

// Dates retorna os dias da série no formato yyyy-mm-dd
func (s AggregatedSeries) Dates() []string {
	dates := make([]string, 0, len(s))
	for _, p := range s {
		dates = append(dates, p.Date.Format(time.DateOnly))
	}
	return dates
}

// Totals retorna os totais da série como float64, prontos para o gráfico
func (s AggregatedSeries) Totals() []float64 {
	totals := make([]float64, 0, len(s))
	for _, p := range s {
		totals = append(totals, p.Total.InexactFloat64())
	}
	return totals
}
