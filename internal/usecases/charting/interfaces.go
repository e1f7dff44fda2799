package charting

import (
	"io"

	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// Charter reúne as operações sem estado do painel: série, figura e desenho
type Charter interface {
	// Series calcula a série agregada para uma seleção
	Series(selection domain.Selection) domain.AggregatedSeries

	// Figure monta a descrição do gráfico para uma seleção
	Figure(selection domain.Selection) *domain.Figure

	// Render desenha a figura no writer
	Render(w io.Writer, fig *domain.Figure) error

	// ContentType é o tipo MIME produzido por Render
	ContentType() string
}
