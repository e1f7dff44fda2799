package domain

import "time"

const (
	XAxisTitle = "Date"
	YAxisTitle = "Total Sales"
)

// Figure descreve o gráfico de linha pronto para ser renderizado
type Figure struct {
	Title      string
	XAxisTitle string
	YAxisTitle string
	Selection  Selection
	Series     AggregatedSeries
}

// FigureResponse é a representação JSON de uma Figure
type FigureResponse struct {
	Title     string    `json:"title"`
	Selection Selection `json:"selection"`
	XAxis     string    `json:"x_axis"`
	YAxis     string    `json:"y_axis"`
	X         []string  `json:"x"`
	Y         []float64 `json:"y"`
}

// ToResponse converte a figura para o formato da API
func (f *Figure) ToResponse() FigureResponse {
	return FigureResponse{
		Title:     f.Title,
		Selection: f.Selection,
		XAxis:     f.XAxisTitle,
		YAxis:     f.YAxisTitle,
		X:         f.Series.Dates(),
		Y:         f.Series.Totals(),
	}
}

// SeriesPointResponse é um ponto da série na API
type SeriesPointResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// SeriesResponse é a resposta do endpoint de série
type SeriesResponse struct {
	Selection Selection             `json:"selection"`
	Points    []SeriesPointResponse `json:"points"`
}

// NewSeriesResponse monta a resposta da série para uma seleção
func NewSeriesResponse(selection Selection, series AggregatedSeries) SeriesResponse {
	points := make([]SeriesPointResponse, 0, len(series))
	for _, p := range series {
		points = append(points, SeriesPointResponse{
			Date:  p.Date.Format(time.DateOnly),
			Total: p.Total.InexactFloat64(),
		})
	}
	return SeriesResponse{Selection: selection, Points: points}
}
