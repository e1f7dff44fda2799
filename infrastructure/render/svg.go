// Package render desenha as figuras do painel usando go-chart
package render

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 1024
	defaultHeight = 480
)

// Faixa do eixo x quando não há pontos, fixa para que a mesma figura gere
// sempre o mesmo SVG
var (
	emptyRangeStart = time.Unix(0, 0).UTC()
	emptyRangeEnd   = emptyRangeStart.AddDate(0, 0, 1)
)

var (
	lineColor       = drawing.ColorFromHex("2c3e50")
	plotBackground  = drawing.ColorFromHex("ecf0f1")
	paperBackground = drawing.ColorFromHex("f9f9f9")
)

//go:generate mockgen -source=svg.go -destination=mocks/mock_renderer.go -package=mocks

// Renderer transforma uma figura em uma imagem
type Renderer interface {
	Render(w io.Writer, fig *domain.Figure) error
	ContentType() string
}

// SVGRenderer desenha um gráfico de linha em SVG
type SVGRenderer struct {
	Width  int
	Height int
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{Width: defaultWidth, Height: defaultHeight}
}

func (r *SVGRenderer) ContentType() string {
	return "image/svg+xml"
}

// Render desenha a figura. Séries vazias ou com um único ponto geram um
// gráfico válido, sem linha
func (r *SVGRenderer) Render(w io.Writer, fig *domain.Figure) error {
	if fig == nil {
		return errors.New("figura nula")
	}

	ch := r.buildChart(fig)
	if err := ch.Render(chart.SVG, w); err != nil {
		return errors.Wrapf(err, "erro ao renderizar gráfico %q", fig.Title)
	}
	return nil
}

func (r *SVGRenderer) buildChart(fig *domain.Figure) chart.Chart {
	xRange, yRange := axisRanges(fig.Series)

	ch := chart.Chart{
		Title:  fig.Title,
		Width:  r.Width,
		Height: r.Height,
		Background: chart.Style{
			FillColor: paperBackground,
			Padding:   chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: plotBackground},
		XAxis: chart.XAxis{
			Name:           fig.XAxisTitle,
			ValueFormatter: chart.TimeDateValueFormatter,
			Range:          xRange,
		},
		YAxis: chart.YAxis{
			Name:  fig.YAxisTitle,
			Range: yRange,
		},
	}

	ch.Series = []chart.Series{lineSeries(fig, xRange)}

	return ch
}

// lineSeries monta a linha da figura. O go-chart exige ao menos uma série
// visível, então a série vazia vira uma linha transparente sobre o zero
func lineSeries(fig *domain.Figure, xRange *chart.ContinuousRange) chart.TimeSeries {
	if len(fig.Series) == 0 {
		return chart.TimeSeries{
			Name: fig.Selection.DisplayName(),
			XValues: []time.Time{
				time.Unix(0, int64(xRange.Min)).UTC(),
				time.Unix(0, int64(xRange.Max)).UTC(),
			},
			YValues: []float64{0, 0},
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				StrokeWidth: 1,
			},
		}
	}

	xs := make([]time.Time, 0, len(fig.Series))
	for _, p := range fig.Series {
		xs = append(xs, p.Date)
	}

	return chart.TimeSeries{
		Name:    fig.Selection.DisplayName(),
		XValues: xs,
		YValues: fig.Series.Totals(),
		Style: chart.Style{
			StrokeColor: lineColor,
			StrokeWidth: 2,
			DotColor:    lineColor,
			DotWidth:    2.5,
		},
	}
}

// axisRanges calcula faixas explícitas para os dois eixos, porque o go-chart
// recusa faixas de largura zero
func axisRanges(series domain.AggregatedSeries) (*chart.ContinuousRange, *chart.ContinuousRange) {
	if len(series) == 0 {
		return &chart.ContinuousRange{
				Min: chart.TimeToFloat64(emptyRangeStart),
				Max: chart.TimeToFloat64(emptyRangeEnd),
			}, &chart.ContinuousRange{
				Min: 0,
				Max: 1,
			}
	}

	first := series[0].Date
	last := series[len(series)-1].Date
	if !last.After(first) {
		first = first.AddDate(0, 0, -1)
		last = last.AddDate(0, 0, 1)
	}

	minY, maxY := 0.0, 0.0
	for _, total := range series.Totals() {
		if total < minY {
			minY = total
		}
		if total > maxY {
			maxY = total
		}
	}
	if maxY == minY {
		maxY = minY + 1
	}

	return &chart.ContinuousRange{
			Min: chart.TimeToFloat64(first),
			Max: chart.TimeToFloat64(last),
		}, &chart.ContinuousRange{
			Min: minY,
			Max: maxY * 1.05,
		}
}
