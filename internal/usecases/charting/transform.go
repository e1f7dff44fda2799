package charting

import (
	"sort"

	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// ComputeSeries filtra os registros pela seleção e soma as vendas por dia.
// O resultado é ordenado por data e nunca é nil; sem registros, a série é vazia
func ComputeSeries(records []domain.SalesRecord, selection domain.Selection) domain.AggregatedSeries {
	byDate := make(map[int64]*domain.SeriesPoint)
	for _, r := range records {
		if !selection.Matches(r.Region) {
			continue
		}

		date := domain.NewDate(r.Date)
		point, ok := byDate[date.Unix()]
		if !ok {
			point = &domain.SeriesPoint{Date: date}
			byDate[date.Unix()] = point
		}
		point.Total = point.Total.Add(r.Sales)
	}

	series := make(domain.AggregatedSeries, 0, len(byDate))
	for _, point := range byDate {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}
