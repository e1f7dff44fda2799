package charting

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func record(d int, region string, sales int64) domain.SalesRecord {
	return domain.SalesRecord{Date: day(d), Region: region, Sales: decimal.NewFromInt(sales)}
}

func point(d int, total int64) domain.SeriesPoint {
	return domain.SeriesPoint{Date: day(d), Total: decimal.NewFromInt(total)}
}

// Registros dos cenários de referência
func scenarioRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		record(1, "north", 10),
		record(1, "south", 5),
		record(2, "north", 7),
	}
}

func TestComputeSeries_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		selection domain.Selection
		want      domain.AggregatedSeries
	}{
		{
			name:      "A - all soma todas as regiões por dia",
			selection: domain.SelectionAll,
			want:      domain.AggregatedSeries{point(1, 15), point(2, 7)},
		},
		{
			name:      "B - north mantém apenas o norte",
			selection: domain.SelectionNorth,
			want:      domain.AggregatedSeries{point(1, 10), point(2, 7)},
		},
		{
			name:      "C - west sem registros gera série vazia",
			selection: domain.SelectionWest,
			want:      domain.AggregatedSeries{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSeries(scenarioRecords(), tt.selection)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got, decimalComparer); diff != "" {
				t.Errorf("série diferente (-esperado +obtido):\n%s", diff)
			}
		})
	}
}

func TestComputeSeries_MixedCase(t *testing.T) {
	// D - "North" e "NORTH" se comportam como "north", tanto na seleção quanto nos dados
	records := []domain.SalesRecord{
		record(1, "North", 10),
		record(1, "NORTH", 1),
		record(1, "south", 5),
		record(2, "nOrTh", 7),
	}
	want := domain.AggregatedSeries{point(1, 11), point(2, 7)}

	for _, value := range []string{"north", "North", "NORTH"} {
		selection, err := domain.ParseSelection(value)
		require.NoError(t, err)

		got := ComputeSeries(records, selection)
		if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
			t.Errorf("%s: série diferente (-esperado +obtido):\n%s", value, diff)
		}
	}
}

func propertyRecords() []domain.SalesRecord {
	regions := []string{"north", "East", "SOUTH", "west", "central"}
	records := make([]domain.SalesRecord, 0, 60)
	for i := 0; i < 60; i++ {
		// Datas fora de ordem para garantir que a ordenação não depende da entrada
		d := (i*7)%20 + 1
		records = append(records, domain.SalesRecord{
			Date:   day(d),
			Region: regions[i%len(regions)],
			Sales:  decimal.NewFromFloat(float64(i) * 1.1),
		})
	}
	return records
}

func TestComputeSeries_Properties(t *testing.T) {
	records := propertyRecords()

	for _, selection := range domain.Selections() {
		t.Run(string(selection), func(t *testing.T) {
			series := ComputeSeries(records, selection)

			// Datas estritamente crescentes, sem repetição
			for i := 1; i < len(series); i++ {
				assert.True(t, series[i-1].Date.Before(series[i].Date), "datas fora de ordem no índice %d", i)
			}

			// Cada total é a soma exata dos registros do dia no conjunto filtrado
			expected := make(map[time.Time]decimal.Decimal)
			for _, r := range records {
				if selection.Matches(r.Region) {
					expected[r.Date] = expected[r.Date].Add(r.Sales)
				}
			}
			require.Len(t, series, len(expected))
			for _, p := range series {
				assert.True(t, expected[p.Date].Equal(p.Total), "total de %s: esperado %s, obtido %s", p.Date, expected[p.Date], p.Total)
			}

			// Idempotência
			if diff := cmp.Diff(series, ComputeSeries(records, selection), decimalComparer); diff != "" {
				t.Errorf("segunda chamada divergiu:\n%s", diff)
			}
		})
	}
}

func TestComputeSeries_AllUsesEveryRecordOnce(t *testing.T) {
	records := propertyRecords()

	var want decimal.Decimal
	for _, r := range records {
		want = want.Add(r.Sales)
	}

	var got decimal.Decimal
	for _, p := range ComputeSeries(records, domain.SelectionAll) {
		got = got.Add(p.Total)
	}

	assert.True(t, want.Equal(got), "esperado %s, obtido %s", want, got)
}

func TestComputeSeries_RegionsNeverLeak(t *testing.T) {
	records := propertyRecords()

	for _, selection := range domain.Selections()[1:] {
		var want decimal.Decimal
		for _, r := range records {
			if selection.Matches(r.Region) {
				want = want.Add(r.Sales)
			}
		}

		var got decimal.Decimal
		for _, p := range ComputeSeries(records, selection) {
			got = got.Add(p.Total)
		}
		assert.True(t, want.Equal(got), "%s: esperado %s, obtido %s", selection, want, got)
	}
}

func TestComputeSeries_DoesNotMutateInput(t *testing.T) {
	records := scenarioRecords()
	before := append([]domain.SalesRecord(nil), records...)

	ComputeSeries(records, domain.SelectionAll)

	if diff := cmp.Diff(before, records, decimalComparer); diff != "" {
		t.Errorf("registros alterados:\n%s", diff)
	}
}

func TestComputeSeries_NormalizesTimeOfDay(t *testing.T) {
	records := []domain.SalesRecord{
		{Date: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Region: "east", Sales: decimal.NewFromInt(2)},
		{Date: time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC), Region: "east", Sales: decimal.NewFromInt(3)},
	}

	got := ComputeSeries(records, domain.SelectionEast)
	if diff := cmp.Diff(domain.AggregatedSeries{point(1, 5)}, got, decimalComparer); diff != "" {
		t.Errorf("série diferente:\n%s", diff)
	}
}
