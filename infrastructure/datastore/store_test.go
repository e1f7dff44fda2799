package datastore

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

func TestStore(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.SalesRecord{
		{Date: day, Region: "north", Sales: decimal.NewFromInt(1)},
		{Date: day, Region: "Central", Sales: decimal.NewFromInt(2)},
		{Date: day, Region: "central", Sales: decimal.NewFromInt(3)},
		{Date: day, Region: "Atlantis", Sales: decimal.NewFromInt(4)},
		{Date: day, Region: "WEST", Sales: decimal.NewFromInt(5)},
	}

	store := New("test.csv", records)

	assert.Equal(t, "test.csv", store.Source())
	assert.Equal(t, 5, store.Len())
	assert.Equal(t, records, store.AllRecords())
	assert.Same(t, &records[0], &store.AllRecords()[0], "AllRecords não deve copiar a coleção")

	assert.Equal(t, []RegionCount{
		{Region: "atlantis", Count: 1},
		{Region: "central", Count: 2},
	}, store.UnknownRegions())
}

func TestStore_RegionWhitespace(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := New("postgres:sales_records", []domain.SalesRecord{
		{Date: day, Region: "north ", Sales: decimal.NewFromInt(1)},
		{Date: day, Region: " Central", Sales: decimal.NewFromInt(2)},
		{Date: day, Region: "central ", Sales: decimal.NewFromInt(3)},
	})

	assert.Equal(t, []RegionCount{{Region: "central", Count: 2}}, store.UnknownRegions())
	assert.True(t, domain.SelectionNorth.Matches(store.AllRecords()[0].Region))
}
