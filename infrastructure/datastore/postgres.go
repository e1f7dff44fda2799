package datastore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// RowQueryer é satisfeito por *sql.DB e pela conexão do pacote postgres
type RowQueryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func buildSalesQuery(table string) (string, []interface{}, error) {
	return squirrel.
		Select(columnDate, columnRegion, columnSales).
		From(table).
		OrderBy(columnDate + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// LoadPostgresTable lê a tabela de vendas inteira de uma tabela do Postgres
func LoadPostgresTable(ctx context.Context, conn RowQueryer, table string) ([]domain.SalesRecord, error) {
	source := "postgres:" + table

	query, args, err := buildSalesQuery(table)
	if err != nil {
		return nil, newStartupDataError(errors.Wrap(err, "erro ao construir a query"), source, 0)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), source, 0)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for row := 1; rows.Next(); row++ {
		var (
			date   time.Time
			region sql.NullString
			sales  string
		)
		if err := rows.Scan(&date, &region, &sales); err != nil {
			return nil, newStartupDataError(errors.Wrap(ErrMalformedRow, err.Error()), source, row)
		}

		amount, err := ParseAmount(sales)
		if err != nil {
			return nil, newStartupDataError(err, source, row)
		}

		records = append(records, domain.SalesRecord{
			Date:   domain.NewDate(date),
			Region: strings.TrimSpace(region.String),
			Sales:  amount,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), source, 0)
	}

	return records, nil
}
