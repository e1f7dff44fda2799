package datastore

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/pkg/utils"
)

const (
	columnDate   = "date"
	columnRegion = "region"
	columnSales  = "sales"
)

var requiredColumns = []string{columnDate, columnRegion, columnSales}

type columnIndex struct {
	date   int
	region int
	sales  int
}

// LoadCSVFile lê a tabela de vendas de um arquivo CSV local
func LoadCSVFile(path string) ([]domain.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newStartupDataError(errors.Wrap(ErrSourceNotFound, err.Error()), path, 0)
		}
		return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), path, 0)
	}
	defer f.Close()

	return ParseCSV(f, path)
}

// ParseCSV interpreta uma tabela com pelo menos as colunas date, region e
// sales. Qualquer linha inválida interrompe a carga
func ParseCSV(r io.Reader, source string) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, newStartupDataError(errors.Wrap(ErrMissingColumn, "empty file, no header row"), source, 1)
	}
	if err != nil {
		return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), source, 1)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, newStartupDataError(err, source, 1)
	}

	// Linhas com quantidade de campos diferente do cabeçalho são rejeitadas
	reader.FieldsPerRecord = len(header)

	records := make([]domain.SalesRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, newStartupDataError(errors.Wrap(ErrMalformedRow, parseErr.Err.Error()), source, parseErr.StartLine)
			}
			return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), source, 0)
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRow(row, cols)
		if err != nil {
			return nil, newStartupDataError(err, source, line)
		}
		records = append(records, record)
	}

	return records, nil
}

func resolveColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	for _, required := range requiredColumns {
		if _, ok := positions[required]; !ok {
			return columnIndex{}, errors.Wrapf(ErrMissingColumn, "column %q", required)
		}
	}

	return columnIndex{
		date:   positions[columnDate],
		region: positions[columnRegion],
		sales:  positions[columnSales],
	}, nil
}

func parseRow(row []string, cols columnIndex) (domain.SalesRecord, error) {
	date, err := utils.ParseDate(row[cols.date])
	if err != nil {
		return domain.SalesRecord{}, errors.Wrap(ErrMalformedRow, err.Error())
	}

	sales, err := ParseAmount(row[cols.sales])
	if err != nil {
		return domain.SalesRecord{}, err
	}

	return domain.SalesRecord{
		Date:   date,
		Region: strings.TrimSpace(row[cols.region]),
		Sales:  sales,
	}, nil
}

// ParseAmount interpreta um valor de venda, aceitando um "$" inicial
func ParseAmount(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "$")
	if value == "" {
		return decimal.Decimal{}, errors.Wrap(ErrMalformedRow, "empty sales amount")
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(ErrMalformedRow, "invalid sales amount %q", raw)
	}
	return amount, nil
}
