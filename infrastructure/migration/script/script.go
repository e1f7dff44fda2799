// Script que cria a tabela de vendas no Postgres e importa um CSV para ela.
// Uso: go run ./infrastructure/migration/script [arquivo.csv]
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/infrastructure/database/postgres"
	"github.com/vfg2006/sales-visualiser/infrastructure/datastore"
	"github.com/vfg2006/sales-visualiser/internal/config"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// Registros enviados por INSERT
const batchSize = 500

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func createTableSQL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id SERIAL PRIMARY KEY,
	date DATE NOT NULL,
	region TEXT NOT NULL,
	sales NUMERIC NOT NULL
)`, table)
}

func buildInsert(table string, records []domain.SalesRecord) (string, []interface{}, error) {
	query := squirrel.
		Insert(table).
		Columns("date", "region", "sales").
		PlaceholderFormat(squirrel.Dollar)

	for _, r := range records {
		query = query.Values(r.Date, r.Region, r.Sales.String())
	}

	return query.ToSql()
}

func importRecords(ctx context.Context, tx postgres.Queryer, table string, records []domain.SalesRecord) error {
	if _, err := tx.ExecContext(ctx, createTableSQL(table)); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", table, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE %s", table)); err != nil {
		return fmt.Errorf("erro ao limpar tabela %s: %w", table, err)
	}

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))

		query, args, err := buildInsert(table, records[start:end])
		if err != nil {
			return fmt.Errorf("erro ao construir insert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir registros %d-%d: %w", start+1, end, err)
		}

		logrus.Debugf("Progresso: %d/%d registros inseridos", end, len(records))
	}

	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	path := cfg.Data.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	records, err := datastore.LoadCSVFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler CSV")
	}
	logrus.Infof("%d registros lidos de %s", len(records), path)

	ctx := context.Background()
	startTime := time.Now()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return importRecords(ctx, tx, cfg.Data.Table, records)
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na migração, transação desfeita")
	}

	logrus.Infof("Migração concluída em %v: %d registros em %s", time.Since(startTime), len(records), cfg.Data.Table)
}
