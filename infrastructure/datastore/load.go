package datastore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/infrastructure/database/postgres"
	"github.com/vfg2006/sales-visualiser/internal/config"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// newObjectGetter cria o cliente usado pelas origens s3://
var newObjectGetter = func(ctx context.Context, region string) (ObjectGetter, error) {
	return NewS3Client(ctx, region)
}

// Load carrega a tabela de vendas da origem configurada. Deve ser chamado
// uma única vez, antes do servidor começar a aceitar requisições
func Load(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		records []domain.SalesRecord
		source  string
		err     error
	)

	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		source = "postgres:" + cfg.Data.Table
		records, err = loadFromPostgres(ctx, cfg)
	default:
		source = cfg.Data.Path
		if bucket, key, ok := ParseS3URI(cfg.Data.Path); ok {
			var client ObjectGetter
			client, err = newObjectGetter(ctx, cfg.AWS.Region)
			if err != nil {
				return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), source, 0)
			}
			records, err = LoadS3Object(ctx, client, bucket, key)
		} else {
			records, err = LoadCSVFile(cfg.Data.Path)
		}
	}
	if err != nil {
		return nil, err
	}

	store := New(source, records)

	logrus.WithFields(logrus.Fields{
		"data_source":  source,
		"data_records": store.Len(),
	}).Info("Tabela de vendas carregada")

	for _, unknown := range store.UnknownRegions() {
		logrus.WithFields(logrus.Fields{
			"data_region":  unknown.Region,
			"data_records": unknown.Count,
		}).Warn("Região desconhecida: os registros entram apenas no filtro 'all'")
	}

	return store, nil
}

func loadFromPostgres(ctx context.Context, cfg *config.Config) ([]domain.SalesRecord, error) {
	source := "postgres:" + cfg.Data.Table

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), source, 0)
	}
	defer conn.Close()

	return LoadPostgresTable(ctx, conn, cfg.Data.Table)
}
