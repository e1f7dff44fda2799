package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/infrastructure/datastore"
	"github.com/vfg2006/sales-visualiser/infrastructure/render"
	"github.com/vfg2006/sales-visualiser/internal/api"
	"github.com/vfg2006/sales-visualiser/internal/config"
	"github.com/vfg2006/sales-visualiser/internal/session"
	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A tabela é lida uma única vez; sem ela o painel não sobe
	store, err := datastore.Load(ctx, cfg)
	if err != nil {
		var dataErr *datastore.StartupDataError
		if errors.As(err, &dataErr) {
			logrus.WithFields(logrus.Fields{
				"source": dataErr.Source,
				"line":   dataErr.Line,
			}).WithError(dataErr.Err).Fatal("Erro ao carregar dados de vendas")
		}
		logrus.WithError(err).Fatal("Erro ao carregar dados de vendas")
	}

	renderer := render.NewSVGRenderer()
	chartService := charting.NewService(store, renderer, cfg.Dashboard.ProductName)
	registry := session.NewRegistry(chartService, cfg.Dashboard.SessionTTL, cfg.Dashboard.MaxSessions)

	server, err := api.New(cfg, store, chartService, registry)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
