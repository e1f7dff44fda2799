package handler

import (
	"bytes"
	"net/http"

	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

// GetRegions retorna as opções do controle de região
func GetRegions() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"options": domain.SelectionOptions(),
			"default": domain.DefaultSelection,
		})
	})
}

// GetSeries retorna a série agregada de uma região, sem tocar na sessão
func GetSeries(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selection, err := selectionFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Região inválida. Valores aceitos: all, north, east, south, west", nil)
			return
		}

		series := service.Series(selection)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"selection": selection,
			"points":    len(series),
		}).Debug("series: série calculada")

		writeJSON(w, r, http.StatusOK, domain.NewSeriesResponse(selection, series))
	})
}

// GetChartImage desenha o gráfico de uma região, sem tocar na sessão
func GetChartImage(service charting.Charter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := selectionFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Região inválida. Valores aceitos: all, north, east, south, west", nil)
			return
		}

		// Desenha em memória para poder responder com erro se falhar no meio
		var buf bytes.Buffer
		if err := service.Render(&buf, service.Figure(selection)); err != nil {
			logger.WithError(err).WithField("selection", selection).Error("chart: erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao desenhar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", service.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("chart: erro ao enviar gráfico")
		}
	})
}
