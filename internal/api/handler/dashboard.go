package handler

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
	"github.com/vfg2006/sales-visualiser/pkg/log"
	"github.com/vfg2006/sales-visualiser/pkg/middleware"
)

//go:embed web/dashboard.html
var dashboardHTML string

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardHTML))

type dashboardPage struct {
	Title    string
	Event    string
	Options  []domain.SelectionOption
	Selected domain.Selection
	Chart    template.HTML
}

// Dashboard serve a página com o controle de região e o gráfico da seleção
// atual da sessão
func Dashboard(title string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		s, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sessão não encontrada", nil)
			return
		}

		view, err := s.Controller.Refresh(r.Context())
		if err != nil {
			logger.WithError(err).WithField("session_id", s.ID).Error("dashboard: erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao desenhar gráfico", nil)
			return
		}

		page := dashboardPage{
			Title:    title,
			Event:    charting.EventRegionSelector,
			Options:  domain.SelectionOptions(),
			Selected: view.Figure.Selection,
			Chart:    template.HTML(view.Image), // SVG gerado pelo renderer do servidor
		}

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, page); err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar página")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("dashboard: erro ao enviar página")
		}
	})
}
