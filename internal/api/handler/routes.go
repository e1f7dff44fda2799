package handler

import (
	"net/http"

	"github.com/vfg2006/sales-visualiser/internal/api/handler/router"
	"github.com/vfg2006/sales-visualiser/internal/session"
	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
	"github.com/vfg2006/sales-visualiser/pkg/middleware"
)

func Healthcheck(store RecordCounter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
	}
}

// Page retorna a rota da página do painel
func Page(registry *session.Registry, title string) []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     Dashboard(title),
			Middlewares: []func(http.Handler) http.Handler{middleware.Session(registry)},
		},
	}
}

// Events retorna a rota que recebe os eventos dos controles da página
func Events(registry *session.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events/:event",
			Method:      http.MethodPost,
			Handler:     DispatchEvent(),
			Middlewares: []func(http.Handler) http.Handler{middleware.Session(registry)},
		},
	}
}

// Charts retorna as rotas de leitura, que não dependem de sessão
func Charts(service charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/regions",
			Method:  http.MethodGet,
			Handler: GetRegions(),
		},
		{
			Path:    "/v1/series",
			Method:  http.MethodGet,
			Handler: GetSeries(service),
		},
		{
			Path:    "/v1/chart.svg",
			Method:  http.MethodGet,
			Handler: GetChartImage(service),
		},
	}
}
