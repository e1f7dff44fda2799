// Package router monta a tabela de rotas do painel sobre o httprouter
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
)

// Middleware envolve o handler de uma única rota
type Middleware = func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // aplicados na ordem da lista, só nesta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) ConfigRouter {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

// WithNotFound troca a resposta padrão para caminhos sem rota
func WithNotFound(handler http.Handler) ConfigRouter {
	return func(r *Router) {
		r.router.NotFound = handler
	}
}

// WithMethodNotAllowed troca a resposta padrão para métodos não registrados
func WithMethodNotAllowed(handler http.Handler) ConfigRouter {
	return func(r *Router) {
		r.router.MethodNotAllowed = handler
	}
}

// New cria o router. Sem configuração, 404 e 405 já respondem no formato de
// erro da API
func New(configs ...ConfigRouter) Router {
	hr := httprouter.New()
	hr.HandleMethodNotAllowed = true
	hr.HandleOPTIONS = false // CORS responde o preflight antes do router
	hr.NotFound = errorHandler(apiErrors.ErrNotFound, "Rota não encontrada")
	hr.MethodNotAllowed = errorHandler(apiErrors.ErrMethodNotAllowed, "Método não permitido")

	r := &Router{router: hr}
	for _, config := range configs {
		config(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas já envolvidas pelos seus middlewares
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, chain(route.Handler, route.Middlewares))
	}
}

// chain aplica os middlewares de trás para frente, para que o primeiro da
// lista seja o mais externo
func chain(h http.Handler, middlewares []Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func errorHandler(code, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, code, message, nil)
	})
}
