package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-visualiser/internal/session"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"

	// SessionCookieName é o cookie que identifica a sessão do navegador
	SessionCookieName = "sales_session"
)

// Session associa a requisição à sessão do navegador, criando uma se necessário
func Session(registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				id = cookie.Value
			}

			s, created, err := registry.GetOrCreate(id)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("session: erro ao criar sessão")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar sessão", nil)
				return
			}

			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				log.ForContext(r.Context()).WithField("session_id", s.ID).Debug("session: nova sessão criada")
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retorna a sessão colocada no contexto pelo middleware
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(ContextKeySession).(*session.Session)
	return s, ok
}
