package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
	"github.com/vfg2006/sales-visualiser/pkg/log"
	"github.com/vfg2006/sales-visualiser/pkg/middleware"
)

const maxEventBodyBytes = 1 << 10

type eventRequest struct {
	Value *string `json:"value"`
}

// DispatchEvent entrega um evento da interface ao controlador da sessão e
// devolve o gráfico redesenhado
func DispatchEvent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		s, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sessão não encontrada", nil)
			return
		}

		event := httprouter.ParamsFromContext(r.Context()).ByName("event")

		var req eventRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBodyBytes)).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		if req.Value == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo value é obrigatório", nil)
			return
		}

		view, err := s.Dispatcher.Dispatch(r.Context(), event, *req.Value)
		if err != nil {
			code := eventErrorCode(err)
			logger.WithError(err).WithFields(log.Fields{
				"event":      event,
				"session_id": s.ID,
			}).Warn("events: evento rejeitado")

			apiErr := apiErrors.FromError(err, code)
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
			return
		}

		logger.WithFields(log.Fields{
			"event":      event,
			"selection":  view.Figure.Selection,
			"session_id": s.ID,
		}).Info("events: gráfico atualizado")

		writeJSON(w, r, http.StatusOK, view.Response())
	})
}

func eventErrorCode(err error) string {
	switch {
	case errors.Is(err, charting.ErrUnknownEvent):
		return apiErrors.ErrUnknownEvent
	case errors.Is(err, charting.ErrInvalidSelection):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, charting.ErrRender):
		return apiErrors.ErrRender
	default:
		return apiErrors.ErrInternalServer
	}
}
