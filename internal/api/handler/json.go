package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// selectionFromQuery lê o parâmetro region; ausente equivale a "all"
func selectionFromQuery(r *http.Request) (domain.Selection, error) {
	value := r.URL.Query().Get("region")
	if value == "" {
		return domain.DefaultSelection, nil
	}
	return domain.ParseSelection(value)
}
