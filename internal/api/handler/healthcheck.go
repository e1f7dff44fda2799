package handler

import (
	"net/http"
	"time"
)

// RecordCounter é satisfeito pelo store carregado na inicialização
type RecordCounter interface {
	Len() int
	Source() string
}

type healthcheckResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Source  string `json:"source"`
	Records int    `json:"records"`
}

// HealthcheckHandler responde com a origem e o tamanho da tabela carregada
func HealthcheckHandler(store RecordCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, healthcheckResponse{
			Status:  "ok",
			Time:    time.Now().Format(time.RFC3339),
			Source:  store.Source(),
			Records: store.Len(),
		})
	})
}
