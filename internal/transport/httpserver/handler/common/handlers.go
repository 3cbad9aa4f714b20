package common

import (
	"net/http"

	"family-site-go/pkg/logger"
)

type Handlers struct {
	log logger.Logger
}

func New(log logger.Logger) *Handlers {
	return &Handlers{log: log}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
