package recipes

import (
	"net/http"

	commonhandler "family-site-go/internal/transport/httpserver/handler/common"
	"family-site-go/pkg/logger"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	commonhandler.WriteError(w, status, code, message)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	commonhandler.WriteJSON(w, status, payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := commonhandler.DecodeJSON(w, r, dst); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, log logger.Logger, op string, err error, args ...any) {
	commonhandler.WriteServiceError(w, log, op, err, args...)
}

func parseRecipeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := commonhandler.ParseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid recipe id")
		return 0, false
	}
	return id, true
}
