package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/zebra-store/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors onto status codes. Unexpected errors are
// logged and hidden behind msg.
func writeError(w http.ResponseWriter, logger hclog.Logger, err error, msg string) {
	if ve, ok := domain.AsValidationErrors(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationError{Messages: ve.Errors()})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidSortKey), errors.Is(err, domain.ErrInvalidCount):
		writeJSON(w, http.StatusUnprocessableEntity, ValidationError{Messages: []string{err.Error()}})
	case errors.Is(err, domain.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Product not found"})
	case errors.Is(err, domain.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Session not found"})
	default:
		logger.Error(msg, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msg})
	}
}
