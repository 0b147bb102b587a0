package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// writeError maps application errors onto HTTP statuses. Anything it does
// not recognize is an internal error; the raw message stays in the log and
// never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var validation *application.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Error()})
	case errors.Is(err, application.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	case errors.Is(err, application.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, application.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, application.ErrVersionConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "version conflict, reload and retry"})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &application.ValidationError{Field: "body", Message: "invalid JSON body"}
	}
	return nil
}
