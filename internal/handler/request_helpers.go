package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FishingBot_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// PlayerIDParam is the chi URL parameter holding the player id.
const PlayerIDParam = "id"

func loggerFor(r *http.Request) *slog.Logger {
	log := logger.FromContext(r.Context())
	if id := chi.URLParam(r, PlayerIDParam); id != "" {
		log = log.With(logger.AttrKeyPlayerID, id)
	}
	return log
}

// playerID reads the path parameter. If it is missing, the 400 response has
// already been written and the handler should return.
func playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, PlayerIDParam)
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingPlayerID)
		return "", false
	}
	return id, true
}

// decodeAndValidate decodes a JSON request body and validates it. If it
// returns an error, the response has already been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, actionName string) error {
	log := loggerFor(r)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn("Failed to decode "+actionName+" request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}
