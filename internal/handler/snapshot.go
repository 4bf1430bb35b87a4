package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// HandleExport downloads the player's save file.
func (h *GameHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	data, err := h.svc.Export(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Export", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(ContentDispositionFormat, fmt.Sprintf(SaveFileNameFormat, id)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		loggerFor(r).Error("Failed to write save file", "error", err)
	}
}

// HandleImport replaces the player with the save file in the request body.
func (h *GameHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgReadBodyFailed)
			return
		}
		loggerFor(r).Warn("Failed to read save file", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return
	}

	p, err := h.svc.Import(r.Context(), id, data)
	if err != nil {
		respondServiceError(w, r, "Import", err)
		return
	}

	loggerFor(r).Info(MsgSaveImported, "bytes", len(data))
	respondJSON(w, http.StatusOK, PlayerMessageResponse{Message: MsgSaveImported, Player: newPlayerResponse(p)})
}
