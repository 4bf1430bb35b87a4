package handler

import (
	"net/http"
	"time"
)

// ResetTicketResponse is returned when a reset is requested.
type ResetTicketResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ConfirmResetRequest struct {
	Token string `json:"token" validate:"required,uuid"`
}

// PlayerMessageResponse pairs a message with the resulting player record.
type PlayerMessageResponse struct {
	Message string         `json:"message"`
	Player  PlayerResponse `json:"player"`
}

// HandleRequestReset issues a confirmation token. Nothing changes until the
// token is confirmed; an expired token is silently dropped.
func (h *GameHandler) HandleRequestReset(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	t, err := h.confirms.Request(r.Context(), id, nil)
	if err != nil {
		respondServiceError(w, r, "Request reset", err)
		return
	}
	respondJSON(w, http.StatusAccepted, ResetTicketResponse{
		Message:   MsgConfirmResetWithin,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
	})
}

// HandleConfirmReset consumes the token and resets the player.
func (h *GameHandler) HandleConfirmReset(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	var req ConfirmResetRequest
	if err := decodeAndValidate(w, r, &req, "confirm reset"); err != nil {
		return
	}

	if err := h.confirms.Confirm(id, req.Token); err != nil {
		respondServiceError(w, r, "Confirm reset", err)
		return
	}

	p, err := h.svc.Reset(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Reset", err)
		return
	}
	respondJSON(w, http.StatusOK, PlayerMessageResponse{Message: MsgPlayerReset, Player: newPlayerResponse(p)})
}
