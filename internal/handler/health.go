package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/FishingBot_Go/internal/ledger"
	"github.com/osse101/FishingBot_Go/internal/logger"
)

// StatusResponse is the liveness payload served at the root path.
type StatusResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleRoot reports that the process is up.
func HandleRoot(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StatusResponse{
			Status:    StatusBotRunning,
			Timestamp: now().UTC().Format(time.RFC3339),
		})
	}
}

// HandleHealth always reports healthy; it has no dependencies.
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusHealthy})
	}
}

// HandleReadyz checks the player store when it is backed by a database.
// A nil pinger means an in-memory store, which is always ready.
func HandleReadyz(pinger ledger.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: StatusHealthy})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: "player store unreachable",
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusHealthy})
	}
}
