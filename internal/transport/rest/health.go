package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
)

type storeStats interface {
	Stats(ctx context.Context) (memory.Stats, error)
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	store   storeStats
	version string
	log     *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store storeStats, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, version: version, log: logger.With("handler", "health")}
}

type readyResponse struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Store   memory.Stats `json:"store"`
}

// Live handles GET /live. It answers as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready: 200 with the seeded record counts once the store
// answers, 503 otherwise. An empty catalog means seeding did not run.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "store not ready", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "Store unavailable")
		return
	}
	if stats.Products == 0 && stats.Users == 0 {
		writeError(w, http.StatusServiceUnavailable, "Store not seeded")
		return
	}

	writeData(w, http.StatusOK, readyResponse{Status: "ok", Version: h.version, Store: stats})
}
