package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// alertService defines the minimal interface needed by AlertHandler.
type alertService interface {
	ListAlerts(ctx context.Context) ([]domain.InventoryAlert, error)
	DismissAlert(ctx context.Context, id string) error
}

// AlertHandler serves alert REST endpoints.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alert")}
}

// List handles GET /alerts.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.ListAlerts(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, errorMessages{entity: "Alert", failure: "Failed to fetch alerts"})
		return
	}
	writeList(w, toAlertResponses(alerts), len(alerts))
}

// Dismiss handles DELETE /alerts?id=.
func (h *AlertHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Alert ID is required")
		return
	}

	if err := h.svc.DismissAlert(r.Context(), id); err != nil {
		handleError(w, r, h.log, err, errorMessages{entity: "Alert", failure: "Failed to dismiss alert"})
		return
	}
	writeMessage(w, http.StatusOK, nil, "Alert dismissed successfully")
}
