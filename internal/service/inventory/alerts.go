package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// ListAlerts returns all active alerts, newest first.
func (s *Service) ListAlerts(ctx context.Context) ([]domain.InventoryAlert, error) {
	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

// DismissAlert removes an alert. It is not recreated until the product's
// stock changes again. Returns domain.ErrNotFound for an unknown or already
// dismissed id.
func (s *Service) DismissAlert(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.alerts.Delete(ctx, id); err != nil {
		return fmt.Errorf("dismiss alert: %w", err)
	}

	s.log.InfoContext(ctx, "alert dismissed", slog.String("alert_id", id))
	return nil
}
