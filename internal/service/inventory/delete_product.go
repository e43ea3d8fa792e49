package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// DeleteProduct removes a product and its alert. Its transactions stay in the log.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.products.Delete(ctx, id); err != nil {
			return err
		}
		return s.alerts.ReplaceForProduct(ctx, id, nil)
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}
