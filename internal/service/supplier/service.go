// Package supplier exposes read access to the supplier directory.
package supplier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

type supplierRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
}

// Service implements supplier queries.
type Service struct {
	log       *slog.Logger
	suppliers supplierRepo
}

// NewService creates a new supplier service.
func NewService(log *slog.Logger, suppliers supplierRepo) *Service {
	return &Service{
		log:       log.With("service", "supplier"),
		suppliers: suppliers,
	}
}

// ListSuppliers returns every supplier in store order.
func (s *Service) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// GetSupplier returns a single supplier.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	sup, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return sup, nil
}
