package inventory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// ListProducts returns snapshot copies of the products matching every
// non-empty clause of the filter.
func (s *Service) ListProducts(ctx context.Context, input ListProductsInput) ([]domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	products, err := s.products.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a copy of one product.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}
