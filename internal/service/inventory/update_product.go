package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// UpdateProduct applies a partial update. Threshold changes recompute the
// status and re-derive the alert. Status may be set to discontinued; any
// other requested status is replaced by the derived one.
func (s *Service) UpdateProduct(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Product
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.products.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}

		if err := s.applyPatch(ctx, p, input); err != nil {
			return err
		}

		updated, err = s.products.Update(ctx, p)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}

		return s.deriveAlert(ctx, updated, s.now())
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.InfoContext(ctx, "product updated",
		slog.String("product_id", updated.ID),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

func (s *Service) applyPatch(ctx context.Context, p *domain.Product, input UpdateProductInput) error {
	setTrimmed := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setTrimmed(&p.SKU, input.SKU)
	setTrimmed(&p.Name, input.Name)
	setTrimmed(&p.Category, input.Category)
	setTrimmed(&p.Description, input.Description)
	setTrimmed(&p.Location, input.Location)

	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Cost != nil {
		p.Cost = *input.Cost
	}
	if input.MinStockLevel != nil {
		p.MinStockLevel = *input.MinStockLevel
	}
	if input.MaxStockLevel != nil {
		p.MaxStockLevel = *input.MaxStockLevel
	}
	if input.ReorderPoint != nil {
		p.ReorderPoint = *input.ReorderPoint
	}

	var errs []domain.FieldError
	for _, f := range []struct{ field, value string }{
		{"sku", p.SKU}, {"name", p.Name}, {"category", p.Category},
	} {
		if f.value == "" {
			errs = append(errs, domain.FieldError{Field: f.field, Message: "must not be blank"})
		}
	}
	if p.MaxStockLevel != 0 && p.MaxStockLevel < p.MinStockLevel {
		errs = append(errs, domain.FieldError{Field: "maxStockLevel", Message: "must be >= minStockLevel"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if input.SupplierID != nil {
		supplierID := strings.TrimSpace(*input.SupplierID)
		if supplierID != "" {
			if _, err := s.suppliers.GetByID(ctx, supplierID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.NewValidationError("supplierId", "unknown supplier")
				}
				return fmt.Errorf("get supplier: %w", err)
			}
		}
		p.SupplierID = supplierID
	}

	discontinued := p.Status == domain.ProductStatusDiscontinued
	if input.Status != nil {
		discontinued = *input.Status == domain.ProductStatusDiscontinued
	}
	if discontinued {
		p.Status = domain.ProductStatusDiscontinued
	} else {
		p.Status = domain.DeriveStatus(p.CurrentStock, p.ReorderPoint)
	}

	return nil
}
