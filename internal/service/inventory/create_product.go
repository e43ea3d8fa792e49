package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

const initialStockNote = "Initial stock"

// CreateProduct adds a product with zero stock and then books InitialStock
// through the stock mutator, so the log and alerts stay consistent.
// Returns domain.ErrAlreadyExists if the SKU is taken.
func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := s.resolveActor(ctx, "")
	supplierID := strings.TrimSpace(input.SupplierID)

	var created *domain.Product
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.products.GetBySKU(ctx, strings.TrimSpace(input.SKU)); err == nil {
			return fmt.Errorf("sku %s: %w", input.SKU, domain.ErrAlreadyExists)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check sku: %w", err)
		}

		if supplierID != "" {
			if _, err := s.suppliers.GetByID(ctx, supplierID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.NewValidationError("supplierId", "unknown supplier")
				}
				return fmt.Errorf("get supplier: %w", err)
			}
		}

		now := s.now()
		p, err := s.products.Create(ctx, &domain.Product{
			ID:            s.newID(),
			SKU:           strings.TrimSpace(input.SKU),
			Name:          strings.TrimSpace(input.Name),
			Category:      strings.TrimSpace(input.Category),
			Description:   strings.TrimSpace(input.Description),
			Price:         input.Price,
			Cost:          input.Cost,
			MinStockLevel: input.MinStockLevel,
			MaxStockLevel: input.MaxStockLevel,
			ReorderPoint:  input.ReorderPoint,
			SupplierID:    supplierID,
			Location:      strings.TrimSpace(input.Location),
			LastRestocked: now,
			Status:        domain.DeriveStatus(0, input.ReorderPoint),
			CreatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		note := initialStockNote
		created, _, err = s.applyStockChange(ctx, p.ID, input.InitialStock, domain.TransactionTypeAdjustment, actor, &note)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "product created",
		slog.String("product_id", created.ID),
		slog.String("sku", created.SKU),
		slog.Int("stock", created.CurrentStock),
		slog.String("actor", actor),
	)

	return created, nil
}
