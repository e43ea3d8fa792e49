package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// ExportProducts renders the filtered product list as an XLSX workbook.
// Returns a validation error when the result exceeds the configured row cap.
func (s *Service) ExportProducts(ctx context.Context, input ListProductsInput) ([]byte, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		products  []domain.Product
		suppliers []domain.Supplier
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		products, err = s.products.List(gctx, input.filter())
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		suppliers, err = s.suppliers.List(gctx)
		if err != nil {
			return fmt.Errorf("list suppliers: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}

	if len(products) > s.cfg.ExportMaxRows {
		return nil, domain.NewValidationError("filter",
			fmt.Sprintf("export limited to %d products (matched %d)", s.cfg.ExportMaxRows, len(products)))
	}

	names := make(map[string]string, len(suppliers))
	for _, sup := range suppliers {
		names[sup.ID] = sup.Name
	}

	data, err := s.workbook.ProductWorkbook(products, names)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}

	s.log.InfoContext(ctx, "products exported", slog.Int("rows", len(products)), slog.Int("bytes", len(data)))
	return data, nil
}
