package analytics

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// CategoryDistribution returns units on hand per category, largest first,
// with each category's share of all units rounded to one decimal.
// Negative (backordered) stock counts as zero.
func (s *Service) CategoryDistribution(ctx context.Context) ([]domain.CategoryShare, error) {
	products, err := s.products.List(ctx, domain.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	units := make(map[string]int)
	total := 0
	for _, p := range products {
		n := max(p.CurrentStock, 0)
		units[p.Category] += n
		total += n
	}

	out := make([]domain.CategoryShare, 0, len(units))
	for category, n := range units {
		share := domain.CategoryShare{Category: category, Value: n}
		if total > 0 {
			share.Percentage = decimal.NewFromInt(int64(n)).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(total))).
				Round(1).
				InexactFloat64()
		}
		out = append(out, share)
	}

	slices.SortFunc(out, func(a, b domain.CategoryShare) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	return out, nil
}
