package analytics

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// SupplierPerformance returns delivery metrics per supplier, best on-time
// rate first.
func (s *Service) SupplierPerformance(ctx context.Context) ([]domain.SupplierPerformance, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	out := make([]domain.SupplierPerformance, 0, len(suppliers))
	for _, sup := range suppliers {
		out = append(out, domain.SupplierPerformance{
			Name:           sup.Name,
			OnTimeDelivery: sup.OnTimeDelivery,
			Rating:         sup.Rating,
			TotalOrders:    sup.TotalOrders,
		})
	}

	slices.SortStableFunc(out, func(a, b domain.SupplierPerformance) int {
		return cmp.Compare(b.OnTimeDelivery, a.OnTimeDelivery)
	})

	return out, nil
}
