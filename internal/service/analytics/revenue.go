package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

const monthLayout = "2006-01"

// Revenue returns one row per calendar month for the last months (oldest
// first, current month last). Revenue is units sold minus units returned at
// the product's price; cost is units purchased at the product's cost.
// Transactions of deleted products are ignored.
func (s *Service) Revenue(ctx context.Context, months int) ([]domain.RevenuePoint, error) {
	if months <= 0 {
		months = s.cfg.RevenueMonths
	}
	if months > 36 {
		return nil, domain.NewValidationError("months", "max 36")
	}

	products, err := s.products.List(ctx, domain.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	txs, err := s.transactions.List(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	points := make([]domain.RevenuePoint, months)
	index := make(map[string]int, months)
	for i := range points {
		label := first.AddDate(0, i, 0).Format(monthLayout)
		points[i] = domain.RevenuePoint{Month: label, Revenue: decimal.Zero, Cost: decimal.Zero}
		index[label] = i
	}

	for _, tx := range txs {
		i, ok := index[tx.Timestamp.In(now.Location()).Format(monthLayout)]
		if !ok {
			continue
		}
		p, ok := byID[tx.ProductID]
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(tx.Quantity))
		switch tx.Type {
		case domain.TransactionTypeSale, domain.TransactionTypeReturn:
			// Sales are negative deltas, returns positive: both reduce to -qty * price.
			points[i].Revenue = points[i].Revenue.Sub(qty.Mul(p.Price))
		case domain.TransactionTypePurchase:
			points[i].Cost = points[i].Cost.Add(qty.Mul(p.Cost))
		}
	}

	return points, nil
}
