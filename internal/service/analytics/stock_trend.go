package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

const dayLayout = "2006-01-02"

// StockTrend returns, for each of the last days (oldest first, today last),
// how many products were in stock, low and out of stock at the end of that
// day. Past levels are reconstructed by undoing logged transactions from the
// current state. Discontinued products are left out, and so is a product on
// every day that ended before it was created.
func (s *Service) StockTrend(ctx context.Context, days int) ([]domain.StockTrendPoint, error) {
	if days <= 0 {
		days = s.cfg.TrendDays
	}
	if days > 366 {
		return nil, domain.NewValidationError("days", "max 366")
	}

	products, err := s.products.List(ctx, domain.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	txs, err := s.transactions.List(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	stock := make(map[string]int, len(products))
	reorder := make(map[string]int, len(products))
	created := make(map[string]time.Time, len(products))
	for _, p := range products {
		if p.Status == domain.ProductStatusDiscontinued {
			continue
		}
		stock[p.ID] = p.CurrentStock
		reorder[p.ID] = p.ReorderPoint
		created[p.ID] = p.CreatedAt
	}

	today := startOfDay(s.now())
	points := make([]domain.StockTrendPoint, days)
	next := 0 // index into txs, newest first

	for k := 0; k < days; k++ {
		day := today.AddDate(0, 0, -k)
		cutoff := day.AddDate(0, 0, 1)

		for ; next < len(txs) && !txs[next].Timestamp.Before(cutoff); next++ {
			if _, ok := stock[txs[next].ProductID]; ok {
				stock[txs[next].ProductID] = txs[next].PreviousStock
			}
		}

		point := domain.StockTrendPoint{Date: day.Format(dayLayout)}
		for id, level := range stock {
			if c := created[id]; !c.IsZero() && !c.Before(cutoff) {
				continue
			}
			switch domain.DeriveStatus(level, reorder[id]) {
			case domain.ProductStatusInStock:
				point.InStock++
			case domain.ProductStatusLowStock:
				point.LowStock++
			case domain.ProductStatusOutOfStock:
				point.OutOfStock++
			}
		}
		points[days-1-k] = point
	}

	return points, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
