package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// ListTransactions returns stock log entries newest first.
func (s *Service) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]domain.StockTransaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.TransactionsLimit
	}

	txs, err := s.transactions.List(ctx, domain.TransactionFilter{
		ProductID: strings.TrimSpace(input.ProductID),
		Limit:     min(limit, MaxTransactionsLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
