// Package transaction implements the append-only stock transaction log over the in-memory store.
package transaction

import (
	"context"
	"slices"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// Repo provides the stock transaction log backed by memory.DB.
// Entries are never updated or deleted.
type Repo struct {
	db *memory.DB
}

// New creates a new transaction repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// Prepend records a new transaction at the head of the log.
func (r *Repo) Prepend(ctx context.Context, tx *domain.StockTransaction) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		t.Transactions = slices.Insert(t.Transactions, 0, clone(*tx))
		return nil
	})
}

// Append records a transaction at the tail of the log. Used when loading
// history that is already ordered newest first.
func (r *Repo) Append(ctx context.Context, tx *domain.StockTransaction) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		t.Transactions = append(t.Transactions, clone(*tx))
		return nil
	})
}

// List returns log entries newest first, optionally restricted to one
// product and truncated to filter.Limit entries.
func (r *Repo) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.StockTransaction, error) {
	out := []domain.StockTransaction{}
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		for _, tx := range t.Transactions {
			if filter.Limit > 0 && len(out) >= filter.Limit {
				break
			}
			if filter.ProductID != "" && tx.ProductID != filter.ProductID {
				continue
			}
			out = append(out, clone(tx))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// clone detaches tx from the caller so the log cannot change behind the store.
func clone(tx domain.StockTransaction) domain.StockTransaction {
	if tx.Notes != nil {
		notes := *tx.Notes
		tx.Notes = &notes
	}
	return tx
}
