package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/pkg/ctxutil"
)

// ApplyStockChange adds input.Quantity (possibly negative) to the product's
// stock, recomputes its status, records a transaction at the head of the log
// and re-derives the product's alert. All of it happens in one transaction.
//
// Returns domain.ErrNotFound for an unknown product and an
// *domain.InsufficientStockError when the result would be negative while
// backorders are disabled.
func (s *Service) ApplyStockChange(ctx context.Context, input StockChangeInput) (*domain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor := s.resolveActor(ctx, input.UserID)
	notes := trimOrNil(input.Notes)

	var (
		updated *domain.Product
		txn     *domain.StockTransaction
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, txn, err = s.applyStockChange(ctx, input.ProductID, input.Quantity, input.Type, actor, notes)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("apply stock change: %w", err)
	}

	s.log.InfoContext(ctx, "stock changed",
		slog.String("product_id", updated.ID),
		slog.String("type", txn.Type.String()),
		slog.Int("quantity", txn.Quantity),
		slog.Int("previous_stock", txn.PreviousStock),
		slog.Int("new_stock", txn.NewStock),
		slog.String("status", updated.Status.String()),
		slog.String("actor", actor),
	)

	return updated, nil
}

// applyStockChange is the mutator body. It must run inside a transaction.
func (s *Service) applyStockChange(
	ctx context.Context,
	productID string,
	delta int,
	typ domain.TransactionType,
	actor string,
	notes *string,
) (*domain.Product, *domain.StockTransaction, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	previous := p.CurrentStock
	next := previous + delta
	if next < 0 && !s.cfg.AllowNegativeStock {
		return nil, nil, &domain.InsufficientStockError{ProductID: p.ID, Current: previous, Delta: delta}
	}

	now := s.now()
	p.CurrentStock = next
	p.Status = domain.DeriveStatus(next, p.ReorderPoint)
	p.LastRestocked = now

	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return nil, nil, fmt.Errorf("update product: %w", err)
	}

	txn := &domain.StockTransaction{
		ID:            s.newID(),
		ProductID:     p.ID,
		Type:          typ,
		Quantity:      delta,
		PreviousStock: previous,
		NewStock:      next,
		Timestamp:     now,
		UserID:        actor,
		Notes:         notes,
	}
	if err := s.transactions.Prepend(ctx, txn); err != nil {
		return nil, nil, fmt.Errorf("record transaction: %w", err)
	}

	if err := s.deriveAlert(ctx, updated, now); err != nil {
		return nil, nil, err
	}

	return updated, txn, nil
}

// deriveAlert replaces the product's alert with the one its stock calls for.
func (s *Service) deriveAlert(ctx context.Context, p *domain.Product, now time.Time) error {
	a := domain.DeriveAlert(p, now)
	if a != nil {
		a.ID = s.newID()
	}
	if err := s.alerts.ReplaceForProduct(ctx, p.ID, a); err != nil {
		return fmt.Errorf("derive alert: %w", err)
	}
	return nil
}

// resolveActor picks the explicit user id, then the session user, then the
// configured default actor.
func (s *Service) resolveActor(ctx context.Context, explicit string) string {
	if actor := strings.TrimSpace(explicit); actor != "" {
		return actor
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return userID
	}
	return s.cfg.DefaultActor
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
