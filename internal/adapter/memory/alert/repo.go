// Package alert implements the InventoryAlert repository over the in-memory store.
package alert

import (
	"context"
	"slices"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// Repo provides alert persistence backed by memory.DB.
type Repo struct {
	db *memory.DB
}

// New creates a new alert repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// List returns copies of all alerts, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.InventoryAlert, error) {
	var out []domain.InventoryAlert
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		out = slices.Clone(t.Alerts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.InventoryAlert{}
	}
	return out, nil
}

// ReplaceForProduct removes every alert of productID and, if a is non-nil,
// prepends it.
func (r *Repo) ReplaceForProduct(ctx context.Context, productID string, a *domain.InventoryAlert) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		t.Alerts = slices.DeleteFunc(t.Alerts, func(e domain.InventoryAlert) bool {
			return e.ProductID == productID
		})
		if a != nil {
			t.Alerts = slices.Insert(t.Alerts, 0, *a)
		}
		return nil
	})
}

// Delete removes the alert with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		i := slices.IndexFunc(t.Alerts, func(a domain.InventoryAlert) bool { return a.ID == id })
		if i < 0 {
			return memory.NotFound("alert", id)
		}
		t.Alerts = slices.Delete(t.Alerts, i, i+1)
		return nil
	})
}
