// Package memory implements the process-local record store. Every entity
// repository in the subpackages shares one DB guarded by a single RWMutex.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// Tables holds every collection of the store. Ordered collections keep the
// order the dashboard shows them in: products and suppliers in insertion
// order, transactions and alerts newest first.
type Tables struct {
	Products     []domain.Product
	Suppliers    []domain.Supplier
	Transactions []domain.StockTransaction
	Alerts       []domain.InventoryAlert
	Users        []domain.User
	Sessions     map[string]domain.Session
}

func (t *Tables) clone() *Tables {
	return &Tables{
		Products:     slices.Clone(t.Products),
		Suppliers:    slices.Clone(t.Suppliers),
		Transactions: slices.Clone(t.Transactions),
		Alerts:       slices.Clone(t.Alerts),
		Users:        slices.Clone(t.Users),
		Sessions:     maps.Clone(t.Sessions),
	}
}

// DB is an in-memory database. Create one per process (or per test) with NewDB.
type DB struct {
	mu     sync.RWMutex
	tables *Tables
}

// NewDB creates an empty DB.
func NewDB() *DB {
	return &DB{tables: &Tables{Sessions: make(map[string]domain.Session)}}
}

// Read runs fn with shared access to the tables. fn must not modify them or
// retain references after it returns.
func (db *DB) Read(ctx context.Context, fn func(t *Tables) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inTx(ctx, db) {
		return fn(db.tables)
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(db.tables)
}

// Write runs fn with exclusive access to the tables. Outside of a
// transaction, a failed fn may leave partial changes; callers that need
// atomicity use TxManager.RunInTx.
func (db *DB) Write(ctx context.Context, fn func(t *Tables) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inTx(ctx, db) {
		return fn(db.tables)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(db.tables)
}

// Stats counts the records held in each collection.
type Stats struct {
	Products     int `json:"products"`
	Suppliers    int `json:"suppliers"`
	Transactions int `json:"transactions"`
	Alerts       int `json:"alerts"`
	Users        int `json:"users"`
	Sessions     int `json:"sessions"`
}

// Stats takes a read lock and reports the collection sizes.
func (db *DB) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := db.Read(ctx, func(t *Tables) error {
		s = Stats{
			Products:     len(t.Products),
			Suppliers:    len(t.Suppliers),
			Transactions: len(t.Transactions),
			Alerts:       len(t.Alerts),
			Users:        len(t.Users),
			Sessions:     len(t.Sessions),
		}
		return nil
	})
	return s, err
}

// NotFound wraps domain.ErrNotFound with the entity and key that missed.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}

// AlreadyExists wraps domain.ErrAlreadyExists with the entity and key that collided.
func AlreadyExists(entity, key string) error {
	return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
}
