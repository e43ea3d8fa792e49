// Package supplier implements the read-only Supplier repository over the in-memory store.
package supplier

import (
	"context"
	"slices"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// Repo provides supplier lookups backed by memory.DB.
type Repo struct {
	db *memory.DB
}

// New creates a new supplier repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a copy of the supplier with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	var out domain.Supplier
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		i := slices.IndexFunc(t.Suppliers, func(s domain.Supplier) bool { return s.ID == id })
		if i < 0 {
			return memory.NotFound("supplier", id)
		}
		out = t.Suppliers[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns copies of all suppliers in insertion order.
func (r *Repo) List(ctx context.Context) ([]domain.Supplier, error) {
	var out []domain.Supplier
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		out = slices.Clone(t.Suppliers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Supplier{}
	}
	return out, nil
}

// Create appends a supplier. Returns domain.ErrAlreadyExists if the id is taken.
func (r *Repo) Create(ctx context.Context, s *domain.Supplier) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		if slices.ContainsFunc(t.Suppliers, func(e domain.Supplier) bool { return e.ID == s.ID }) {
			return memory.AlreadyExists("supplier", s.ID)
		}
		t.Suppliers = append(t.Suppliers, *s)
		return nil
	})
}
