// Package product implements the Product repository over the in-memory store.
package product

import (
	"context"
	"slices"
	"strings"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// Repo provides product persistence backed by memory.DB.
type Repo struct {
	db *memory.DB
}

// New creates a new product repository.
func New(db *memory.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a copy of the product with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		i := indexByID(t.Products, id)
		if i < 0 {
			return memory.NotFound("product", id)
		}
		out = t.Products[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBySKU returns a copy of the product with the given SKU (case-insensitive).
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var out domain.Product
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		i := slices.IndexFunc(t.Products, func(p domain.Product) bool {
			return strings.EqualFold(p.SKU, sku)
		})
		if i < 0 {
			return memory.NotFound("product", sku)
		}
		out = t.Products[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns copies of all products matching the filter, in insertion order.
// Returns an empty slice when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := []domain.Product{}
	err := r.db.Read(ctx, func(t *memory.Tables) error {
		for _, p := range t.Products {
			if filter.Category != "" && p.Category != filter.Category {
				continue
			}
			if filter.Status != "" && p.Status != filter.Status {
				continue
			}
			if search != "" && !matchesSearch(p, search) {
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a product. Returns domain.ErrAlreadyExists if the id or SKU is taken.
func (r *Repo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	out := *p
	err := r.db.Write(ctx, func(t *memory.Tables) error {
		for _, existing := range t.Products {
			if existing.ID == p.ID {
				return memory.AlreadyExists("product", p.ID)
			}
			if strings.EqualFold(existing.SKU, p.SKU) {
				return memory.AlreadyExists("product sku", p.SKU)
			}
		}
		t.Products = append(t.Products, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the stored product with the same id.
// Returns domain.ErrNotFound if it does not exist and domain.ErrAlreadyExists
// if the new SKU belongs to another product.
func (r *Repo) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	out := *p
	err := r.db.Write(ctx, func(t *memory.Tables) error {
		i := indexByID(t.Products, p.ID)
		if i < 0 {
			return memory.NotFound("product", p.ID)
		}
		for j, existing := range t.Products {
			if j != i && strings.EqualFold(existing.SKU, p.SKU) {
				return memory.AlreadyExists("product sku", p.SKU)
			}
		}
		t.Products[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the product with the given id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.Write(ctx, func(t *memory.Tables) error {
		i := indexByID(t.Products, id)
		if i < 0 {
			return memory.NotFound("product", id)
		}
		t.Products = slices.Delete(t.Products, i, i+1)
		return nil
	})
}

func indexByID(products []domain.Product, id string) int {
	return slices.IndexFunc(products, func(p domain.Product) bool { return p.ID == id })
}

func matchesSearch(p domain.Product, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.SKU), lowered) ||
		strings.Contains(strings.ToLower(p.Category), lowered)
}
