package seeder

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/internal/validate"
)

//go:embed data.json
var embedded []byte

// Dataset is the on-disk seed format.
type Dataset struct {
	Suppliers    []SupplierRecord    `json:"suppliers"    validate:"dive"`
	Users        []UserRecord        `json:"users"        validate:"dive"`
	Products     []ProductRecord     `json:"products"     validate:"dive"`
	Transactions []TransactionRecord `json:"transactions" validate:"dive"`
}

// SupplierRecord is a seed supplier.
type SupplierRecord struct {
	ID             string                `json:"id"             validate:"required"`
	Name           string                `json:"name"           validate:"required"`
	ContactPerson  string                `json:"contactPerson"`
	Email          string                `json:"email"          validate:"omitempty,email"`
	Phone          string                `json:"phone"`
	Address        string                `json:"address"`
	Rating         float64               `json:"rating"         validate:"gte=0,lte=5"`
	TotalOrders    int                   `json:"totalOrders"    validate:"gte=0"`
	OnTimeDelivery float64               `json:"onTimeDelivery" validate:"gte=0,lte=100"`
	Status         domain.SupplierStatus `json:"status"         validate:"oneof=active inactive"`
}

// UserRecord is a seed user.
type UserRecord struct {
	ID     string          `json:"id"     validate:"required"`
	Email  string          `json:"email"  validate:"required,email"`
	Name   string          `json:"name"   validate:"required"`
	Role   domain.UserRole `json:"role"   validate:"oneof=admin manager supplier viewer"`
	Avatar *string         `json:"avatar"`
}

// ProductRecord is a seed product. Status is only read when it is
// "discontinued"; otherwise it is derived from the stock level.
type ProductRecord struct {
	ID                    string               `json:"id"                    validate:"required"`
	SKU                   string               `json:"sku"                   validate:"required"`
	Name                  string               `json:"name"                  validate:"required"`
	Category              string               `json:"category"              validate:"required"`
	Description           string               `json:"description"`
	Price                 decimal.Decimal      `json:"price"`
	Cost                  decimal.Decimal      `json:"cost"`
	CurrentStock          int                  `json:"currentStock"`
	MinStockLevel         int                  `json:"minStockLevel"         validate:"gte=0"`
	MaxStockLevel         int                  `json:"maxStockLevel"         validate:"gte=0"`
	ReorderPoint          int                  `json:"reorderPoint"          validate:"gte=0"`
	SupplierID            string               `json:"supplierId"`
	Location              string               `json:"location"`
	LastRestockedHoursAgo int                  `json:"lastRestockedHoursAgo" validate:"gte=0"`
	Status                domain.ProductStatus `json:"status"                validate:"omitempty,oneof=in-stock low-stock out-of-stock discontinued"`
}

// TransactionRecord is a seed history entry. Entries are listed newest
// first; stock before and after each one is reconstructed from the
// product's current stock.
type TransactionRecord struct {
	ProductID string                 `json:"productId" validate:"required"`
	Type      domain.TransactionType `json:"type"      validate:"oneof=purchase sale adjustment return"`
	Quantity  int                    `json:"quantity"  validate:"ne=0"`
	HoursAgo  int                    `json:"hoursAgo"  validate:"gte=0"`
	UserID    string                 `json:"userId"    validate:"required"`
	Notes     *string                `json:"notes"`
}

// Load reads a dataset from path, or the built-in one when path is empty.
func Load(path string) (*Dataset, error) {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("seeder: read %s: %w", path, err)
		}
		raw = b
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("seeder: decode dataset: %w", err)
	}
	if err := validate.Struct(ds); err != nil {
		return nil, fmt.Errorf("seeder: %w", err)
	}
	if err := ds.checkRefs(); err != nil {
		return nil, fmt.Errorf("seeder: %w", err)
	}
	return &ds, nil
}

// checkRefs verifies that ids are unique and that every reference resolves.
func (ds *Dataset) checkRefs() error {
	suppliers := make(map[string]bool, len(ds.Suppliers))
	for _, s := range ds.Suppliers {
		if suppliers[s.ID] {
			return fmt.Errorf("duplicate supplier id %q", s.ID)
		}
		suppliers[s.ID] = true
	}

	products := make(map[string]bool, len(ds.Products))
	skus := make(map[string]bool, len(ds.Products))
	for _, p := range ds.Products {
		if products[p.ID] || skus[p.SKU] {
			return fmt.Errorf("duplicate product %q (%s)", p.ID, p.SKU)
		}
		products[p.ID], skus[p.SKU] = true, true
		if p.SupplierID != "" && !suppliers[p.SupplierID] {
			return fmt.Errorf("product %q: unknown supplier %q", p.ID, p.SupplierID)
		}
	}

	for i, tx := range ds.Transactions {
		if !products[tx.ProductID] {
			return fmt.Errorf("transaction %d: unknown product %q", i, tx.ProductID)
		}
		if i > 0 && tx.HoursAgo < ds.Transactions[i-1].HoursAgo {
			return fmt.Errorf("transaction %d: history must be ordered newest first", i)
		}
	}
	return nil
}
