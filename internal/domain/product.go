package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stocked item. Status is a cached value derived from
// CurrentStock and ReorderPoint, except for the manual discontinued state.
type Product struct {
	ID            string
	SKU           string
	Name          string
	Category      string
	Description   string
	Price         decimal.Decimal
	Cost          decimal.Decimal
	CurrentStock  int
	MinStockLevel int
	MaxStockLevel int
	ReorderPoint  int
	SupplierID    string
	Location      string
	LastRestocked time.Time
	Status        ProductStatus
	// CreatedAt is zero for products that predate the transaction log.
	CreatedAt time.Time
}

// StockValue returns CurrentStock * Price.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

// DeriveStatus computes the stock status for a level and reorder point.
// Zero and, when backorders are allowed, negative stock count as out of stock.
func DeriveStatus(stock, reorderPoint int) ProductStatus {
	switch {
	case stock <= 0:
		return ProductStatusOutOfStock
	case stock <= reorderPoint:
		return ProductStatusLowStock
	default:
		return ProductStatusInStock
	}
}
