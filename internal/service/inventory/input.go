package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/internal/validate"
)

// StockChangeInput holds the parameters for a stock mutation.
type StockChangeInput struct {
	ProductID string                 `json:"productId" validate:"required"`
	Quantity  int                    `json:"quantity"`
	Type      domain.TransactionType `json:"type"      validate:"required,oneof=purchase sale adjustment return"`
	UserID    string                 `json:"userId"    validate:"max=100"`
	Notes     *string                `json:"notes"     validate:"omitempty,max=500"`
}

// Validate checks all fields and collects all errors.
func (i StockChangeInput) Validate() error {
	return validate.Struct(i)
}

// ListProductsInput holds the optional product filter.
type ListProductsInput struct {
	Category string               `json:"category"`
	Status   domain.ProductStatus `json:"status" validate:"omitempty,oneof=in-stock low-stock out-of-stock discontinued"`
	Search   string               `json:"search" validate:"max=200"`
}

// Validate checks all fields and collects all errors.
func (i ListProductsInput) Validate() error {
	return validate.Struct(i)
}

func (i ListProductsInput) filter() domain.ProductFilter {
	return domain.ProductFilter{
		Category: strings.TrimSpace(i.Category),
		Status:   i.Status,
		Search:   strings.TrimSpace(i.Search),
	}
}

// CreateProductInput holds the parameters for creating a product.
// InitialStock is booked through the stock mutator as an adjustment.
type CreateProductInput struct {
	SKU           string          `json:"sku"           validate:"required,max=64"`
	Name          string          `json:"name"          validate:"required,max=200"`
	Category      string          `json:"category"      validate:"required,max=100"`
	Description   string          `json:"description"   validate:"max=2000"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	InitialStock  int             `json:"currentStock"  validate:"gte=0"`
	MinStockLevel int             `json:"minStockLevel" validate:"gte=0"`
	MaxStockLevel int             `json:"maxStockLevel" validate:"omitempty,gtefield=MinStockLevel"`
	ReorderPoint  int             `json:"reorderPoint"  validate:"gte=0"`
	SupplierID    string          `json:"supplierId"    validate:"max=64"`
	Location      string          `json:"location"      validate:"max=100"`
}

// Validate checks all fields and collects all errors.
func (i CreateProductInput) Validate() error {
	var errs []domain.FieldError

	if err := validate.Struct(i); err != nil {
		ve, ok := err.(*domain.ValidationError)
		if !ok {
			return err
		}
		errs = append(errs, ve.Errors...)
	}
	for _, blank := range []struct{ field, value string }{
		{"sku", i.SKU}, {"name", i.Name}, {"category", i.Category},
	} {
		if blank.value != "" && strings.TrimSpace(blank.value) == "" {
			errs = append(errs, domain.FieldError{Field: blank.field, Message: "required"})
		}
	}
	errs = append(errs, validateMoney("price", &i.Price)...)
	errs = append(errs, validateMoney("cost", &i.Cost)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProductInput holds a partial product update. Nil fields are left
// unchanged. Stock levels are changed only through ApplyStockChange.
type UpdateProductInput struct {
	ID            string                `json:"id"            validate:"required"`
	SKU           *string               `json:"sku"           validate:"omitempty,min=1,max=64"`
	Name          *string               `json:"name"          validate:"omitempty,min=1,max=200"`
	Category      *string               `json:"category"      validate:"omitempty,min=1,max=100"`
	Description   *string               `json:"description"   validate:"omitempty,max=2000"`
	Price         *decimal.Decimal      `json:"price"`
	Cost          *decimal.Decimal      `json:"cost"`
	MinStockLevel *int                  `json:"minStockLevel" validate:"omitempty,gte=0"`
	MaxStockLevel *int                  `json:"maxStockLevel" validate:"omitempty,gte=0"`
	ReorderPoint  *int                  `json:"reorderPoint"  validate:"omitempty,gte=0"`
	SupplierID    *string               `json:"supplierId"    validate:"omitempty,max=64"`
	Location      *string               `json:"location"      validate:"omitempty,max=100"`
	Status        *domain.ProductStatus `json:"status"        validate:"omitempty,oneof=in-stock low-stock out-of-stock discontinued"`
}

// Validate checks all fields and collects all errors.
func (i UpdateProductInput) Validate() error {
	var errs []domain.FieldError

	if err := validate.Struct(i); err != nil {
		ve, ok := err.(*domain.ValidationError)
		if !ok {
			return err
		}
		errs = append(errs, ve.Errors...)
	}
	if i.Price != nil {
		errs = append(errs, validateMoney("price", i.Price)...)
	}
	if i.Cost != nil {
		errs = append(errs, validateMoney("cost", i.Cost)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListTransactionsInput selects log entries. Limit 0 means the configured default.
type ListTransactionsInput struct {
	ProductID string `json:"productId"`
	Limit     int    `json:"limit" validate:"gte=0,lte=1000"`
}

// Validate checks all fields and collects all errors.
func (i ListTransactionsInput) Validate() error {
	return validate.Struct(i)
}

func validateMoney(field string, d *decimal.Decimal) []domain.FieldError {
	if d.IsNegative() {
		return []domain.FieldError{{Field: field, Message: "must be >= 0"}}
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return []domain.FieldError{{Field: field, Message: "at most 2 decimal places"}}
	}
	return nil
}
