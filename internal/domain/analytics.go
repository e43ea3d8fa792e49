package domain

import "github.com/shopspring/decimal"

// KPI is a single summary metric. Value holds either a count or a
// preformatted string.
type KPI struct {
	Label  string
	Value  any
	Change float64
	Trend  Trend
}

// StockTrendPoint counts products per status at the end of a day.
type StockTrendPoint struct {
	Date       string
	InStock    int
	LowStock   int
	OutOfStock int
}

// CategoryShare is the number of units held in one category.
type CategoryShare struct {
	Category   string
	Value      int
	Percentage float64
}

// RevenuePoint is sales revenue and purchase cost for one month.
type RevenuePoint struct {
	Month   string
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// SupplierPerformance is the chart row for one supplier.
type SupplierPerformance struct {
	Name           string
	OnTimeDelivery float64
	Rating         float64
	TotalOrders    int
}
