package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// KPI labels in display order.
const (
	LabelTotalProducts   = "Total Products"
	LabelTotalStockUnits = "Total Stock Units"
	LabelLowStockItems   = "Low Stock Items"
	LabelOutOfStock      = "Out of Stock"
	LabelInventoryValue  = "Inventory Value"
	LabelActiveSuppliers = "Active Suppliers"
)

// kpiPlaceholder holds the change/trend shown next to each KPI. There is no
// KPI history to compute them from.
var kpiPlaceholder = map[string]struct {
	change float64
	trend  domain.Trend
}{
	LabelTotalProducts:   {5.2, domain.TrendUp},
	LabelTotalStockUnits: {-2.4, domain.TrendDown},
	LabelLowStockItems:   {12.5, domain.TrendUp},
	LabelOutOfStock:      {8.3, domain.TrendUp},
	LabelInventoryValue:  {3.7, domain.TrendUp},
	LabelActiveSuppliers: {0, domain.TrendNeutral},
}

var thousand = decimal.NewFromInt(1000)

// KPIs returns the six dashboard metrics computed by a full scan of products
// and suppliers.
func (s *Service) KPIs(ctx context.Context) ([]domain.KPI, error) {
	products, err := s.products.List(ctx, domain.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	var (
		units, low, out int
		value           = decimal.Zero
	)
	for i := range products {
		p := &products[i]
		units += p.CurrentStock
		value = value.Add(p.StockValue())
		switch p.Status {
		case domain.ProductStatusLowStock:
			low++
		case domain.ProductStatusOutOfStock:
			out++
		}
	}

	active := 0
	for i := range suppliers {
		if suppliers[i].IsActive() {
			active++
		}
	}

	s.log.DebugContext(ctx, "kpis computed",
		slog.Int("products", len(products)),
		slog.Int("suppliers", len(suppliers)),
	)

	return []domain.KPI{
		kpi(LabelTotalProducts, len(products)),
		kpi(LabelTotalStockUnits, humanize.Comma(int64(units))),
		kpi(LabelLowStockItems, low),
		kpi(LabelOutOfStock, out),
		kpi(LabelInventoryValue, FormatThousands(value)),
		kpi(LabelActiveSuppliers, active),
	}, nil
}

// FormatThousands renders an amount as whole thousands of dollars, e.g. "$125K".
func FormatThousands(v decimal.Decimal) string {
	return "$" + humanize.Comma(v.Div(thousand).Round(0).IntPart()) + "K"
}

func kpi(label string, value any) domain.KPI {
	p := kpiPlaceholder[label]
	return domain.KPI{Label: label, Value: value, Change: p.change, Trend: p.trend}
}
