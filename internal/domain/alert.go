package domain

import (
	"fmt"
	"time"
)

// OutOfStockMessage is the fixed message of an out-of-stock alert.
const OutOfStockMessage = "Product is completely out of stock. Immediate reorder required."

// InventoryAlert flags a product whose stock needs attention.
// At most one alert exists per product.
type InventoryAlert struct {
	ID          string
	ProductID   string
	ProductName string
	Type        AlertType
	Severity    AlertSeverity
	Message     string
	Timestamp   time.Time
}

// DeriveAlert returns the alert a product should carry for its current stock,
// or nil when the product is healthy. ID is left empty for the caller to fill.
func DeriveAlert(p *Product, now time.Time) *InventoryAlert {
	switch {
	case p.CurrentStock <= 0:
		return &InventoryAlert{
			ProductID:   p.ID,
			ProductName: p.Name,
			Type:        AlertTypeOutOfStock,
			Severity:    AlertSeverityHigh,
			Message:     OutOfStockMessage,
			Timestamp:   now,
		}
	case p.CurrentStock <= p.ReorderPoint:
		severity := AlertSeverityMedium
		reason := "approaching reorder point"
		if p.CurrentStock < p.MinStockLevel {
			severity = AlertSeverityHigh
			reason = "below minimum threshold"
		}
		return &InventoryAlert{
			ProductID:   p.ID,
			ProductName: p.Name,
			Type:        AlertTypeLowStock,
			Severity:    severity,
			Message:     fmt.Sprintf("Stock %s (%d units remaining).", reason, p.CurrentStock),
			Timestamp:   now,
		}
	default:
		return nil
	}
}
