package rest

import (
	"time"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

type productResponse struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost"`
	CurrentStock  int       `json:"currentStock"`
	MinStockLevel int       `json:"minStockLevel"`
	MaxStockLevel int       `json:"maxStockLevel"`
	ReorderPoint  int       `json:"reorderPoint"`
	SupplierID    string    `json:"supplierId"`
	Location      string    `json:"location"`
	LastRestocked time.Time `json:"lastRestocked"`
	Status        string    `json:"status"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		Price:         p.Price.InexactFloat64(),
		Cost:          p.Cost.InexactFloat64(),
		CurrentStock:  p.CurrentStock,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		ReorderPoint:  p.ReorderPoint,
		SupplierID:    p.SupplierID,
		Location:      p.Location,
		LastRestocked: p.LastRestocked,
		Status:        p.Status.String(),
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

type transactionResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	Timestamp     time.Time `json:"timestamp"`
	UserID        string    `json:"userId"`
	Notes         *string   `json:"notes,omitempty"`
}

func toTransactionResponses(txs []domain.StockTransaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionResponse{
			ID:            tx.ID,
			ProductID:     tx.ProductID,
			Type:          tx.Type.String(),
			Quantity:      tx.Quantity,
			PreviousStock: tx.PreviousStock,
			NewStock:      tx.NewStock,
			Timestamp:     tx.Timestamp,
			UserID:        tx.UserID,
			Notes:         tx.Notes,
		})
	}
	return out
}

type alertResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

func toAlertResponses(alerts []domain.InventoryAlert) []alertResponse {
	out := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, alertResponse{
			ID:          a.ID,
			ProductID:   a.ProductID,
			ProductName: a.ProductName,
			Type:        a.Type.String(),
			Severity:    a.Severity.String(),
			Message:     a.Message,
			Timestamp:   a.Timestamp,
		})
	}
	return out
}

type supplierResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ContactPerson  string  `json:"contactPerson"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Rating         float64 `json:"rating"`
	TotalOrders    int     `json:"totalOrders"`
	OnTimeDelivery float64 `json:"onTimeDelivery"`
	Status         string  `json:"status"`
}

func toSupplierResponse(s *domain.Supplier) supplierResponse {
	return supplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		ContactPerson:  s.ContactPerson,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		Rating:         s.Rating,
		TotalOrders:    s.TotalOrders,
		OnTimeDelivery: s.OnTimeDelivery,
		Status:         s.Status.String(),
	}
}

type userResponse struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String(), Avatar: u.Avatar}
}

type kpiResponse struct {
	Label  string  `json:"label"`
	Value  any     `json:"value"`
	Change float64 `json:"change"`
	Trend  string  `json:"trend"`
}

type stockTrendResponse struct {
	Date       string `json:"date"`
	InStock    int    `json:"inStock"`
	LowStock   int    `json:"lowStock"`
	OutOfStock int    `json:"outOfStock"`
}

type categoryShareResponse struct {
	Category   string  `json:"category"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

type revenueResponse struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

type supplierPerformanceResponse struct {
	Name           string  `json:"name"`
	OnTimeDelivery float64 `json:"onTimeDelivery"`
	Rating         float64 `json:"rating"`
	TotalOrders    int     `json:"totalOrders"`
}
