// Package seeder loads the demo dataset into a fresh store at startup.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

type productRepo interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
}

type supplierRepo interface {
	Create(ctx context.Context, s *domain.Supplier) error
}

type userRepo interface {
	Create(ctx context.Context, u *domain.User) error
}

type transactionRepo interface {
	Append(ctx context.Context, tx *domain.StockTransaction) error
}

type alertRepo interface {
	ReplaceForProduct(ctx context.Context, productID string, a *domain.InventoryAlert) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result counts what a run inserted.
type Result struct {
	Suppliers    int
	Users        int
	Products     int
	Transactions int
	Alerts       int
	Duration     time.Duration
}

// Seeder writes a Dataset into the store in one transaction.
type Seeder struct {
	log          *slog.Logger
	products     productRepo
	suppliers    supplierRepo
	users        userRepo
	transactions transactionRepo
	alerts       alertRepo
	tx           txManager

	now   func() time.Time
	newID func() string
}

// New creates a new Seeder.
func New(
	log *slog.Logger,
	products productRepo,
	suppliers supplierRepo,
	users userRepo,
	transactions transactionRepo,
	alerts alertRepo,
	tx txManager,
) *Seeder {
	return &Seeder{
		log:          log.With("component", "seeder"),
		products:     products,
		suppliers:    suppliers,
		users:        users,
		transactions: transactions,
		alerts:       alerts,
		tx:           tx,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

// Run inserts ds. Either everything is inserted or nothing is.
func (s *Seeder) Run(ctx context.Context, ds *Dataset) (*Result, error) {
	start := time.Now()
	now := s.now()

	var res Result
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, r := range ds.Suppliers {
			sup := domain.Supplier{
				ID:             r.ID,
				Name:           r.Name,
				ContactPerson:  r.ContactPerson,
				Email:          r.Email,
				Phone:          r.Phone,
				Address:        r.Address,
				Rating:         r.Rating,
				TotalOrders:    r.TotalOrders,
				OnTimeDelivery: r.OnTimeDelivery,
				Status:         r.Status,
			}
			if err := s.suppliers.Create(ctx, &sup); err != nil {
				return fmt.Errorf("supplier %s: %w", r.ID, err)
			}
			res.Suppliers++
		}

		for _, r := range ds.Users {
			u := domain.User{ID: r.ID, Email: r.Email, Name: r.Name, Role: r.Role, Avatar: r.Avatar}
			if err := s.users.Create(ctx, &u); err != nil {
				return fmt.Errorf("user %s: %w", r.ID, err)
			}
			res.Users++
		}

		stock := make(map[string]int, len(ds.Products))
		for _, r := range ds.Products {
			p := toProduct(r, now)
			created, err := s.products.Create(ctx, &p)
			if err != nil {
				return fmt.Errorf("product %s: %w", r.ID, err)
			}
			stock[r.ID] = r.CurrentStock
			res.Products++

			a := domain.DeriveAlert(created, now)
			if a == nil {
				continue
			}
			a.ID = s.newID()
			if err := s.alerts.ReplaceForProduct(ctx, created.ID, a); err != nil {
				return fmt.Errorf("alert %s: %w", r.ID, err)
			}
			res.Alerts++
		}

		for i, r := range ds.Transactions {
			newStock := stock[r.ProductID]
			prev := newStock - r.Quantity
			if prev < 0 {
				return fmt.Errorf("transaction %d: product %s would start below zero", i, r.ProductID)
			}
			stock[r.ProductID] = prev

			tx := domain.StockTransaction{
				ID:            s.newID(),
				ProductID:     r.ProductID,
				Type:          r.Type,
				Quantity:      r.Quantity,
				PreviousStock: prev,
				NewStock:      newStock,
				Timestamp:     now.Add(-time.Duration(r.HoursAgo) * time.Hour),
				UserID:        r.UserID,
				Notes:         r.Notes,
			}
			if err := s.transactions.Append(ctx, &tx); err != nil {
				return fmt.Errorf("transaction %d: %w", i, err)
			}
			res.Transactions++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seeder: %w", err)
	}

	res.Duration = time.Since(start)
	s.log.InfoContext(ctx, "store seeded",
		slog.Int("suppliers", res.Suppliers),
		slog.Int("users", res.Users),
		slog.Int("products", res.Products),
		slog.Int("transactions", res.Transactions),
		slog.Int("alerts", res.Alerts),
		slog.Duration("duration", res.Duration),
	)
	return &res, nil
}

func toProduct(r ProductRecord, now time.Time) domain.Product {
	status := domain.DeriveStatus(r.CurrentStock, r.ReorderPoint)
	if r.Status == domain.ProductStatusDiscontinued {
		status = domain.ProductStatusDiscontinued
	}
	return domain.Product{
		ID:            r.ID,
		SKU:           r.SKU,
		Name:          r.Name,
		Category:      r.Category,
		Description:   r.Description,
		Price:         r.Price,
		Cost:          r.Cost,
		CurrentStock:  r.CurrentStock,
		MinStockLevel: r.MinStockLevel,
		MaxStockLevel: r.MaxStockLevel,
		ReorderPoint:  r.ReorderPoint,
		SupplierID:    r.SupplierID,
		Location:      r.Location,
		LastRestocked: now.Add(-time.Duration(r.LastRestockedHoursAgo) * time.Hour),
		Status:        status,
	}
}
