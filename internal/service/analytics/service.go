package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

type productRepo interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

type supplierRepo interface {
	List(ctx context.Context) ([]domain.Supplier, error)
}

type transactionRepo interface {
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.StockTransaction, error)
}

// Service computes dashboard aggregates by scanning the store on every call.
type Service struct {
	log          *slog.Logger
	products     productRepo
	suppliers    supplierRepo
	transactions transactionRepo
	cfg          config.InventoryConfig

	now func() time.Time
}

// NewService creates a new analytics service.
func NewService(
	log *slog.Logger,
	products productRepo,
	suppliers supplierRepo,
	transactions transactionRepo,
	cfg config.InventoryConfig,
) *Service {
	return &Service{
		log:          log.With("service", "analytics"),
		products:     products,
		suppliers:    suppliers,
		transactions: transactions,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
	}
}
