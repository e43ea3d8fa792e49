package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

const MaxTransactionsLimit = 1000

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type transactionRepo interface {
	Prepend(ctx context.Context, tx *domain.StockTransaction) error
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.StockTransaction, error)
}

type alertRepo interface {
	List(ctx context.Context) ([]domain.InventoryAlert, error)
	ReplaceForProduct(ctx context.Context, productID string, a *domain.InventoryAlert) error
	Delete(ctx context.Context, id string) error
}

type supplierRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// workbookWriter renders a product list as a spreadsheet.
type workbookWriter interface {
	ProductWorkbook(products []domain.Product, supplierNames map[string]string) ([]byte, error)
}

// Service owns every stock-changing path: the stock mutator, alert
// derivation, and product create/update/delete.
type Service struct {
	log          *slog.Logger
	products     productRepo
	transactions transactionRepo
	alerts       alertRepo
	suppliers    supplierRepo
	tx           txManager
	workbook     workbookWriter
	cfg          config.InventoryConfig

	now   func() time.Time
	newID func() string
}

// NewService creates a new inventory service.
func NewService(
	log *slog.Logger,
	products productRepo,
	transactions transactionRepo,
	alerts alertRepo,
	suppliers supplierRepo,
	tx txManager,
	workbook workbookWriter,
	cfg config.InventoryConfig,
) *Service {
	return &Service{
		log:          log.With("service", "inventory"),
		products:     products,
		transactions: transactions,
		alerts:       alerts,
		suppliers:    suppliers,
		tx:           tx,
		workbook:     workbook,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}
