package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/alert"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/product"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/supplier"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/transaction"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/report"
	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/internal/service/analytics"
	"github.com/heartmarshall/inventory-dashboard/internal/service/inventory"
	suppliersvc "github.com/heartmarshall/inventory-dashboard/internal/service/supplier"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testAPI wires the inventory handlers to real services over a fresh store.
type testAPI struct {
	mux      *http.ServeMux
	products *product.Repo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	log := discardLogger()
	db := memory.NewDB()
	products := product.New(db)
	suppliers := supplier.New(db)
	transactions := transaction.New(db)
	alerts := alert.New(db)

	cfg := config.InventoryConfig{
		DefaultActor:      "API_USER",
		TrendDays:         7,
		RevenueMonths:     3,
		TransactionsLimit: 50,
		ExportMaxRows:     100,
	}
	inv := inventory.NewService(log, products, transactions, alerts, suppliers, memory.NewTxManager(db), report.NewWriter(), cfg)
	an := analytics.NewService(log, products, suppliers, transactions, cfg)
	sup := suppliersvc.NewService(log, suppliers)

	ctx := context.Background()
	require.NoError(t, suppliers.Create(ctx, &domain.Supplier{
		ID: "s1", Name: "TechCorp", Status: domain.SupplierStatusActive, OnTimeDelivery: 96.5, Rating: 4.8, TotalOrders: 156,
	}))
	for _, p := range []domain.Product{
		{ID: "1", SKU: "CPU-001", Name: "Intel Core i9", Category: "CPU", Price: decimal.RequireFromString("589.99"), CurrentStock: 45, MinStockLevel: 10, ReorderPoint: 20, SupplierID: "s1", Status: domain.ProductStatusInStock},
		{ID: "2", SKU: "MEM-001", Name: "DDR5 32GB", Category: "Memory", Price: decimal.RequireFromString("129.99"), CurrentStock: 8, MinStockLevel: 10, ReorderPoint: 15, Status: domain.ProductStatusLowStock},
	} {
		_, err := products.Create(ctx, &p)
		require.NoError(t, err)
	}

	ph := NewProductHandler(inv, log)
	ah := NewAlertHandler(inv, log)
	th := NewTransactionHandler(inv, log)
	sh := NewSupplierHandler(sup, log)
	anh := NewAnalyticsHandler(an, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", ph.List)
	mux.HandleFunc("POST /products", ph.Create)
	mux.HandleFunc("GET /products/export", ph.Export)
	mux.HandleFunc("GET /products/{id}", ph.Get)
	mux.HandleFunc("PUT /products/{id}", ph.Update)
	mux.HandleFunc("DELETE /products/{id}", ph.Delete)
	mux.HandleFunc("POST /products/{id}/stock", ph.AdjustStock)
	mux.HandleFunc("GET /alerts", ah.List)
	mux.HandleFunc("DELETE /alerts", ah.Dismiss)
	mux.HandleFunc("GET /transactions", th.List)
	mux.HandleFunc("GET /suppliers", sh.List)
	mux.HandleFunc("GET /suppliers/{id}", sh.Get)
	mux.HandleFunc("GET /analytics/kpis", anh.KPIs)
	mux.HandleFunc("GET /analytics/stock-trend", anh.StockTrend)
	mux.HandleFunc("GET /analytics/category-distribution", anh.CategoryDistribution)
	mux.HandleFunc("GET /analytics/revenue", anh.Revenue)
	mux.HandleFunc("GET /analytics/supplier-performance", anh.SupplierPerformance)

	return &testAPI{mux: mux, products: products}
}

func (a *testAPI) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	return rec
}

// apiResponse decodes the envelope with Data left raw.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) apiResponse {
	t.Helper()

	var resp apiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(resp.Data, data))
	}
	return resp
}
