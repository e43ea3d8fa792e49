package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/report"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/internal/service/inventory"
)

// productService defines the minimal interface needed by ProductHandler.
type productService interface {
	ListProducts(ctx context.Context, input inventory.ListProductsInput) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input inventory.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input inventory.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ApplyStockChange(ctx context.Context, input inventory.StockChangeInput) (*domain.Product, error)
	ExportProducts(ctx context.Context, input inventory.ListProductsInput) ([]byte, error)
}

// ProductHandler serves product REST endpoints.
type ProductHandler struct {
	svc productService
	log *slog.Logger
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(svc productService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: logger.With("handler", "product")}
}

// List handles GET /products?category=&status=&search=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context(), listProductsInput(r))
	if err != nil {
		h.fail(w, r, err, "Failed to fetch products")
		return
	}
	writeList(w, toProductResponses(products), len(products))
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err, "Failed to fetch product")
		return
	}
	writeData(w, http.StatusOK, toProductResponse(p))
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input inventory.CreateProductInput
	if !decodeJSON(w, r, &input) {
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), input)
	if err != nil {
		h.fail(w, r, err, "Failed to create product")
		return
	}
	writeMessage(w, http.StatusCreated, toProductResponse(p), "Product created successfully")
}

// Update handles PUT /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input inventory.UpdateProductInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.ID = r.PathValue("id")

	p, err := h.svc.UpdateProduct(r.Context(), input)
	if err != nil {
		h.fail(w, r, err, "Failed to update product")
		return
	}
	writeMessage(w, http.StatusOK, toProductResponse(p), "Product updated successfully")
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		h.fail(w, r, err, "Failed to delete product")
		return
	}
	writeMessage(w, http.StatusOK, map[string]string{"id": id}, "Product deleted successfully")
}

type stockRequest struct {
	Quantity json.RawMessage `json:"quantity"`
	Type     string          `json:"type"`
	UserID   string          `json:"userId"`
	Notes    *string         `json:"notes"`
}

// AdjustStock handles POST /products/{id}/stock.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	qty, msg := parseQuantity(req.Quantity)
	if msg != "" {
		writeError(w, http.StatusBadRequest, "Invalid quantity: "+msg)
		return
	}
	txType := domain.TransactionType(req.Type)
	if !txType.IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid type: must be purchase, sale, adjustment, or return")
		return
	}

	p, err := h.svc.ApplyStockChange(r.Context(), inventory.StockChangeInput{
		ProductID: r.PathValue("id"),
		Quantity:  qty,
		Type:      txType,
		UserID:    req.UserID,
		Notes:     req.Notes,
	})
	if err != nil {
		h.fail(w, r, err, "Failed to update stock")
		return
	}
	writeMessage(w, http.StatusOK, toProductResponse(p), "Stock updated successfully")
}

// Export handles GET /products/export and streams an XLSX workbook.
func (h *ProductHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportProducts(r.Context(), listProductsInput(r))
	if err != nil {
		h.fail(w, r, err, "Failed to export products")
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func (h *ProductHandler) fail(w http.ResponseWriter, r *http.Request, err error, failure string) {
	handleError(w, r, h.log, err, errorMessages{entity: "Product", failure: failure})
}

func listProductsInput(r *http.Request) inventory.ListProductsInput {
	q := r.URL.Query()
	return inventory.ListProductsInput{
		Category: q.Get("category"),
		Status:   domain.ProductStatus(q.Get("status")),
		Search:   q.Get("search"),
	}
}

// parseQuantity accepts a JSON number with no fractional part. It returns a
// non-empty message describing the problem otherwise.
func parseQuantity(raw json.RawMessage) (int, string) {
	var f float64
	if len(raw) == 0 || string(raw) == "null" || json.Unmarshal(raw, &f) != nil {
		return 0, "must be a number"
	}
	if f != math.Trunc(f) {
		return 0, "must be a whole number"
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, "out of range"
	}
	return int(f), ""
}
