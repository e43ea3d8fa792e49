package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// supplierService defines the minimal interface needed by SupplierHandler.
type supplierService interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
}

// SupplierHandler serves supplier REST endpoints.
type SupplierHandler struct {
	svc supplierService
	log *slog.Logger
}

// NewSupplierHandler creates a SupplierHandler.
func NewSupplierHandler(svc supplierService, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{svc: svc, log: logger.With("handler", "supplier")}
}

// List handles GET /suppliers.
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, errorMessages{entity: "Supplier", failure: "Failed to fetch suppliers"})
		return
	}

	out := make([]supplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, toSupplierResponse(&suppliers[i]))
	}
	writeList(w, out, len(out))
}

// Get handles GET /suppliers/{id}.
func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSupplier(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err, errorMessages{entity: "Supplier", failure: "Failed to fetch supplier"})
		return
	}
	writeData(w, http.StatusOK, toSupplierResponse(s))
}
