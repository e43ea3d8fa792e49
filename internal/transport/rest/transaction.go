package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/internal/service/inventory"
)

// transactionService defines the minimal interface needed by TransactionHandler.
type transactionService interface {
	ListTransactions(ctx context.Context, input inventory.ListTransactionsInput) ([]domain.StockTransaction, error)
}

// TransactionHandler serves the stock transaction log.
type TransactionHandler struct {
	svc transactionService
	log *slog.Logger
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(svc transactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, log: logger.With("handler", "transaction")}
}

// List handles GET /transactions?limit=&productId=.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	input := inventory.ListTransactionsInput{ProductID: r.URL.Query().Get("productId")}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid limit: must be a number")
			return
		}
		input.Limit = limit
	}

	txs, err := h.svc.ListTransactions(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err, errorMessages{entity: "Transaction", failure: "Failed to fetch transactions"})
		return
	}
	writeList(w, toTransactionResponses(txs), len(txs))
}
