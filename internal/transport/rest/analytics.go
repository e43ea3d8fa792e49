package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	KPIs(ctx context.Context) ([]domain.KPI, error)
	StockTrend(ctx context.Context, days int) ([]domain.StockTrendPoint, error)
	CategoryDistribution(ctx context.Context) ([]domain.CategoryShare, error)
	Revenue(ctx context.Context, months int) ([]domain.RevenuePoint, error)
	SupplierPerformance(ctx context.Context) ([]domain.SupplierPerformance, error)
}

// AnalyticsHandler serves dashboard aggregates.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// KPIs handles GET /analytics/kpis.
func (h *AnalyticsHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.svc.KPIs(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to fetch KPIs")
		return
	}

	out := make([]kpiResponse, 0, len(kpis))
	for _, k := range kpis {
		out = append(out, kpiResponse{Label: k.Label, Value: k.Value, Change: k.Change, Trend: k.Trend.String()})
	}
	writeData(w, http.StatusOK, out)
}

// StockTrend handles GET /analytics/stock-trend?days=.
func (h *AnalyticsHandler) StockTrend(w http.ResponseWriter, r *http.Request) {
	days, ok := intQuery(w, r, "days")
	if !ok {
		return
	}

	points, err := h.svc.StockTrend(r.Context(), days)
	if err != nil {
		h.fail(w, r, err, "Failed to fetch stock trend data")
		return
	}

	out := make([]stockTrendResponse, 0, len(points))
	for _, p := range points {
		out = append(out, stockTrendResponse(p))
	}
	writeData(w, http.StatusOK, out)
}

// CategoryDistribution handles GET /analytics/category-distribution.
func (h *AnalyticsHandler) CategoryDistribution(w http.ResponseWriter, r *http.Request) {
	shares, err := h.svc.CategoryDistribution(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to fetch category distribution")
		return
	}

	out := make([]categoryShareResponse, 0, len(shares))
	for _, s := range shares {
		out = append(out, categoryShareResponse(s))
	}
	writeData(w, http.StatusOK, out)
}

// Revenue handles GET /analytics/revenue?months=.
func (h *AnalyticsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	months, ok := intQuery(w, r, "months")
	if !ok {
		return
	}

	points, err := h.svc.Revenue(r.Context(), months)
	if err != nil {
		h.fail(w, r, err, "Failed to fetch revenue data")
		return
	}

	out := make([]revenueResponse, 0, len(points))
	for _, p := range points {
		out = append(out, revenueResponse{
			Month:   p.Month,
			Revenue: p.Revenue.InexactFloat64(),
			Cost:    p.Cost.InexactFloat64(),
		})
	}
	writeData(w, http.StatusOK, out)
}

// SupplierPerformance handles GET /analytics/supplier-performance.
func (h *AnalyticsHandler) SupplierPerformance(w http.ResponseWriter, r *http.Request) {
	perf, err := h.svc.SupplierPerformance(r.Context())
	if err != nil {
		h.fail(w, r, err, "Failed to fetch supplier performance")
		return
	}

	out := make([]supplierPerformanceResponse, 0, len(perf))
	for _, p := range perf {
		out = append(out, supplierPerformanceResponse(p))
	}
	writeData(w, http.StatusOK, out)
}

func (h *AnalyticsHandler) fail(w http.ResponseWriter, r *http.Request, err error, failure string) {
	handleError(w, r, h.log, err, errorMessages{entity: "Data", failure: failure})
}

// intQuery reads an optional non-negative integer query parameter.
// Absent means 0.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "Invalid "+name+": must be a non-negative number")
		return 0, false
	}
	return n, true
}
