package app

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/internal/transport/middleware"
	"github.com/heartmarshall/inventory-dashboard/internal/transport/rest"
)

// newRouter mounts every API route under cfg.Server.BasePath and the health
// probes at the root.
func newRouter(cfg *config.Config, logger *slog.Logger, svc *services, limiter *middleware.RateLimiter) http.Handler {
	products := rest.NewProductHandler(svc.inventory, logger)
	alerts := rest.NewAlertHandler(svc.inventory, logger)
	transactions := rest.NewTransactionHandler(svc.inventory, logger)
	suppliers := rest.NewSupplierHandler(svc.suppliers, logger)
	analytics := rest.NewAnalyticsHandler(svc.analytics, logger)
	authH := rest.NewAuthHandler(svc.auth, cfg.Auth, logger)
	health := rest.NewHealthHandler(svc.store, BuildVersion(), logger)

	editors := middleware.RequireRole(cfg.Auth.EnforceRoles, domain.UserRoleAdmin, domain.UserRoleManager)
	stockers := middleware.RequireRole(cfg.Auth.EnforceRoles, domain.UserRoleAdmin, domain.UserRoleManager, domain.UserRoleSupplier)

	mux := http.NewServeMux()
	base := cfg.Server.BasePath

	handle := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		method, path, _ := strings.Cut(pattern, " ")
		mux.Handle(method+" "+base+path, middleware.Chain(mws...)(h))
	}

	handle("GET /products", products.List)
	handle("POST /products", products.Create, editors)
	handle("GET /products/export", products.Export)
	handle("GET /products/{id}", products.Get)
	handle("PUT /products/{id}", products.Update, editors)
	handle("DELETE /products/{id}", products.Delete, editors)
	handle("POST /products/{id}/stock", products.AdjustStock, stockers)

	handle("GET /transactions", transactions.List)
	handle("GET /suppliers", suppliers.List)
	handle("GET /suppliers/{id}", suppliers.Get)

	handle("GET /alerts", alerts.List)
	handle("DELETE /alerts", alerts.Dismiss)

	handle("GET /analytics/kpis", analytics.KPIs)
	handle("GET /analytics/stock-trend", analytics.StockTrend)
	handle("GET /analytics/category-distribution", analytics.CategoryDistribution)
	handle("GET /analytics/revenue", analytics.Revenue)
	handle("GET /analytics/supplier-performance", analytics.SupplierPerformance)

	handle("POST /auth/login", authH.Login, limiter.Limit(cfg.Auth.LoginRateLimit))
	handle("POST /auth/logout", authH.Logout)
	handle("GET /auth/me", authH.Me)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("/", rest.NotFound)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc.auth, cfg.Auth.CookieName),
		middleware.Logger(logger),
	)(mux)
}

