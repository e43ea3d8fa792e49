package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/alert"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/product"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/session"
	supplierrepo "github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/supplier"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/transaction"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/user"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/report"
	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/seeder"
	"github.com/heartmarshall/inventory-dashboard/internal/service/analytics"
	"github.com/heartmarshall/inventory-dashboard/internal/service/auth"
	"github.com/heartmarshall/inventory-dashboard/internal/service/inventory"
	"github.com/heartmarshall/inventory-dashboard/internal/service/supplier"
	"github.com/heartmarshall/inventory-dashboard/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, seeds the
// in-memory store, and serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	svc, err := buildServices(ctx, cfg, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newRouter(cfg, logger, svc, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweepSessions(gctx, logger, svc.auth, cfg.Auth.SweepInterval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

// services holds the wired application layer.
type services struct {
	store     *memory.DB
	inventory *inventory.Service
	analytics *analytics.Service
	suppliers *supplier.Service
	auth      *auth.Service
}

// buildServices creates the store, seeds it and wires the services on top.
func buildServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*services, error) {
	db := memory.NewDB()
	txm := memory.NewTxManager(db)

	products := product.New(db)
	suppliers := supplierrepo.New(db)
	transactions := transaction.New(db)
	alerts := alert.New(db)
	users := user.New(db)
	sessions := session.New(db)

	ds, err := seeder.Load(cfg.Inventory.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}
	if _, err := seeder.New(logger, products, suppliers, users, transactions, alerts, txm).Run(ctx, ds); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}

	return &services{
		store:     db,
		inventory: inventory.NewService(logger, products, transactions, alerts, suppliers, txm, report.NewWriter(), cfg.Inventory),
		analytics: analytics.NewService(logger, products, suppliers, transactions, cfg.Inventory),
		suppliers: supplier.NewService(logger, suppliers),
		auth:      auth.NewService(logger, users, sessions, cfg.Auth),
	}, nil
}

type sessionSweeper interface {
	CleanupExpiredSessions(ctx context.Context) (int, error)
}

// sweepSessions deletes expired sessions every interval until ctx is done.
// Failures are logged by the sweeper and retried on the next tick.
func sweepSessions(ctx context.Context, logger *slog.Logger, sweeper sessionSweeper, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sweeper.CleanupExpiredSessions(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("session sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
