// Command seeder validates a seed data file by loading it into a scratch
// in-memory store and printing what would be seeded at server start.
//
// Flags:
//
//	--file  path to a seed JSON file (default: the embedded data set)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/alert"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/product"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/supplier"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/transaction"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/user"
	"github.com/heartmarshall/inventory-dashboard/internal/app"
	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/seeder"
)

func main() {
	fileFlag := flag.String("file", "", "path to seed JSON file (default: embedded data set)")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: "warn", Format: "text"})

	ds, err := seeder.Load(*fileFlag)
	if err != nil {
		logger.Error("load seed data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := memory.NewDB()
	s := seeder.New(logger,
		product.New(db),
		supplier.New(db),
		user.New(db),
		transaction.New(db),
		alert.New(db),
		memory.NewTxManager(db),
	)

	res, err := s.Run(context.Background(), ds)
	if err != nil {
		logger.Error("seed store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	source := *fileFlag
	if source == "" {
		source = "embedded"
	}
	fmt.Printf("Seed data OK (%s)\n", source)
	fmt.Printf("  suppliers:    %s\n", humanize.Comma(int64(res.Suppliers)))
	fmt.Printf("  users:        %s\n", humanize.Comma(int64(res.Users)))
	fmt.Printf("  products:     %s\n", humanize.Comma(int64(res.Products)))
	fmt.Printf("  transactions: %s\n", humanize.Comma(int64(res.Transactions)))
	fmt.Printf("  alerts:       %s\n", humanize.Comma(int64(res.Alerts)))
}
