// Command server runs the inventory dashboard HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; a .env file in the working directory is loaded first if present.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/inventory-dashboard/internal/app"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
