// Command server runs the spaced-repetition review API.
//
// Configuration comes from the YAML file at CONFIG_PATH (default
// ./config.yaml) with environment variables taking precedence.
// SIGINT or SIGTERM triggers a graceful shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/K-svg-lab/palabra-sub002/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
