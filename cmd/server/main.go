/*
main.go - HTTP server entry point

PURPOSE:
  Starts the simulation API server. Configuration comes from flags and
  the environment (a .env file is honored when present).

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)

ENVIRONMENT:
  LOG_LEVEL, LOG_FORMAT, LOG_DEV - see logging package

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM the server stops accepting connections and waits
  up to 30s for active requests to finish.

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/warp/cashflow-engine/api"
	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/logging"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	flag.Parse()

	// Optional; absence of a .env file is not an error.
	_ = godotenv.Load()

	logger, err := logging.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	finance.SetMoneyContext(finance.DefaultMoneyContext)

	handler := api.NewHandler(logger)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.Int("port", *port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
