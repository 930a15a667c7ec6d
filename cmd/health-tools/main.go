// cmd/health-tools/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"taafi-health-tools/internal/config"
	"taafi-health-tools/internal/logger"
	"taafi-health-tools/internal/server"
)

var (
	transport = flag.String("transport", "", "Transport mode: http")
	port      = flag.Int("port", 0, "Port for HTTP transport (overrides PORT)")
	host      = flag.String("host", "", "Host address (overrides HOST)")
	address   = flag.String("address", "", "Address (alias for host)")
	dbPath    = flag.String("db-path", "", "Usage database path (overrides DB_PATH)")
	version   = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("health-tools version %s\n", server.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	log := logger.NewLogger(cfg.Log, "health-tools")
	defer log.Sync()

	if cfg.Transport != "http" {
		log.Fatal("unsupported transport", zap.String("transport", cfg.Transport))
	}

	srv, err := server.NewHealthToolsServer(cfg, log)
	if err != nil {
		log.Fatal("failed to create server", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	log.Info("shutting down")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
}

// applyFlags lets explicit command-line flags win over the environment.
func applyFlags(cfg *config.Config) {
	if *transport != "" {
		cfg.Transport = *transport
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *address != "" {
		cfg.Host = *address
	}
	if *port > 0 {
		cfg.Port = *port
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
}
