package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/daymark-app/daymark/internal/api"
	"github.com/daymark-app/daymark/internal/calendar"
	"github.com/daymark-app/daymark/internal/config"
	"github.com/daymark-app/daymark/internal/ident"
	"github.com/daymark-app/daymark/internal/server"
	"github.com/daymark-app/daymark/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"storage_type", cfg.Storage.Type,
		"storage_path", cfg.Storage.Path,
		"addr", fmtAddr(cfg.Server.Host, cfg.Server.Port),
	)

	// 2. Initialize the Event Store. Exactly one implementation backs the
	// process; the calendar core never branches on which.
	st, err := openStore(cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize event store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// 3. Initialize the calendar service and hydrate it once. A read
	// failure degrades to an empty collection instead of aborting.
	repo := calendar.NewRepository(st, cfg.Storage.Key)
	cal := calendar.NewService(repo, ident.New())
	cal.Hydrate(context.Background())

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), st, cfg.Server.Mode)
	api.NewHandler(cal).RegisterRoutes(srv.Engine)

	// 5. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func openStore(cfg config.StorageConfig) (store.Store, error) {
	switch cfg.Type {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(cfg.Path)
	case "sqlite":
		return store.NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
