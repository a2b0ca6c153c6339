package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/walklog/internal/client/api"
	"github.com/iudanet/walklog/internal/client/auth"
	"github.com/iudanet/walklog/internal/client/cli"
	"github.com/iudanet/walklog/internal/client/config"
	"github.com/iudanet/walklog/internal/client/iocli"
	"github.com/iudanet/walklog/internal/client/netwatch"
	"github.com/iudanet/walklog/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/walklog/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := cli.NewApp(os.Stderr, build, fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit))
	err := app.Execute(ctx, os.Args[1:])
	if closeErr := app.Close(); closeErr != nil {
		slog.Error("failed to close database", slog.Any("error", closeErr))
	}
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// build открывает локальную базу и собирает Cli
func build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*cli.Cli, func() error, error) {
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.Timeout))
	authService := auth.NewService(apiClient, boltStorage, logger)
	engine := clientsync.NewEngine(apiClient, authService, boltStorage, boltStorage, boltStorage, logger)
	monitor := netwatch.NewMonitor(apiClient, engine, cfg.OnlineCheckInterval, logger)

	return cli.New(iocli.NewStdio(), engine, boltStorage, monitor), boltStorage.Close, nil
}
