package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"planner/cmd"
	"planner/internal/adapters/out/postgres"
	"planner/internal/adapters/out/redis"
	"planner/internal/cli"
	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo, openBackend)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRunE = func(*cobra.Command, []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// dbBackend runs CLI operations against the same database as the server.
type dbBackend struct {
	db      *gorm.DB
	importH commands.ImportOrdersCommandHandler
}

func openBackend(ctx context.Context, logger *slog.Logger) (cli.Backend, func() error, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("load .env: %w", err)
	}
	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	sqlDB, err := db.WithContext(ctx).DB()
	if err != nil {
		return nil, nil, err
	}

	app := cmd.NewCompositionRoot(configs, db, redis.NopRouteCache{}, logger)
	return dbBackend{db: db, importH: app.CreateImportOrdersCommandHandler()}, sqlDB.Close, nil
}

func (b dbBackend) Migrate(ctx context.Context) error {
	return postgres.Migrate(ctx, b.db)
}

func (b dbBackend) ImportOrders(ctx context.Context, command commands.ImportOrdersCommand) ([]kernel.UUID, error) {
	return b.importH.Handle(ctx, command)
}
