// Package cli implements planctl, the operator command line for the planner.
//
// Commands:
//   - route: sequence a YAML list of orders offline with the route optimizer
//   - import: load an order export (.xlsx) onto a truck
//   - migrate: create or update the database tables
//
// route works without a database. import and migrate go through a Backend,
// which the main package connects lazily from the environment.
package cli

import (
	"context"
	"io"
	"log/slog"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/kernel"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Backend is the persistent side of the CLI.
type Backend interface {
	Migrate(ctx context.Context) error
	ImportOrders(ctx context.Context, cmd commands.ImportOrdersCommand) ([]kernel.UUID, error)
}

// BackendFunc opens a backend on first use. The returned close func releases it.
type BackendFunc func(ctx context.Context, logger *slog.Logger) (Backend, func() error, error)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out     io.Writer
	backend BackendFunc
}

func New(out, errOut io.Writer, level log.Level, backend BackendFunc) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(errOut, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		out:     out,
		backend: backend,
	}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// slogger adapts the CLI logger for the application layer, which logs through slog.
func (c *CLI) slogger() *slog.Logger {
	return slog.New(c.Logger)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "planctl",
		Short:        "planctl plans pallet placement and delivery routes",
		SilenceUsage: true,
	}

	root.AddCommand(c.routeCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.migrateCommand())

	return root
}

func (c *CLI) withBackend(ctx context.Context, fn func(Backend) error) error {
	backend, closeFn, err := c.backend(ctx, c.slogger())
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(); err != nil {
			c.Logger.Warn("closing backend", "err", err)
		}
	}()
	return fn(backend)
}
