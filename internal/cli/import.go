package cli

import (
	"fmt"
	"os"

	"planner/internal/adapters/in/xlsx"
	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

func (c *CLI) importCommand() *cobra.Command {
	var truck string

	cmd := &cobra.Command{
		Use:   "import --truck <id> orders.xlsx",
		Short: "Import an order export onto a truck",
		Long: `Import the first sheet of an order export onto a truck.

The whole file is rejected when any row is invalid or an order code is already
registered on the truck.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			truckID, err := kernel.UUIDFromString(truck)
			if err != nil {
				return fmt.Errorf("invalid truck id %q: %w", truck, err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := xlsx.ReadOrders(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			command, err := commands.NewImportOrdersCommand(truckID, rows)
			if err != nil {
				return err
			}
			c.Logger.Debug("import parsed", "file", args[0], "rows", len(rows))

			return c.withBackend(cmd.Context(), func(b Backend) error {
				ids, err := b.ImportOrders(cmd.Context(), command)
				if err != nil {
					return err
				}
				c.Logger.Info("orders imported", "truck", truckID.String(), "count", len(ids))
				for _, id := range ids {
					fmt.Fprintln(c.out, id.String())
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&truck, "truck", "", "truck id")
	_ = cmd.MarkFlagRequired("truck")

	return cmd
}

func (c *CLI) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the planner tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withBackend(cmd.Context(), func(b Backend) error {
				if err := b.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				c.Logger.Info("migration complete")
				return nil
			})
		},
	}
}
