package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stocktake/stocktake/cmd/stocktake/cmd"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Inventory commands
	rootCmd.AddCommand(cmd.NewAddCommand(a))
	rootCmd.AddCommand(cmd.NewListCommand(a))
	rootCmd.AddCommand(cmd.NewUpdateCommand(a))
	rootCmd.AddCommand(cmd.NewDeleteCommand(a))
	rootCmd.AddCommand(cmd.NewSellCommand(a))
	rootCmd.AddCommand(cmd.NewSearchCommand(a))
	rootCmd.AddCommand(cmd.NewDashboardCommand(a))
	rootCmd.AddCommand(cmd.NewSaveCommand(a))
	rootCmd.AddCommand(cmd.NewExportCommand(a))
	rootCmd.AddCommand(cmd.NewShellCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command with build metadata.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(c *cobra.Command, _ []string) {
			out := c.OutOrStdout()
			fmt.Fprintf(out, "stocktake %s\n", a.version)
			fmt.Fprintf(out, "  commit:   %s\n", a.commit)
			fmt.Fprintf(out, "  built:    %s\n", a.date)
			fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
		},
	}
}
