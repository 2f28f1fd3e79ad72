package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/payoutbook-dev/payoutbook/internal/buildinfo"
	"github.com/payoutbook-dev/payoutbook/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string
	log := logging.New()

	rootCmd := &cobra.Command{
		Use:     "payoutbook",
		Short:   "Delivery-platform payout ledger and journal export",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "workspace directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPrintCommand(&dir, log))
	rootCmd.AddCommand(newImportCommand(&dir, log))
	rootCmd.AddCommand(newClearCommand(&dir, log))
	rootCmd.AddCommand(newExportCommand(&dir, log))
	rootCmd.AddCommand(newShellCommand(&dir, log))

	return rootCmd
}
