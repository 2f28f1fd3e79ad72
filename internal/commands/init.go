package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payoutbook-dev/payoutbook/internal/config"
	"github.com/payoutbook-dev/payoutbook/internal/ledger"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new payoutbook workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, cmd.OutOrStdout())
		},
	}
	return cmd
}

func runInit(dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write payoutbook.yaml.
	cfg := config.Default()
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return err
	}

	// Create the header-only ledger file.
	if _, err := ledger.Open(filepath.Join(dir, cfg.Ledger.File)); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initialized payoutbook workspace at %s\n", dir)
	return nil
}
