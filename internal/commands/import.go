package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/payoutbook-dev/payoutbook/internal/ledger"
)

func newImportCommand(dir *string, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a platform payout export into the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir, log)
			if err != nil {
				return err
			}

			store, err := ledger.Open(ws.ledgerPath())
			if err != nil {
				return err
			}

			return mergeFile(ws, store, args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

// mergeFile loads a platform export and merges it into the store. Each
// merge is reported under a batch id so overlapping re-imports can be told
// apart in the logs.
func mergeFile(ws *workspace, store *ledger.Store, name string, out io.Writer) error {
	incoming, err := ledger.Load(ws.resolve(name), ledger.FormatPlatform)
	if err != nil {
		return err
	}

	batch := uuid.NewString()
	added, skipped, err := store.Merge(incoming)
	if err != nil {
		return err
	}

	ws.log.Info().
		Str("batch", batch).
		Str("file", name).
		Int("added", added).
		Int("skipped", skipped).
		Int("total", len(store.Records())).
		Msg("import merged")

	fmt.Fprintf(out, "Imported %s: %d added, %d duplicates skipped, %d total.\n",
		filepath.Base(name), added, skipped, len(store.Records()))
	return nil
}
