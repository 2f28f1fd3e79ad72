package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/payoutbook-dev/payoutbook/internal/export"
	"github.com/payoutbook-dev/payoutbook/internal/ledger"
)

func newExportCommand(dir *string, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the aggregated ledger as accounting journal rows",
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

			return exportFile(ws, store, args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

// exportFile aggregates the store and writes the journal file with the
// workspace's delimiter and encoding settings.
func exportFile(ws *workspace, store *ledger.Store, name string, out io.Writer) error {
	path := ws.resolve(name)
	written, dropped, err := export.File(path, store.Records(), export.Options{
		Delimiter: ws.cfg.Export.Delimiter,
		Encoding:  ws.cfg.Export.Encoding,
	})
	if err != nil {
		return err
	}

	ws.log.Info().
		Str("file", name).
		Int("rows", written).
		Int("dropped", dropped).
		Msg("journal exported")

	fmt.Fprintf(out, "Exported %d journal rows to %s (%d buckets dropped).\n", written, path, dropped)
	return nil
}
