package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/payoutbook-dev/payoutbook/internal/ledger"
)

func newClearCommand(dir *string, log zerolog.Logger) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard every ledger record (destructive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir, log)
			if err != nil {
				return err
			}

			store, err := ledger.Open(ws.ledgerPath())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				sc := bufio.NewScanner(cmd.InOrStdin())
				ok, err := confirm(sc, out, "Clear every record in the ledger? (Y/N)")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Not cleared.")
					return nil
				}
			}

			if err := store.Clear(); err != nil {
				return err
			}

			ws.log.Info().Str("ledger", store.Path()).Msg("ledger cleared")
			fmt.Fprintln(out, "Ledger cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

// confirm loops until a Y or N line is read. EOF counts as a decline.
func confirm(sc *bufio.Scanner, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprintln(out, prompt)
		if !sc.Scan() {
			return false, sc.Err()
		}
		switch strings.TrimSpace(sc.Text()) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
	}
}
