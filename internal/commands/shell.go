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

func newShellCommand(dir *string, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive console over the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), *dir, log)
		},
	}
	return cmd
}

// runShell drives the interactive console loop. Operation errors are
// printed and the loop returns to the prompt; only I/O failure on the
// console itself ends the session.
func runShell(in io.Reader, out io.Writer, dir string, log zerolog.Logger) error {
	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, "payoutbook interactive console")

	// Re-prompt until a usable workspace directory is given.
	ws, err := openWorkspace(dir, log)
	for err != nil {
		fmt.Fprintln(out, err)
		fmt.Fprintln(out, "Enter the workspace directory:")
		if !sc.Scan() {
			return sc.Err()
		}
		dir = strings.ReplaceAll(strings.TrimSpace(sc.Text()), `"`, "")
		ws, err = openWorkspace(dir, log)
	}

	store, err := ledger.Open(ws.ledgerPath())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Ledger loaded from %s.\n", store.Path())
	if err := printLedger(out, store.Records(), false); err != nil {
		fmt.Fprintln(out, err)
	}

	for {
		fmt.Fprintln(out, "Enter command (print/printdatetime/load/allclear/export/exit):")
		if !sc.Scan() {
			return sc.Err()
		}

		switch strings.TrimSpace(sc.Text()) {
		case "print":
			if err := printLedger(out, store.Records(), false); err != nil {
				fmt.Fprintln(out, err)
			}
		case "printdatetime":
			if err := printLedger(out, store.Records(), true); err != nil {
				fmt.Fprintln(out, err)
			}
		case "load":
			fmt.Fprintln(out, "Enter the CSV file name to load:")
			if !sc.Scan() {
				return sc.Err()
			}
			if err := mergeFile(ws, store, strings.TrimSpace(sc.Text()), out); err != nil {
				fmt.Fprintln(out, err)
			}
		case "allclear":
			ok, err := confirm(sc, out, "Clear every record in the ledger? (Y/N)")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Not cleared.")
				continue
			}
			if err := store.Clear(); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintln(out, "Ledger cleared.")
		case "export":
			fmt.Fprintln(out, "Enter the export file name:")
			if !sc.Scan() {
				return sc.Err()
			}
			if err := exportFile(ws, store, strings.TrimSpace(sc.Text()), out); err != nil {
				fmt.Fprintln(out, err)
			}
		case "exit":
			return nil
		default:
			fmt.Fprintln(out, "Unknown command. Valid commands: print/printdatetime/load/allclear/export/exit")
		}
	}
}
