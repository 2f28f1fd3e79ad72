package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/payoutbook-dev/payoutbook/internal/ledger"
	"github.com/payoutbook-dev/payoutbook/internal/model"
)

func newPrintCommand(dir *string, log zerolog.Logger) *cobra.Command {
	var resolveDates bool

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the ledger with per-type counts",
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

			return printLedger(cmd.OutOrStdout(), store.Records(), resolveDates)
		},
	}

	cmd.Flags().BoolVar(&resolveDates, "resolve-dates", false, "re-render timestamps through date parsing")

	return cmd
}

// printLedger writes per-type counts, the total, and every record. With
// resolveDates set, timestamps are parsed and re-rendered; an unparseable
// timestamp fails the listing.
func printLedger(w io.Writer, records []model.TransactionRecord, resolveDates bool) error {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if _, seen := counts[rec.Type]; !seen {
			order = append(order, rec.Type)
		}
		counts[rec.Type]++
	}

	fmt.Fprintln(w, "Ledger summary:")
	for _, t := range order {
		fmt.Fprintf(w, "  %s : %d\n", t, counts[t])
	}
	fmt.Fprintf(w, "  Total : %d\n", len(records))

	for _, rec := range records {
		ts := rec.Timestamp
		if resolveDates {
			parsed, err := parseTimestamp(ts)
			if err != nil {
				return err
			}
			ts = parsed.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s %s %s %s\n", rec.ID, ts, rec.Amount, rec.Type)
	}
	return nil
}

// timestampLayouts are the upstream timestamp shapes seen in platform
// exports, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
