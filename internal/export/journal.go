// Package export turns aggregated ledger buckets into journal rows in the
// destination accounting tool's fixed import format.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/payoutbook-dev/payoutbook/internal/aggregate"
	"github.com/payoutbook-dev/payoutbook/internal/model"
)

// Supported output encodings. The destination import tool reads Shift-JIS.
const (
	EncodingShiftJIS = "shift_jis"
	EncodingUTF8     = "utf8"
)

// The import row has 25 fixed columns, most of them blank. Only the ones
// named here are populated.
const (
	numFields    = 25
	colRowType   = 0
	colDate      = 3
	colDebit     = 4
	colDebitTax  = 7
	colDebitAmt  = 8
	colCredit    = 10
	colCreditTax = 13
	colCreditAmt = 14
	colEntryType = 19
	colAdjust    = 24

	rowTypeMarker   = "2000" // identifies a plain journal data row
	taxMarker       = "対象外"  // out of tax scope
	entryTypeMarker = "0"    // journal data, not a slip
	adjustMarker    = "no"

	bucketDateFormat = "2006-01-02"
	exportDateFormat = "2006/01/02"
)

// Options control journal serialization.
type Options struct {
	Delimiter string // field separator, default ","
	Encoding  string // EncodingShiftJIS (default) or EncodingUTF8
}

// WriteJournal writes one import row per exportable bucket, in date then
// type iteration order, with CRLF line endings and no header. Buckets that
// classify to an unset debit or credit side are dropped. The output is not
// deduplicated against earlier export runs; the destination's import
// tooling owns that.
func WriteJournal(w io.Writer, days []aggregate.DaySummary, opts Options) (written, dropped int, err error) {
	delim := opts.Delimiter
	if delim == "" {
		delim = ","
	}

	for _, day := range days {
		for _, total := range day.Totals {
			entry := Classify(total.Type, total.Sum)
			if !entry.Exportable() {
				dropped++
				continue
			}

			row, err := marshalRow(day.Date, entry)
			if err != nil {
				return written, dropped, err
			}
			if _, err := io.WriteString(w, strings.Join(row, delim)+"\r\n"); err != nil {
				return written, dropped, fmt.Errorf("writing journal row: %w", err)
			}
			written++
		}
	}
	return written, dropped, nil
}

// marshalRow builds the 25 columns for one entry. A bucket date that does
// not parse is fatal to the export run: destination-format correctness is
// non-negotiable.
func marshalRow(date string, entry Entry) ([]string, error) {
	d, err := time.Parse(bucketDateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("parsing bucket date %q: %w", date, err)
	}

	row := make([]string, numFields)
	row[colRowType] = rowTypeMarker
	row[colDate] = d.Format(exportDateFormat)
	row[colDebit] = entry.Debit.Label()
	row[colDebitTax] = taxMarker
	row[colDebitAmt] = entry.DebitAmount.Truncate(0).String()
	row[colCredit] = entry.Credit.Label()
	row[colCreditTax] = taxMarker
	row[colCreditAmt] = entry.CreditAmount.Truncate(0).String()
	row[colEntryType] = entryTypeMarker
	row[colAdjust] = adjustMarker
	return row, nil
}

// File aggregates records, classifies each bucket, and writes the journal
// to path in the configured encoding.
func File(path string, records []model.TransactionRecord, opts Options) (written, dropped int, err error) {
	days, err := aggregate.Daily(records)
	if err != nil {
		return 0, 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if opts.Encoding == EncodingUTF8 {
		return WriteJournal(f, days, opts)
	}

	enc := transform.NewWriter(f, japanese.ShiftJIS.NewEncoder())
	written, dropped, err = WriteJournal(enc, days, opts)
	if cerr := enc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("encoding journal: %w", cerr)
	}
	return written, dropped, err
}
