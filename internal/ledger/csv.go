package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/payoutbook-dev/payoutbook/internal/model"
)

// Header is the CSV header for the persisted ledger file.
const Header = "ID,Date,Amount,Type"

// ErrNoHeader is returned when a CSV file has no header row at all.
var ErrNoHeader = errors.New("missing header row")

// Format selects which CSV dialect a file is read with.
type Format int

const (
	// FormatStore is the ledger's own persisted layout.
	FormatStore Format = iota
	// FormatPlatform is the delivery platform's payout export layout.
	FormatPlatform
)

// columnNames maps a Format to the header names carrying id, timestamp,
// amount, and transaction type, in that order. Lookup is case-sensitive.
var columnNames = map[Format][4]string{
	FormatStore:    {"ID", "Date", "Amount", "Type"},
	FormatPlatform: {"tripUUID", "timestamp", "amount", "itemType"},
}

// ReadRecords reads transaction records from a CSV reader in the given
// format. The header row is required and never treated as data. A column
// missing from the header yields empty-string fields rather than an error;
// callers must tolerate records with blank fields.
func ReadRecords(r io.Reader, format Format) ([]model.TransactionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}

	names := columnNames[format]
	var records []model.TransactionRecord
	for _, row := range rows[1:] {
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		records = append(records, model.TransactionRecord{
			ID:        field(names[0]),
			Timestamp: field(names[1]),
			Amount:    field(names[2]),
			Type:      field(names[3]),
		})
	}
	return records, nil
}

// WriteRecords writes records in the store format (header + one row each).
func WriteRecords(w io.Writer, records []model.TransactionRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		row := []string{rec.ID, rec.Timestamp, rec.Amount, rec.Type}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Load reads a CSV file from disk in the given format. A missing file
// surfaces as an error wrapping fs.ErrNotExist.
func Load(path string, format Format) ([]model.TransactionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}
