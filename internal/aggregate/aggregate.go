// Package aggregate collapses ledger records into per-day, per-type summed
// buckets for journal export.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/payoutbook-dev/payoutbook/internal/model"
)

// TypeTotal is the summed amount for one transaction type within a day.
// The sum is sign-preserving; absolute values are an export concern.
type TypeTotal struct {
	Type string
	Sum  decimal.Decimal
}

// DaySummary holds the per-type totals for one calendar day.
type DaySummary struct {
	Date   string // YYYY-MM-DD
	Totals []TypeTotal
}

// Daily groups records by calendar day (the 10-byte date prefix of the
// timestamp) and by transaction type, summing amounts per bucket. Days come
// back in ascending ordinal order. The order of types within a day is
// first-seen and callers must not rely on it; only the outer date ordering
// and key uniqueness are guaranteed.
//
// An unparseable amount fails the whole aggregation: by the time records
// reach this path, numeric correctness is non-negotiable.
func Daily(records []model.TransactionRecord) ([]DaySummary, error) {
	type dayAgg struct {
		types []string
		sums  map[string]decimal.Decimal
	}

	days := make(map[string]*dayAgg)
	var dates []string

	for _, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q (%s %s): %w", rec.Amount, rec.Timestamp, rec.Type, err)
		}

		date := rec.Date()
		agg, ok := days[date]
		if !ok {
			agg = &dayAgg{sums: make(map[string]decimal.Decimal)}
			days[date] = agg
			dates = append(dates, date)
		}

		sum, ok := agg.sums[rec.Type]
		if !ok {
			agg.types = append(agg.types, rec.Type)
		}
		agg.sums[rec.Type] = sum.Add(amount)
	}

	sort.Strings(dates)

	result := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		agg := days[date]
		totals := make([]TypeTotal, 0, len(agg.types))
		for _, t := range agg.types {
			totals = append(totals, TypeTotal{Type: t, Sum: agg.sums[t]})
		}
		result = append(result, DaySummary{Date: date, Totals: totals})
	}
	return result, nil
}
