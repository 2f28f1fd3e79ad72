package model

// TransactionRecord is one delivery-platform ledger line as persisted in the
// RawDB. Fields are kept as raw strings: the platform export is carried
// through verbatim, and blank fields from malformed rows are tolerated here.
// Strict parsing happens on the aggregation/export path.
type TransactionRecord struct {
	ID        string // platform-assigned id; not stable across re-exports
	Timestamp string // ISO-like; first 10 bytes are the calendar date
	Amount    string // signed decimal; payouts negative, earnings positive
	Type      string // platform item type tag (trip, payouts, ...)
}

// Date returns the calendar-date prefix of the timestamp ("YYYY-MM-DD").
// Timestamps shorter than a full date pass through whole.
func (r TransactionRecord) Date() string {
	if len(r.Timestamp) < 10 {
		return r.Timestamp
	}
	return r.Timestamp[:10]
}
