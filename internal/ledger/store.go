package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/payoutbook-dev/payoutbook/internal/model"
)

// RecordKey is the store's uniqueness key. Two records with the same full
// timestamp string and the same type are treated as the same transaction
// regardless of id or amount. A genuinely distinct same-type transaction at
// an identical timestamp would be silently collapsed; upstream exports do
// not produce those, and the key is kept for compatibility with existing
// ledger files.
type RecordKey struct {
	Timestamp string
	Type      string
}

// Key returns the dedup key for a record.
func Key(rec model.TransactionRecord) RecordKey {
	return RecordKey{Timestamp: rec.Timestamp, Type: rec.Type}
}

// Store is the RawDB: the full ledger held in memory, backed by one CSV
// file. Every mutation rewrites the file completely; there is no append
// log and no locking (single-process access is assumed).
type Store struct {
	path    string
	records []model.TransactionRecord
}

// Open loads the store at path, first creating an empty header-only file
// if none exists.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeFile(path, nil); err != nil {
			return nil, fmt.Errorf("initializing ledger: %w", err)
		}
	}

	records, err := Load(path, FormatStore)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, records: records}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Records returns the in-memory records in persisted order.
func (s *Store) Records() []model.TransactionRecord {
	return s.records
}

// Merge appends each incoming record whose (timestamp, type) key is not
// already present. The key check runs against the store as extended by
// earlier appends within the same call, so mutual duplicates in the input
// are not both retained; the earlier one in input order wins. The result is
// re-sorted ascending by timestamp (ordinal, stable) and persisted.
func (s *Store) Merge(incoming []model.TransactionRecord) (added, skipped int, err error) {
	seen := make(map[RecordKey]bool, len(s.records))
	for _, rec := range s.records {
		seen[Key(rec)] = true
	}

	for _, rec := range incoming {
		k := Key(rec)
		if seen[k] {
			skipped++
			continue
		}
		seen[k] = true
		s.records = append(s.records, rec)
		added++
	}

	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Timestamp < s.records[j].Timestamp
	})

	if err := s.Save(); err != nil {
		return 0, 0, err
	}
	return added, skipped, nil
}

// Clear discards every record and persists a header-only file. Destructive
// and irreversible; confirmation is the caller's concern.
func (s *Store) Clear() error {
	s.records = nil
	return s.Save()
}

// Save rewrites the backing file completely (header plus all records).
func (s *Store) Save() error {
	return writeFile(s.path, s.records)
}

func writeFile(path string, records []model.TransactionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteRecords(f, records); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
