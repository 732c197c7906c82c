package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const maxConflictRetries = 32

// paddedTime renders a timestamp with 19-digit zero padding so keys sort chronologically.
func paddedTime(t time.Time) string {
	return fmt.Sprintf("%019d", t.UnixNano())
}

func getJSON(txn *badger.Txn, key []byte, notFound error, v any) error {
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return notFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key []byte, v any) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(key, bytes)
}

// updateWithRetry runs fn in a read-write transaction and replays it when
// badger reports a conflict with a concurrent transaction.
func updateWithRetry(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = db.Update(fn)
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// collectKeys walks prefix in the given direction and returns the suffix of every key after prefix.
func collectKeys(txn *badger.Txn, prefix []byte, reverse bool) []string {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Reverse = reverse
	it := txn.NewIterator(options)
	defer it.Close()

	seek := prefix
	if reverse {
		seek = append(append([]byte{}, prefix...), 0xFF)
	}
	var suffixes []string
	for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
		suffixes = append(suffixes, string(it.Item().Key()[len(prefix):]))
	}
	return suffixes
}
