package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var historyBucket = []byte("history")

// BoltBackend persists the history log in a bbolt database file. Writes
// are transactional, so an interrupted append never corrupts entries that
// were already stored.
type BoltBackend struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the history database at path.
func OpenBolt(path string) (*BoltBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history database: %w", err)
	}
	return &BoltBackend{db: db}, nil
}

// Close releases the database file.
func (b *BoltBackend) Close() error {
	return b.db.Close()
}

// Get returns the value for key, or nil if unset.
func (b *BoltBackend) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(historyBucket).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put stores value under key.
func (b *BoltBackend) Put(key string, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(historyBucket).Put([]byte(key), value)
	})
}

// Delete removes key if present.
func (b *BoltBackend) Delete(key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(historyBucket).Delete([]byte(key))
	})
}
