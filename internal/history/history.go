package history

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sealbox/sealbox/internal/envelope"
	serrors "github.com/sealbox/sealbox/internal/errors"
)

// MaxEntries caps the history log. Appends beyond the cap evict the
// oldest entries.
const MaxEntries = 20

// Entry records one past encryption. Size is the byte length of the
// original plaintext, kept for display only.
type Entry struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	Payload   *envelope.Envelope `json:"payload"`
	Size      int                `json:"size"`
}

// Backend is the persistence collaborator: a key-value byte store. The
// whole serialized log lives under one fixed key; Store defines policy
// (ordering, cap, eviction), not the storage mechanism.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// logKey is the single fixed key the serialized log is stored under.
const logKey = "history"

// Store applies the history policy over a Backend.
type Store struct {
	backend Backend
}

// NewStore returns a Store backed by the given Backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Append stamps the entry with a fresh id and the current time, inserts
// it at the front, and truncates the log to MaxEntries by recency. The
// load-modify-save sequence is one logical transaction: a failed save
// leaves the previously persisted log untouched. A persistence failure is
// reported as ErrStorageUnavailable and must not invalidate the envelope
// that was just produced.
func (s *Store) Append(name string, payload *envelope.Envelope, size int) (*Entry, error) {
	entry := &Entry{
		ID:        uuid.New().String(),
		Name:      name,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
		Size:      size,
	}

	entries := s.load()
	entries = append([]*Entry{entry}, entries...)
	sortNewestFirst(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns all entries sorted newest-first, regardless of the order
// they were persisted in. A corrupt or unreadable backing store reads as
// an empty log rather than an error.
func (s *Store) List() []*Entry {
	entries := s.load()
	sortNewestFirst(entries)
	return entries
}

// Remove deletes the entry with the given id. Absence is not an error.
func (s *Store) Remove(id string) error {
	entries := s.load()
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	return s.save(kept)
}

// Clear empties the entire log.
func (s *Store) Clear() error {
	if err := s.backend.Delete(logKey); err != nil {
		return fmt.Errorf("failed to clear history: %w", serrors.ErrStorageUnavailable)
	}
	return nil
}

func (s *Store) load() []*Entry {
	data, err := s.backend.Get(logKey)
	if err != nil || len(data) == 0 {
		return nil
	}
	var entries []*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt log degrades to empty rather than propagating a parse
		// error; the next successful Append rewrites it.
		return nil
	}
	return entries
}

func (s *Store) save(entries []*Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize history: %w", err)
	}
	if err := s.backend.Put(logKey, data); err != nil {
		return fmt.Errorf("failed to persist history: %w", serrors.ErrStorageUnavailable)
	}
	return nil
}

func sortNewestFirst(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
