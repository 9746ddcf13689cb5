package history

import "errors"

var errPutFailed = errors.New("backend write failed")

// MemoryBackend is an in-memory Backend, used in tests and wherever no
// durable medium is wanted.
type MemoryBackend struct {
	values map[string][]byte

	// FailPuts makes every Put fail, simulating a full or unwritable
	// medium.
	FailPuts bool
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Get returns the value for key, or nil if unset.
func (m *MemoryBackend) Get(key string) ([]byte, error) {
	return m.values[key], nil
}

// Put stores value under key.
func (m *MemoryBackend) Put(key string, value []byte) error {
	if m.FailPuts {
		return errPutFailed
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

// Delete removes key if present.
func (m *MemoryBackend) Delete(key string) error {
	delete(m.values, key)
	return nil
}
