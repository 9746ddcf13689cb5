// Package history keeps a capped, timestamp-ordered log of past
// encryptions.
//
// The Store defines the policy: at most MaxEntries entries, newest first,
// oldest evicted on append. Persistence goes through the Backend
// interface, a key-value byte store holding the whole serialized log
// under one fixed key. The shipped backends are a bbolt database file and
// an in-memory map.
//
// History is bookkeeping, not security: a failed append is reported but
// never invalidates the encryption that produced the entry, and a corrupt
// log reads as empty instead of failing.
package history
