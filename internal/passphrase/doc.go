// Package passphrase helps the user pick a good secret. It is outside the
// cryptographic trust boundary: EstimateStrength is a deterministic UX
// signal and Generate draws uniform words from a fixed 256-word list
// using crypto/rand.
package passphrase
