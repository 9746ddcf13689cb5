package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// SaltSize is the salt length the engine generates per encryption.
	SaltSize = 16

	// NonceSize is the GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// DefaultIterations is the PBKDF2 work factor used when the caller does
	// not override it. A decrypting party always uses the count embedded in
	// the envelope, never this constant.
	DefaultIterations = 200000
)

// DerivedKey holds symmetric key material derived from a passphrase or
// reconstructed from an exported key file. It is never logged and never
// embedded in an envelope.
type DerivedKey struct {
	bytes []byte
}

// Bytes returns the raw key material.
func (k *DerivedKey) Bytes() []byte {
	return k.bytes
}

// DeriveKey stretches passphrase+salt+iterations into a 256-bit key using
// PBKDF2-HMAC-SHA256. It is a pure function: identical inputs always yield
// bit-identical key material.
func DeriveKey(passphrase string, salt []byte, iterations int) (*DerivedKey, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, fmt.Errorf("passphrase must not be empty: %w", serrors.ErrInvalidInput)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive: %w", serrors.ErrInvalidInput)
	}
	key := pbkdf2.Key([]byte(passphrase), salt, iterations, KeySize, sha256.New)
	return &DerivedKey{bytes: key}, nil
}

// Zero overwrites key material. Callers that are done with a key should
// zero it rather than leave it for the collector.
func (k *DerivedKey) Zero() {
	for i := range k.bytes {
		k.bytes[i] = 0
	}
}
