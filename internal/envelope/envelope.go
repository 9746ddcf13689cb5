package envelope

import (
	"encoding/base64"
	"fmt"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

// Supported algorithm identifiers. The format is closed over exactly this
// pair; anything else is rejected on decode.
const (
	AlgorithmAESGCM = "AES-GCM"
	KDFPBKDF2       = "PBKDF2"
)

// Envelope is the portable record holding everything needed to decrypt,
// except the secret. It is immutable once constructed: encryption produces
// a fresh one and decryption never mutates it.
type Envelope struct {
	Algorithm  string `json:"algorithm"`
	KDF        string `json:"kdf"`
	Salt       string `json:"salt"` // base64
	IV         string `json:"iv"`   // base64
	Iterations int    `json:"iterations"`
	Ciphertext string `json:"ct"` // base64, GCM tag appended
}

// Validate checks the field-presence and identifier invariants that every
// decoded envelope must satisfy.
func (e *Envelope) Validate() error {
	if e.Salt == "" || e.IV == "" || e.Ciphertext == "" {
		return fmt.Errorf("missing required field: %w", serrors.ErrMalformedEnvelope)
	}
	if e.Algorithm == "" || e.KDF == "" {
		return fmt.Errorf("missing algorithm identifier: %w", serrors.ErrMalformedEnvelope)
	}
	if e.Algorithm != AlgorithmAESGCM {
		return fmt.Errorf("algorithm %q: %w", e.Algorithm, serrors.ErrUnsupportedAlgorithm)
	}
	if e.KDF != KDFPBKDF2 {
		return fmt.Errorf("kdf %q: %w", e.KDF, serrors.ErrUnsupportedAlgorithm)
	}
	if e.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive: %w", serrors.ErrMalformedEnvelope)
	}
	return nil
}

// DecodeSalt returns the raw salt bytes.
func (e *Envelope) DecodeSalt() ([]byte, error) {
	return decodeField("salt", e.Salt)
}

// DecodeIV returns the raw nonce bytes.
func (e *Envelope) DecodeIV() ([]byte, error) {
	return decodeField("iv", e.IV)
}

// DecodeCiphertext returns the raw ciphertext bytes, tag included.
func (e *Envelope) DecodeCiphertext() ([]byte, error) {
	return decodeField("ct", e.Ciphertext)
}

func decodeField(name, value string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("field %q is not valid base64: %w", name, serrors.ErrMalformedEnvelope)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("field %q is empty: %w", name, serrors.ErrMalformedEnvelope)
	}
	return raw, nil
}
