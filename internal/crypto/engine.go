package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sealbox/sealbox/internal/envelope"
	serrors "github.com/sealbox/sealbox/internal/errors"
)

// Options adjusts a single Encrypt call. The zero value selects the
// defaults: 200,000 PBKDF2 iterations and AES-256-GCM.
type Options struct {
	Iterations int
}

// Encrypt derives a key from the passphrase and seals plaintext into a
// fresh envelope. Every call generates a new random salt and nonce; salts
// and nonces are never reused across calls, even for the same passphrase.
func Encrypt(plaintext []byte, passphrase string, opts Options) (*envelope.Envelope, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, fmt.Errorf("passphrase must not be empty: %w", serrors.ErrInvalidInput)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("plaintext must not be empty: %w", serrors.ErrInvalidInput)
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := DeriveKey(passphrase, salt, iterations)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	gcm, err := newGCM(key.Bytes())
	if err != nil {
		return nil, err
	}

	// No associated data; the tag covers nonce and ciphertext only.
	ct := gcm.Seal(nil, nonce, plaintext, nil)

	return &envelope.Envelope{
		Algorithm:  envelope.AlgorithmAESGCM,
		KDF:        envelope.KDFPBKDF2,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Iterations: iterations,
		Ciphertext: base64.StdEncoding.EncodeToString(ct),
	}, nil
}

// Decrypt recovers plaintext from an envelope using a passphrase. The key
// is derived with the envelope's own salt and iteration count; a local
// default would produce a different key and a spurious failure.
func Decrypt(env *envelope.Envelope, passphrase string) ([]byte, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, fmt.Errorf("passphrase must not be empty: %w", serrors.ErrInvalidInput)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}

	salt, err := env.DecodeSalt()
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(passphrase, salt, env.Iterations)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	return open(env, key)
}

// DecryptWithKey is Decrypt without the derivation step: the supplied key
// is used directly. A tag mismatch means this key does not match this
// envelope.
func DecryptWithKey(env *envelope.Envelope, key *DerivedKey) ([]byte, error) {
	if key == nil || len(key.Bytes()) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes: %w", KeySize, serrors.ErrInvalidKeyFormat)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return open(env, key)
}

func open(env *envelope.Envelope, key *DerivedKey) ([]byte, error) {
	nonce, err := env.DecodeIV()
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("iv must be %d bytes: %w", NonceSize, serrors.ErrMalformedEnvelope)
	}
	ct, err := env.DecodeCiphertext()
	if err != nil {
		return nil, err
	}

	gcm, err := newGCM(key.Bytes())
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		// Wrong passphrase, wrong key, or tampered data. GCM cannot tell
		// these apart, so neither do we.
		return nil, serrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}
