package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/sealbox/sealbox/internal/envelope"
	serrors "github.com/sealbox/sealbox/internal/errors"
)

// Tests use a low iteration count to keep the suite fast; the default is
// exercised separately.
const testIterations = 1000

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"short text", []byte("hello world")},
		{"single byte", []byte{0x00}},
		{"binary data", []byte{0xff, 0x00, 0xde, 0xad, 0xbe, 0xef}},
		{"multiline text", []byte("line one\nline two\nline three\n")},
		{"unicode", []byte("pässwörd ☃ 日本語")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Encrypt(tt.plaintext, "test passphrase", Options{Iterations: testIterations})
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}

			got, err := Decrypt(env, "test passphrase")
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if !bytes.Equal(got, tt.plaintext) {
				t.Errorf("Decrypt() = %q, want %q", got, tt.plaintext)
			}
		})
	}
}

func TestEncryptDecryptScenario(t *testing.T) {
	// The canonical interop scenario: default iterations, known passphrase.
	env, err := Encrypt([]byte("hello world"), "correct horse battery staple", Options{})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if env.Iterations != DefaultIterations {
		t.Errorf("Iterations = %d, want %d", env.Iterations, DefaultIterations)
	}

	got, err := Decrypt(env, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("Decrypt() = %q, want %q", got, "hello world")
	}

	if _, err := Decrypt(env, "wrong"); !errors.Is(err, serrors.ErrAuthenticationFailed) {
		t.Errorf("Decrypt() with wrong passphrase error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestEncryptRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		plaintext  []byte
		passphrase string
	}{
		{"empty passphrase", []byte("data"), ""},
		{"whitespace passphrase", []byte("data"), "   \t\n"},
		{"empty plaintext", nil, "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encrypt(tt.plaintext, tt.passphrase, Options{Iterations: testIterations})
			if !errors.Is(err, serrors.ErrInvalidInput) {
				t.Errorf("Encrypt() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestDecryptRejectsEmptyPassphrase(t *testing.T) {
	env, err := Encrypt([]byte("data"), "secret", Options{Iterations: testIterations})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if _, err := Decrypt(env, "  "); !errors.Is(err, serrors.ErrInvalidInput) {
		t.Errorf("Decrypt() error = %v, want ErrInvalidInput", err)
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	first, err := DeriveKey("passphrase", salt, testIterations)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	second, err := DeriveKey("passphrase", salt, testIterations)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("DeriveKey() is not deterministic for identical inputs")
	}
	if len(first.Bytes()) != KeySize {
		t.Errorf("key length = %d, want %d", len(first.Bytes()), KeySize)
	}

	// Different iteration counts must yield different keys.
	other, err := DeriveKey("passphrase", salt, testIterations+1)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if bytes.Equal(first.Bytes(), other.Bytes()) {
		t.Error("DeriveKey() ignored the iteration count")
	}
}

func TestDeriveKeyRejectsBadInput(t *testing.T) {
	if _, err := DeriveKey("  ", []byte("salt"), testIterations); !errors.Is(err, serrors.ErrInvalidInput) {
		t.Errorf("DeriveKey() with blank passphrase error = %v, want ErrInvalidInput", err)
	}
	if _, err := DeriveKey("ok", []byte("salt"), 0); !errors.Is(err, serrors.ErrInvalidInput) {
		t.Errorf("DeriveKey() with zero iterations error = %v, want ErrInvalidInput", err)
	}
}

func TestEncryptNeverReusesSaltOrNonce(t *testing.T) {
	first, err := Encrypt([]byte("same plaintext"), "same passphrase", Options{Iterations: testIterations})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	second, err := Encrypt([]byte("same plaintext"), "same passphrase", Options{Iterations: testIterations})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if first.Salt == second.Salt {
		t.Error("two Encrypt() calls produced the same salt")
	}
	if first.IV == second.IV {
		t.Error("two Encrypt() calls produced the same nonce")
	}
	if first.Ciphertext == second.Ciphertext {
		t.Error("two Encrypt() calls produced the same ciphertext")
	}
}

func TestDecryptDetectsTampering(t *testing.T) {
	env, err := Encrypt([]byte("authentic message"), "secret", Options{Iterations: testIterations})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	flipBit := func(encoded string) string {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		raw[0] ^= 0x01
		return base64.StdEncoding.EncodeToString(raw)
	}

	tampered := *env
	tampered.Ciphertext = flipBit(env.Ciphertext)
	if _, err := Decrypt(&tampered, "secret"); !errors.Is(err, serrors.ErrAuthenticationFailed) {
		t.Errorf("Decrypt() with flipped ciphertext bit error = %v, want ErrAuthenticationFailed", err)
	}

	tampered = *env
	tampered.IV = flipBit(env.IV)
	if _, err := Decrypt(&tampered, "secret"); !errors.Is(err, serrors.ErrAuthenticationFailed) {
		t.Errorf("Decrypt() with flipped iv bit error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecryptWithKey(t *testing.T) {
	env, err := Encrypt([]byte("keyed message"), "secret", Options{Iterations: testIterations})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	salt, err := env.DecodeSalt()
	if err != nil {
		t.Fatalf("DecodeSalt() error = %v", err)
	}
	key, err := DeriveKey("secret", salt, env.Iterations)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	got, err := DecryptWithKey(env, key)
	if err != nil {
		t.Fatalf("DecryptWithKey() error = %v", err)
	}
	if string(got) != "keyed message" {
		t.Errorf("DecryptWithKey() = %q, want %q", got, "keyed message")
	}

	wrongKey, err := DeriveKey("not the passphrase", salt, env.Iterations)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if _, err := DecryptWithKey(env, wrongKey); !errors.Is(err, serrors.ErrAuthenticationFailed) {
		t.Errorf("DecryptWithKey() with wrong key error = %v, want ErrAuthenticationFailed", err)
	}
}

func TestDecryptHonorsEnvelopeIterations(t *testing.T) {
	// An envelope encrypted with a non-default count must decrypt without
	// the caller restating that count anywhere.
	env, err := Encrypt([]byte("payload"), "secret", Options{Iterations: 2500})
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if env.Iterations != 2500 {
		t.Fatalf("Iterations = %d, want 2500", env.Iterations)
	}
	if _, err := Decrypt(env, "secret"); err != nil {
		t.Errorf("Decrypt() error = %v", err)
	}
}

func TestDecryptRejectsUnsupportedEnvelope(t *testing.T) {
	env := &envelope.Envelope{
		Algorithm:  "DES",
		KDF:        envelope.KDFPBKDF2,
		Salt:       base64.StdEncoding.EncodeToString([]byte("0123456789abcdef")),
		IV:         base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, NonceSize)),
		Iterations: testIterations,
		Ciphertext: base64.StdEncoding.EncodeToString([]byte("junkjunkjunkjunkjunk")),
	}
	if _, err := Decrypt(env, "secret"); !errors.Is(err, serrors.ErrUnsupportedAlgorithm) {
		t.Errorf("Decrypt() error = %v, want ErrUnsupportedAlgorithm", err)
	}
}
