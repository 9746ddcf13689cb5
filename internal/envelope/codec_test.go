package envelope

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

func validEnvelope() *Envelope {
	return &Envelope{
		Algorithm:  AlgorithmAESGCM,
		KDF:        KDFPBKDF2,
		Salt:       base64.StdEncoding.EncodeToString([]byte("0123456789abcdef")),
		IV:         base64.StdEncoding.EncodeToString([]byte("0123456789ab")),
		Iterations: 200000,
		Ciphertext: base64.StdEncoding.EncodeToString([]byte("ciphertext-with-tag")),
	}
}

func TestEncodeDecodeSymmetry(t *testing.T) {
	env := validEnvelope()

	text, err := EncodeText(env)
	if err != nil {
		t.Fatalf("EncodeText() error = %v", err)
	}

	decoded, err := DecodeText(text)
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if *decoded != *env {
		t.Errorf("DecodeText(EncodeText(e)) = %+v, want %+v", decoded, env)
	}
}

func TestDecodeTextAcceptsUnwrappedJSON(t *testing.T) {
	env := validEnvelope()
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := DecodeText(string(raw))
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if *decoded != *env {
		t.Errorf("DecodeText() = %+v, want %+v", decoded, env)
	}
}

func TestDecodeTextAcceptsLongCiphertextKey(t *testing.T) {
	// Some producers write "ciphertext" instead of "ct".
	env := validEnvelope()
	payload := map[string]interface{}{
		"algorithm":  env.Algorithm,
		"kdf":        env.KDF,
		"salt":       env.Salt,
		"iv":         env.IV,
		"iterations": env.Iterations,
		"ciphertext": env.Ciphertext,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := DecodeText(string(raw))
	if err != nil {
		t.Fatalf("DecodeText() error = %v", err)
	}
	if decoded.Ciphertext != env.Ciphertext {
		t.Errorf("Ciphertext = %q, want %q", decoded.Ciphertext, env.Ciphertext)
	}
}

func TestDecodeTextTrimsWhitespace(t *testing.T) {
	env := validEnvelope()
	text, err := EncodeText(env)
	if err != nil {
		t.Fatalf("EncodeText() error = %v", err)
	}
	if _, err := DecodeText("  " + text + "\n"); err != nil {
		t.Errorf("DecodeText() with surrounding whitespace error = %v", err)
	}
}

func TestDecodeTextRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t"},
		{"garbage", "this is not an envelope"},
		{"base64 of garbage", base64.StdEncoding.EncodeToString([]byte("still not json"))},
		{"json array", "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeText(tt.input); !errors.Is(err, serrors.ErrMalformedEnvelope) {
				t.Errorf("DecodeText(%q) error = %v, want ErrMalformedEnvelope", tt.input, err)
			}
		})
	}
}

func TestDecodeTextRejectsUnsupportedAlgorithms(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Envelope)
	}{
		{"DES algorithm", func(e *Envelope) { e.Algorithm = "DES" }},
		{"chacha algorithm", func(e *Envelope) { e.Algorithm = "ChaCha20-Poly1305" }},
		{"scrypt kdf", func(e *Envelope) { e.KDF = "scrypt" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnvelope()
			tt.mutate(env)
			raw, err := json.Marshal(env)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			// Both the wrapped and unwrapped forms must reject it.
			for _, input := range []string{string(raw), base64.StdEncoding.EncodeToString(raw)} {
				if _, err := DecodeText(input); !errors.Is(err, serrors.ErrUnsupportedAlgorithm) {
					t.Errorf("DecodeText() error = %v, want ErrUnsupportedAlgorithm", err)
				}
			}
		})
	}
}

func TestValidateFieldInvariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Envelope)
		want   error
	}{
		{"missing salt", func(e *Envelope) { e.Salt = "" }, serrors.ErrMalformedEnvelope},
		{"missing iv", func(e *Envelope) { e.IV = "" }, serrors.ErrMalformedEnvelope},
		{"missing ciphertext", func(e *Envelope) { e.Ciphertext = "" }, serrors.ErrMalformedEnvelope},
		{"missing algorithm", func(e *Envelope) { e.Algorithm = "" }, serrors.ErrMalformedEnvelope},
		{"missing kdf", func(e *Envelope) { e.KDF = "" }, serrors.ErrMalformedEnvelope},
		{"zero iterations", func(e *Envelope) { e.Iterations = 0 }, serrors.ErrMalformedEnvelope},
		{"negative iterations", func(e *Envelope) { e.Iterations = -1 }, serrors.ErrMalformedEnvelope},
		{"unknown algorithm", func(e *Envelope) { e.Algorithm = "AES-CBC" }, serrors.ErrUnsupportedAlgorithm},
		{"unknown kdf", func(e *Envelope) { e.KDF = "argon2id" }, serrors.ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnvelope()
			tt.mutate(env)
			if err := env.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}

	if err := validEnvelope().Validate(); err != nil {
		t.Errorf("Validate() on a valid envelope error = %v", err)
	}
}

func TestDecodeFieldRejectsBadBase64(t *testing.T) {
	env := validEnvelope()
	env.Salt = "!!not-base64!!"
	if _, err := env.DecodeSalt(); !errors.Is(err, serrors.ErrMalformedEnvelope) {
		t.Errorf("DecodeSalt() error = %v, want ErrMalformedEnvelope", err)
	}

	env = validEnvelope()
	env.IV = base64.StdEncoding.EncodeToString(nil)
	// Empty string is caught by Validate; an encoded empty value is caught
	// on decode.
	if _, err := env.DecodeIV(); !errors.Is(err, serrors.ErrMalformedEnvelope) {
		t.Errorf("DecodeIV() on empty bytes error = %v, want ErrMalformedEnvelope", err)
	}
}
