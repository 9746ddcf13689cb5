package envelope

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

// EncodeText serializes the envelope to canonical JSON and wraps the whole
// structure in base64, producing one opaque line suitable for copy/paste.
func EncodeText(env *Envelope) (string, error) {
	if err := env.Validate(); err != nil {
		return "", err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeText parses envelope text in either of its two accepted forms:
// the canonical base64-wrapped JSON, or raw unwrapped JSON a user may have
// edited or received from another tool. Both forms must remain acceptable
// for compatibility. After parsing, field and identifier validation apply
// unconditionally.
func DecodeText(input string) (*Envelope, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input: %w", serrors.ErrMalformedEnvelope)
	}

	// Wrapped form first: base64 whose payload parses as JSON.
	if raw, err := base64.StdEncoding.DecodeString(input); err == nil {
		if env, err := parsePayload(raw); err == nil {
			return env, nil
		} else if isPermanent(err) {
			return nil, err
		}
	}

	// Fall back to the unwrapped JSON form.
	env, err := parsePayload([]byte(input))
	if err != nil {
		return nil, err
	}
	return env, nil
}

// provisionalEnvelope is the loosely-typed record a payload is parsed into
// before validation. Decode accepts both "ct" and the long-form
// "ciphertext" key for the ciphertext field.
type provisionalEnvelope struct {
	Algorithm  string `json:"algorithm"`
	KDF        string `json:"kdf"`
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	Iterations int    `json:"iterations"`
	Ct         string `json:"ct"`
	Ciphertext string `json:"ciphertext"`
}

// parsePayload parses raw JSON into a provisional record, validates it,
// and converts it to a strongly-typed Envelope. Rejection happens here, at
// the validation boundary, not deeper in the pipeline.
func parsePayload(raw []byte) (*Envelope, error) {
	var p provisionalEnvelope
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("not a JSON envelope: %w", serrors.ErrMalformedEnvelope)
	}

	ct := p.Ct
	if ct == "" {
		ct = p.Ciphertext
	}

	env := &Envelope{
		Algorithm:  p.Algorithm,
		KDF:        p.KDF,
		Salt:       p.Salt,
		IV:         p.IV,
		Iterations: p.Iterations,
		Ciphertext: ct,
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return env, nil
}

// isPermanent reports whether a parse error should stop the dual-mode
// fallback. An envelope that parsed but names an unsupported algorithm is
// rejected outright; retrying the other form would mask the real problem.
func isPermanent(err error) bool {
	return errors.Is(err, serrors.ErrUnsupportedAlgorithm)
}
