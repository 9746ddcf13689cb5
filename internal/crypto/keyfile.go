package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	serrors "github.com/sealbox/sealbox/internal/errors"
)

// jwkAlgorithm is the JWA name for AES-256-GCM.
const jwkAlgorithm = "A256GCM"

// symmetricJWK is the JSON Web Key representation of an AES key
// (RFC 7518 "oct" key type).
type symmetricJWK struct {
	Kty string `json:"kty"`
	K   string `json:"k"` // base64url, no padding
	Alg string `json:"alg"`
	Ext bool   `json:"ext"`
}

// ExportKey serializes a derived key as a base64-wrapped JWK. The result
// belongs in its own file, never inside an envelope: a leaked envelope
// alone must not be decryptable.
func ExportKey(key *DerivedKey) (string, error) {
	if key == nil || len(key.Bytes()) != KeySize {
		return "", fmt.Errorf("key must be %d bytes: %w", KeySize, serrors.ErrInvalidKeyFormat)
	}
	jwk := symmetricJWK{
		Kty: "oct",
		K:   base64.RawURLEncoding.EncodeToString(key.Bytes()),
		Alg: jwkAlgorithm,
		Ext: true,
	}
	data, err := json.Marshal(jwk)
	if err != nil {
		return "", fmt.Errorf("failed to marshal key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ImportKey reverses ExportKey. The reconstructed key is usable only with
// the AES-GCM envelopes this tool produces.
func ImportKey(text string) (*DerivedKey, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("key file is not valid base64: %w", serrors.ErrInvalidKeyFormat)
	}

	var jwk symmetricJWK
	if err := json.Unmarshal(raw, &jwk); err != nil {
		return nil, fmt.Errorf("key file is not a JWK: %w", serrors.ErrInvalidKeyFormat)
	}
	if jwk.Kty != "oct" {
		return nil, fmt.Errorf("key type %q is not a symmetric key: %w", jwk.Kty, serrors.ErrInvalidKeyFormat)
	}
	if jwk.Alg != "" && jwk.Alg != jwkAlgorithm {
		return nil, fmt.Errorf("key algorithm %q: %w", jwk.Alg, serrors.ErrInvalidKeyFormat)
	}

	keyBytes, err := base64.RawURLEncoding.DecodeString(jwk.K)
	if err != nil {
		// Some producers pad the k value; accept that form too.
		keyBytes, err = base64.URLEncoding.DecodeString(jwk.K)
		if err != nil {
			return nil, fmt.Errorf("key material is not valid base64url: %w", serrors.ErrInvalidKeyFormat)
		}
	}
	if len(keyBytes) != KeySize {
		return nil, fmt.Errorf("key material must be %d bytes: %w", KeySize, serrors.ErrInvalidKeyFormat)
	}

	return &DerivedKey{bytes: keyBytes}, nil
}
