// Package errors provides typed error values for the sealbox application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
//   - Input errors: caller-correctable bad input (ErrInvalidInput)
//   - Envelope errors: undecodable or unsupported envelopes
//     (ErrMalformedEnvelope, ErrUnsupportedAlgorithm)
//   - Crypto errors: decryption and key handling failures
//     (ErrAuthenticationFailed, ErrInvalidKeyFormat)
//   - Storage errors: history persistence failures (ErrStorageUnavailable)
//
// # Usage
//
// Return errors from internal packages:
//
//	if strings.TrimSpace(passphrase) == "" {
//	    return nil, serrors.ErrInvalidInput
//	}
//
// Handle errors in the CLI layer:
//
//	plaintext, err := crypto.Decrypt(env, passphrase)
//	if errors.Is(err, serrors.ErrAuthenticationFailed) {
//	    // Suggest re-checking the passphrase.
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("decoding envelope field %q: %w", field, serrors.ErrMalformedEnvelope)
//
// No error in this package ever carries passphrase content, key material,
// or plaintext in its message.
package errors
