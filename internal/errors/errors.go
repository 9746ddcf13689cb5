package errors

import "errors"

// Input errors indicate the caller supplied something unusable.
var (
	// ErrInvalidInput indicates an empty passphrase or empty plaintext.
	ErrInvalidInput = errors.New("invalid input")
)

// Envelope errors indicate problems with an envelope being decoded.
var (
	// ErrMalformedEnvelope indicates the envelope text could not be decoded
	// or is missing required fields.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrUnsupportedAlgorithm indicates the envelope names an algorithm or
	// KDF this tool does not support.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// Cryptographic errors indicate failures during decryption or key handling.
var (
	// ErrAuthenticationFailed indicates GCM tag verification failed: wrong
	// passphrase, wrong key, or tampered ciphertext. The three causes are
	// indistinguishable at the AEAD layer and are reported as one error.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidKeyFormat indicates an exported key file could not be parsed.
	ErrInvalidKeyFormat = errors.New("invalid key format")
)

// Storage errors indicate the history store could not persist or read.
var (
	// ErrStorageUnavailable indicates the history backend failed to persist
	// a write. Callers must treat this as non-fatal to the encryption that
	// preceded it.
	ErrStorageUnavailable = errors.New("history storage unavailable")
)
