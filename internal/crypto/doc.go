// Package crypto implements key derivation, the encryption engine, and
// the key export/import path.
//
// Keys are stretched from passphrases with PBKDF2-HMAC-SHA256 (200,000
// iterations by default, always the envelope's own count on decrypt) and
// used with AES-256-GCM. Each Encrypt call owns its own salt, nonce, and
// key material; nothing is cached between calls.
//
// Exported keys use the JWK "oct" representation wrapped in base64, kept
// in a separate file from the envelope they unlock.
package crypto
