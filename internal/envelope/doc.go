// Package envelope defines the portable encrypted envelope format and its
// textual codec.
//
// An envelope is a JSON object with exactly six fields:
//
//	{"algorithm":"AES-GCM","kdf":"PBKDF2","salt":...,"iv":...,
//	 "iterations":200000,"ct":...}
//
// salt, iv, and ct are standard base64. The canonical interchange form
// wraps the whole JSON object in base64 a second time, producing one
// opaque line. DecodeText accepts both the wrapped and the raw JSON form;
// this dual-mode rule is part of the external compatibility surface, not
// an implementation convenience.
//
// The format is closed: exactly one algorithm/KDF pair is supported, and
// envelopes naming anything else are rejected with ErrUnsupportedAlgorithm
// even when otherwise well-formed.
package envelope
