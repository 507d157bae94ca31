package primitives

import (
	"encoding/base64"
	"encoding/hex"
)

// Hex returns the lowercase hex encoding of b.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// DecodeHex decodes a lowercase (or mixed-case) hex string.
func DecodeHex(s string) ([]byte, error) { return hex.DecodeString(s) }

// Base64URL returns the unpadded base64url encoding of b.
func Base64URL(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

// DecodeBase64URL decodes an unpadded base64url string.
func DecodeBase64URL(s string) ([]byte, error) { return base64.RawURLEncoding.DecodeString(s) }

// Merge concatenates byte slices without mutating any of the inputs.
func Merge(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
