// Package security holds helpers for handling API credentials.
package security

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintBytes is the digest prefix length kept in a fingerprint.
const fingerprintBytes = 6

// Fingerprint returns a short, stable identifier for an API key.
// It is safe to log: the key cannot be recovered from it.
func Fingerprint(key string) string {
	if key == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:fingerprintBytes])
}

// ConstantTimeEqual compares two keys in constant time.
func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
