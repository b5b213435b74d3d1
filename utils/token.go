package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// AdminToken derives the static admin bearer token from the configured
// secret. The token is a deterministic function of the secret, so it never
// expires and only changes when the secret is rotated.
func AdminToken(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// TokenEqual compares two tokens in constant time.
func TokenEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
