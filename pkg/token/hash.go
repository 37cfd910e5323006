// Package token provides token generation and keyed hashing utilities.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// KeyedHash computes the HMAC-SHA256 of input keyed by secret.
//
// The returned hash is hex encoded for storage. The same (secret, input)
// pair always yields the same output, so stored hashes can be verified by
// recomputing and comparing.
func KeyedHash(secret, input string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(input))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyKeyedHash verifies input against an expected keyed hash.
//
// Uses constant-time comparison to prevent timing attacks.
func VerifyKeyedHash(secret, input, expectedHash string) bool {
	actual := KeyedHash(secret, input)
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expectedHash)) == 1
}
