// Package token provides token generation and keyed hashing utilities.
package token

import (
	"crypto/rand"
	"errors"
)

// Alphabet is the character set used for generated token IDs.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// IDLength is the default token ID length in characters.
const IDLength = 20

// ErrInvalidLength is returned when a non-positive length is requested.
var ErrInvalidLength = errors.New("token: length must be positive")

// GenerateID generates a random token ID of the default length.
func GenerateID() (string, error) {
	return Generate(IDLength)
}

// Generate generates a uniformly random lowercase-alphanumeric string of
// the requested length.
//
// Uniformity is preserved by rejection sampling: random bytes that would
// bias the modulo reduction are discarded and redrawn.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	// Largest multiple of len(Alphabet) that fits in a byte.
	max := byte(256 - 256%len(Alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= max {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// ValidID reports whether s is a well-formed token ID: exactly IDLength
// characters drawn from Alphabet.
func ValidID(s string) bool {
	if len(s) != IDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
