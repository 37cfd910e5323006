// Package filestore provides per-record JSON file persistence for UserHub.
package filestore

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/yndnr/userhub-go/pkg/crypto/adaptive"
)

// keyInfo domain-separates keys derived for record encryption.
const keyInfo = "userhub-filestore-v1"

// NewCipher derives a record-encryption cipher from a passphrase.
//
// The passphrase is stretched to a 32-byte key with HKDF-SHA256 and used
// with the hardware-adaptive AEAD cipher.
func NewCipher(passphrase string) (adaptive.Cipher, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("filestore: encryption passphrase is empty")
	}

	key := make([]byte, adaptive.KeySize)
	kdf := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(keyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("filestore: derive encryption key: %w", err)
	}

	return adaptive.New(key)
}
