// Package adaptive provides authenticated encryption with automatic
// algorithm selection.
package adaptive

import (
	"bytes"
	"testing"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestNew(t *testing.T) {
	c, err := New(testKey())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.Type() != CipherAESGCM && c.Type() != CipherChaCha20 {
		t.Errorf("unexpected cipher type: %s", c.Type())
	}
}

func TestNewInvalidKey(t *testing.T) {
	if _, err := New([]byte("short")); err == nil {
		t.Error("expected error for short key")
	}
	if _, err := NewAESGCM(make([]byte, 16)); err == nil {
		t.Error("expected error for 16-byte AES-GCM key")
	}
	if _, err := NewChaCha20(make([]byte, 31)); err == nil {
		t.Error("expected error for 31-byte ChaCha20 key")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, ct := range []CipherType{CipherAESGCM, CipherChaCha20} {
		t.Run(string(ct), func(t *testing.T) {
			c, err := NewWithType(testKey(), ct)
			if err != nil {
				t.Fatalf("NewWithType(%s) error: %v", ct, err)
			}

			plaintext := []byte(`{"phone":"5551234567"}`)
			ad := []byte("users/5551234567")

			sealed, err := c.Encrypt(plaintext, ad)
			if err != nil {
				t.Fatalf("Encrypt error: %v", err)
			}
			if bytes.Contains(sealed, plaintext) {
				t.Error("ciphertext contains plaintext")
			}

			opened, err := c.Decrypt(sealed, ad)
			if err != nil {
				t.Fatalf("Decrypt error: %v", err)
			}
			if !bytes.Equal(opened, plaintext) {
				t.Errorf("round trip mismatch: got %q, want %q", opened, plaintext)
			}
		})
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	c, err := NewWithType(testKey(), CipherChaCha20)
	if err != nil {
		t.Fatalf("NewWithType error: %v", err)
	}

	sealed, err := c.Encrypt([]byte("payload"), nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	t.Run("modified ciphertext", func(t *testing.T) {
		tampered := append([]byte(nil), sealed...)
		tampered[len(tampered)-1] ^= 0xff
		if _, err := c.Decrypt(tampered, nil); err == nil {
			t.Error("expected error for tampered ciphertext")
		}
	})

	t.Run("wrong additional data", func(t *testing.T) {
		if _, err := c.Decrypt(sealed, []byte("other")); err == nil {
			t.Error("expected error for wrong additional data")
		}
	})

	t.Run("truncated", func(t *testing.T) {
		if _, err := c.Decrypt(sealed[:4], nil); err == nil {
			t.Error("expected error for truncated ciphertext")
		}
	})
}

func TestCrossCipherRejected(t *testing.T) {
	a, _ := NewWithType(testKey(), CipherAESGCM)
	b, _ := NewWithType(testKey(), CipherChaCha20)

	sealed, err := a.Encrypt([]byte("payload"), nil)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if _, err := b.Decrypt(sealed, nil); err == nil {
		t.Error("expected ChaCha20 to reject AES-GCM ciphertext")
	}
}
