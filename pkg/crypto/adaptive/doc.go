// Package adaptive provides authenticated encryption with automatic
// algorithm selection.
//
// AES-GCM is used on architectures with hardware AES support and
// ChaCha20-Poly1305 everywhere else. Both ciphers share the same wire
// format: nonce || ciphertext || tag.
package adaptive
