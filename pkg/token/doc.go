// Package token provides token generation and keyed hashing utilities.
//
// Token IDs are uniformly random lowercase-alphanumeric strings generated
// from a CSPRNG. Keyed hashing is HMAC-SHA256 with a shared secret and is
// used to store and verify passwords without retaining plaintext.
package token
