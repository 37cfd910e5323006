// Package domain defines the core domain models for UserHub.
package domain

import (
	"time"

	"github.com/yndnr/userhub-go/pkg/token"
)

// TokenTTL is the lifetime granted to a token at issuance and on each
// extension.
const TokenTTL = time.Hour

// TokenIDLength is the length of a token ID in characters.
const TokenIDLength = token.IDLength

// Token is a short-lived credential binding a random identifier to a
// user's phone number and an expiration instant.
//
// Expired tokens are not deleted automatically; they are only rejected
// on verification.
type Token struct {
	// Phone is the phone key of the user this token authorizes.
	Phone string `json:"phone"`

	// ID is the random token identifier. It is also the record key.
	ID string `json:"id"`

	// Expires is the absolute expiration instant (Unix milliseconds).
	Expires int64 `json:"expires"`
}

// NewToken issues a token for the given phone with a freshly generated ID
// and an expiration of TokenTTL from now.
func NewToken(phone string) (*Token, error) {
	id, err := token.GenerateID()
	if err != nil {
		return nil, ErrInternalServer.WithCause(err)
	}

	return &Token{
		Phone:   phone,
		ID:      id,
		Expires: time.Now().Add(TokenTTL).UnixMilli(),
	}, nil
}

// IsExpired reports whether the token's expiration is no longer strictly
// in the future.
func (t *Token) IsExpired() bool {
	return t.Expires <= time.Now().UnixMilli()
}

// Extend moves the expiration to TokenTTL from now.
//
// Callers must reject extension of already-expired tokens; Extend itself
// does not check.
func (t *Token) Extend() {
	t.Expires = time.Now().Add(TokenTTL).UnixMilli()
}

// ValidTokenID reports whether s is a well-formed token ID.
func ValidTokenID(s string) bool {
	return token.ValidID(s)
}
