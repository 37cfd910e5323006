// Package domain defines the core domain models for UserHub.
package domain

import "strings"

// PhoneLength is the required length of a user's phone key.
//
// The phone is treated as an opaque string key; no real phone syntax is
// enforced beyond the fixed length.
const PhoneLength = 10

// User represents a registered user account.
//
// The phone number is the record key. The stored password hash is never
// serialized to clients; use Public() for API responses.
type User struct {
	// FirstName is the user's first name.
	FirstName string `json:"firstName"`

	// LastName is the user's last name.
	LastName string `json:"lastName"`

	// Phone is the 10-character phone key identifying the user.
	Phone string `json:"phone"`

	// HashedPassword is the keyed hash of the user's password.
	HashedPassword string `json:"hashedPassword"`

	// TOSAgreement records that the user accepted the terms of service.
	// Must be true at creation time.
	TOSAgreement bool `json:"tosAgreement"`
}

// PublicUser is the client-visible view of a User, without the password hash.
type PublicUser struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	TOSAgreement bool   `json:"tosAgreement"`
}

// Public returns the user without its password hash.
func (u *User) Public() PublicUser {
	return PublicUser{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		TOSAgreement: u.TOSAgreement,
	}
}

// ValidPhone reports whether s is a well-formed phone key.
func ValidPhone(s string) bool {
	return len(strings.TrimSpace(s)) == PhoneLength
}
