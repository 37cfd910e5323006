// Package domain defines the core domain models for UserHub.
package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserPublic(t *testing.T) {
	u := &User{
		FirstName:      "Ann",
		LastName:       "Lee",
		Phone:          "5551234567",
		HashedPassword: "deadbeef",
		TOSAgreement:   true,
	}

	pub := u.Public()
	if pub.FirstName != "Ann" || pub.LastName != "Lee" || pub.Phone != "5551234567" || !pub.TOSAgreement {
		t.Errorf("unexpected public view: %+v", pub)
	}

	data, err := json.Marshal(pub)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(data), "hashedPassword") || strings.Contains(string(data), "deadbeef") {
		t.Errorf("public view leaks password hash: %s", data)
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"5551234567", true},
		{" 5551234567 ", true}, // trimmed before length check
		{"555123456", false},
		{"55512345678", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
