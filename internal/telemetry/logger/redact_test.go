package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestRedaction(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		redacted bool
	}{
		{"password key", "password", "hunter2", true},
		{"hashed password key", "hashedPassword", "abc123", true},
		{"token key", "token", "pfirnd2hj91wiry4sbtr", true},
		{"secret key", "hashing_secret", "thisIsASecret", true},
		{"auth key", "authorization", "Bearer xyz", true},
		{"plain key", "phone", "5551234567", false},
		{"empty sensitive value", "password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufLogger(t, "info", "json")
			l.Info("event", tt.key, tt.value)

			var logEntry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
				t.Fatalf("Failed to parse JSON log: %v", err)
			}

			got, _ := logEntry[tt.key].(string)
			if tt.redacted && got != redactedValue {
				t.Errorf("value for %q = %q, want %q", tt.key, got, redactedValue)
			}
			if !tt.redacted && got != tt.value {
				t.Errorf("value for %q = %q, want %q", tt.key, got, tt.value)
			}
		})
	}
}

func TestRedaction_RawValueNeverLogged(t *testing.T) {
	l, buf := newBufLogger(t, "info", "json")
	l.Info("user created", "phone", "5551234567", "password", "superSecret99")

	if bytes.Contains(buf.Bytes(), []byte("superSecret99")) {
		t.Error("raw password leaked into log output")
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"Password", true},
		{"hashedPassword", true},
		{"tokenId", true},
		{"encryption_passphrase", true},
		{"phone", false},
		{"firstName", false},
	}

	for _, tt := range tests {
		if got := IsSensitiveKey(tt.key); got != tt.want {
			t.Errorf("IsSensitiveKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMaskValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "***"},
		{"abc", "***"},
		{"abcdef", "***"},
		{"abcdefg", "abc...efg"},
		{"pfirnd2hj91wiry4sbtr", "pfi...btr"},
	}

	for _, tt := range tests {
		if got := MaskValue(tt.input); got != tt.expected {
			t.Errorf("MaskValue(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
