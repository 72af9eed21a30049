package models

import (
	"strings"
	"testing"
)

func TestNewUserID(t *testing.T) {
	t.Run("uses the USR_ prefix without dashes", func(t *testing.T) {
		id := NewUserID()
		if !strings.HasPrefix(id, "USR_") {
			t.Fatalf("expected USR_ prefix, got %q", id)
		}
		if len(id) != len("USR_")+32 {
			t.Fatalf("expected 36-char id, got %q (%d chars)", id, len(id))
		}
		if strings.Contains(id, "-") {
			t.Fatalf("expected no dashes, got %q", id)
		}
	})

	t.Run("generates unique ids on each call", func(t *testing.T) {
		if NewUserID() == NewUserID() {
			t.Fatal("expected unique ids, got identical")
		}
	})
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"already@lower.com", "already@lower.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Fatalf("NormalizeEmail(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
