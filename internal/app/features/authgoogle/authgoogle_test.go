package authgoogle

import (
	"testing"

	"go.uber.org/zap"
)

func newAllowlistHandler(adminEmails string) *Handler {
	return NewHandler(nil, nil, nil, "client-id", "client-secret",
		"https://example.com", adminEmails, zap.NewNop())
}

func TestAllowed(t *testing.T) {
	h := newAllowlistHandler("admin@example.com, Second@Example.org ,, ")

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@example.com", true},
		{"ADMIN@EXAMPLE.COM", true},
		{"  admin@example.com  ", true},
		{"second@example.org", true},
		{"intruder@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := h.Allowed(tt.email); got != tt.want {
			t.Errorf("Allowed(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestAllowed_EmptyAllowlist(t *testing.T) {
	h := newAllowlistHandler("")
	if h.Allowed("anyone@example.com") {
		t.Error("an empty allowlist must reject every email")
	}
}

func TestGenerateState(t *testing.T) {
	a, err := generateState()
	if err != nil {
		t.Fatalf("generateState() error = %v", err)
	}
	b, err := generateState()
	if err != nil {
		t.Fatalf("generateState() error = %v", err)
	}
	if a == "" || a == b {
		t.Errorf("state tokens must be non-empty and unique: %q, %q", a, b)
	}
}
