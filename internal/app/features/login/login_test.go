package login

import (
	"strings"
	"testing"
	"time"
)

func TestLockoutMessage_NoDeadline(t *testing.T) {
	got := lockoutMessage(nil)
	want := "Too many failed login attempts. Please try again later."
	if got != want {
		t.Errorf("lockoutMessage(nil) = %q, want %q", got, want)
	}
}

func TestLockoutMessage_Minutes(t *testing.T) {
	until := time.Now().Add(5 * time.Minute)
	got := lockoutMessage(&until)
	if !strings.Contains(got, "minute(s)") {
		t.Errorf("lockoutMessage = %q, want a minutes message", got)
	}
	if !strings.Contains(got, "Too many failed login attempts") {
		t.Errorf("lockoutMessage = %q", got)
	}
}

func TestLockoutMessage_Seconds(t *testing.T) {
	until := time.Now().Add(30 * time.Second)
	got := lockoutMessage(&until)
	if !strings.Contains(got, "second(s)") {
		t.Errorf("lockoutMessage = %q, want a seconds message", got)
	}
}
