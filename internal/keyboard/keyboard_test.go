package keyboard

import (
	"strings"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" ", "Space"},
		{"a", "A"},
		{"Z", "Z"},
		{";", ";"},
		{"Escape", "Esc"},
		{"Backspace", "Backspace"},
		{"Enter", "Enter"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMirrorPressAndExpire(t *testing.T) {
	m := NewMirror()
	now := time.Unix(0, 0)

	m.Press("a", now)
	m.Press(" ", now)
	if !m.Held("a") || !m.Held("A") {
		t.Fatalf("expected normalized key to be held")
	}
	if !m.Held("Space") {
		t.Fatalf("expected space to be held")
	}

	m.Expire(now.Add(100 * time.Millisecond))
	if !m.Held("A") {
		t.Fatalf("press expired before the hold TTL")
	}
	m.Expire(now.Add(300 * time.Millisecond))
	if m.Held("A") || m.Held("Space") {
		t.Fatalf("expected presses to expire after the hold TTL")
	}
}

func TestMirrorClear(t *testing.T) {
	m := NewMirror()
	m.Press("q", time.Unix(0, 0))
	m.Clear()
	if m.Held("Q") {
		t.Fatalf("expected empty mirror after clear")
	}
}

func TestViewContainsLayout(t *testing.T) {
	m := NewMirror()
	out := m.View()
	for _, key := range []string{"Q", "P", "A", "L", "Z", "M", "Space"} {
		if !strings.Contains(out, key) {
			t.Fatalf("expected %q in keyboard view", key)
		}
	}
}
