// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "testing"

func TestNullString(t *testing.T) {
	var absent NullString
	if v, ok := absent.Get(); ok || v != "" {
		t.Fatalf("zero NullString: got (%q, %v), want (\"\", false)", v, ok)
	}
	empty := Str("")
	if _, ok := empty.Get(); !ok {
		t.Fatalf("Str(\"\") should be present")
	}
	if absent == empty {
		t.Fatalf("absent and present-empty must differ")
	}
	if got := Str("nuko").OrEmpty(); got != "nuko" {
		t.Fatalf("OrEmpty: got %q, want %q", got, "nuko")
	}
	if got := absent.OrEmpty(); got != "" {
		t.Fatalf("OrEmpty on absent: got %q", got)
	}
}

func TestKnownHostEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b KnownHost
		want bool
	}{
		{"identical", NewKnownHost("nuko", "ssh-ed25519 255 x="), NewKnownHost("nuko", "ssh-ed25519 255 x="), true},
		{"different fingerprint", NewKnownHost("nuko", "a"), NewKnownHost("nuko", "b"), false},
		{"absent vs empty name", KnownHost{Fingerprint: Str("a")}, KnownHost{HostName: Str(""), Fingerprint: Str("a")}, false},
		{"both zero", KnownHost{}, KnownHost{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualHosts(t *testing.T) {
	a := []KnownHost{NewKnownHost("nuko", "1"), NewKnownHost("cat", "2")}
	b := []KnownHost{NewKnownHost("nuko", "1"), NewKnownHost("cat", "2")}
	if !EqualHosts(a, b) {
		t.Fatalf("expected equal slices")
	}
	if EqualHosts(a, []KnownHost{b[1], b[0]}) {
		t.Fatalf("order must matter")
	}
	if !EqualHosts(nil, []KnownHost{}) {
		t.Fatalf("nil and empty should be equal")
	}
}

func TestKnownHostString(t *testing.T) {
	if got := (KnownHost{HostName: Str("cat")}).String(); got != "cat <nil>" {
		t.Fatalf("String: got %q", got)
	}
}
