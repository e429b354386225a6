// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// KnownHost represents a trusted host and the fingerprint of its key.
// Either field may be absent; no validation is applied to the values.
type KnownHost struct {
	// HostName is the SSH host identifier.
	HostName NullString
	// Fingerprint is the textual key fingerprint, e.g.
	// "ssh-ed25519 255 <base64 digest>". It is opaque to this package.
	Fingerprint NullString
}

// NewKnownHost returns a KnownHost with both fields present.
func NewKnownHost(hostName, fingerprint string) KnownHost {
	return KnownHost{HostName: Str(hostName), Fingerprint: Str(fingerprint)}
}

// Equal reports whether h and o hold the same fields.
func (h KnownHost) Equal(o KnownHost) bool {
	return h == o
}

// String renders h as "name fingerprint" for logs, with <nil> in place of
// an absent field.
func (h KnownHost) String() string {
	name := "<nil>"
	if h.HostName.Valid {
		name = h.HostName.String
	}
	fp := "<nil>"
	if h.Fingerprint.Valid {
		fp = h.Fingerprint.String
	}
	return name + " " + fp
}

// EqualHosts reports whether a and b contain equal records in the same order.
// A nil slice equals an empty one.
func EqualHosts(a, b []KnownHost) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
