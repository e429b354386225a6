// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// NullString is a string that may be absent. The zero value is absent;
// Valid with an empty String is a present but empty value.
type NullString struct {
	String string
	Valid  bool
}

// Str returns a present NullString holding s.
func Str(s string) NullString {
	return NullString{String: s, Valid: true}
}

// Get returns the value and whether it is present.
func (n NullString) Get() (string, bool) {
	return n.String, n.Valid
}

// OrEmpty returns the value, or "" when absent.
func (n NullString) OrEmpty() string {
	if !n.Valid {
		return ""
	}
	return n.String
}
