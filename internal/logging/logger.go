// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// DefaultLevel keeps the library quiet unless a caller asks for more.
const DefaultLevel = clog.WarnLevel

// L is the package-level logger used when no logger is injected.
var L = New(os.Stderr, DefaultLevel)

// New returns a logger writing to w at the given level, prefixed so records
// from this module are recognisable in a host application's output.
func New(w io.Writer, level clog.Level) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		Level:  level,
		Prefix: "knownhosts",
	})
}

// Or returns l, or the package logger when l is nil.
func Or(l *clog.Logger) *clog.Logger {
	if l == nil {
		return L
	}
	return l
}
