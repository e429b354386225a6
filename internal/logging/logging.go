// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the module's shared charmbracelet logger.
package logging

import clog "github.com/charmbracelet/log"

// ParseLevel parses a level name such as "debug" or "warn". An empty name
// yields DefaultLevel.
func ParseLevel(name string) (clog.Level, error) {
	if name == "" {
		return DefaultLevel, nil
	}
	return clog.ParseLevel(name)
}
