// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"io"
	"sync"

	"github.com/toeirei/knownhostsxml/core/knownhosts"
	"github.com/toeirei/knownhostsxml/core/model"
)

var (
	defaultMu   sync.RWMutex
	defaultFile *knownhosts.File
)

// SetDefaultFile installs f as the accessor used by the facades. Passing nil
// restores knownhosts.Default.
func SetDefaultFile(f *knownhosts.File) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFile = f
}

// DefaultFile returns the accessor used by the facades.
func DefaultFile() *knownhosts.File {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultFile == nil {
		return knownhosts.Default()
	}
	return defaultFile
}

// ReadDefault reads the records from the default known hosts file.
func ReadDefault() ([]model.KnownHost, error) {
	return DefaultFile().ReadDefault()
}

// Read reads the records stored at path.
func Read(path string) ([]model.KnownHost, error) {
	return DefaultFile().Read(path)
}

// WriteDefault replaces the default known hosts file with hosts, creating
// the ssh directory when it is missing.
func WriteDefault(hosts []model.KnownHost, indent bool) error {
	return DefaultFile().WriteDefault(hosts, indent)
}

// Write replaces the file at path with hosts.
func Write(path string, hosts []model.KnownHost, indent bool) error {
	return DefaultFile().Write(path, hosts, indent)
}

// WriteTo encodes hosts onto w without touching any file.
func WriteTo(w io.Writer, hosts []model.KnownHost, indent bool) error {
	return DefaultFile().WriteTo(w, hosts, indent)
}
