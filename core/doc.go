// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
// Package core exposes package-level facades for reading and writing the
// XML known hosts file. The facades delegate to a default
// knownhosts.File which resolves $HOME/.ssh/known_hosts.xml; applications
// that load a configuration at startup install their own File with
// SetDefaultFile, and tests can do the same with a temporary home.
package core
