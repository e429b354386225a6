// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
// Package sshkey builds known host records from SSH public keys. It only
// produces fingerprints; comparing them against a presented key is left to
// the caller.
package sshkey
