// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
package sshkey

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/toeirei/knownhostsxml/core/model"
	"golang.org/x/crypto/ssh"
)

// ed25519Bits is the conventional size reported for ed25519 keys.
const ed25519Bits = 255

// KeyBits returns the size of key in bits: the modulus length for RSA, the
// curve size for ECDSA and 255 for ed25519. Unknown key types report 0.
func KeyBits(key ssh.PublicKey) int {
	if cert, ok := key.(*ssh.Certificate); ok {
		key = cert.Key
	}
	ck, ok := key.(ssh.CryptoPublicKey)
	if !ok {
		return 0
	}
	switch pub := ck.CryptoPublicKey().(type) {
	case *rsa.PublicKey:
		return pub.N.BitLen()
	case *ecdsa.PublicKey:
		return pub.Curve.Params().BitSize
	case ed25519.PublicKey:
		return ed25519Bits
	default:
		return 0
	}
}

// Fingerprint returns the record fingerprint of key:
// "<key type> <bits> <base64 SHA-256 of the wire-format key>".
func Fingerprint(key ssh.PublicKey) string {
	sum := sha256.Sum256(key.Marshal())
	return fmt.Sprintf("%s %d %s", key.Type(), KeyBits(key), base64.StdEncoding.EncodeToString(sum[:]))
}

// NewKnownHost returns the record for host presenting key.
func NewKnownHost(host string, key ssh.PublicKey) model.KnownHost {
	return model.NewKnownHost(host, Fingerprint(key))
}

// FromAuthorizedKey parses an authorized_keys style line ("ssh-ed25519
// AAAA... comment") and returns the record for host.
func FromAuthorizedKey(host, line string) (model.KnownHost, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.KnownHost{}, fmt.Errorf("empty public key line")
	}
	key, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
	if err != nil {
		return model.KnownHost{}, fmt.Errorf("failed to parse public key for %s: %w", host, err)
	}
	return NewKnownHost(host, key), nil
}
