// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.

package testutil

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"golang.org/x/crypto/ssh"
)

// Ed25519Key returns a deterministic ed25519 public key derived from seed.
func Ed25519Key(t testing.TB, seed byte) ssh.PublicKey {
	t.Helper()
	s := make([]byte, ed25519.SeedSize)
	for i := range s {
		s[i] = seed
	}
	priv := ed25519.NewKeyFromSeed(s)
	pub, err := ssh.NewPublicKey(priv.Public())
	if err != nil {
		t.Fatalf("ed25519 public key: %v", err)
	}
	return pub
}

// RSAKey returns a freshly generated RSA public key of the given size.
func RSAKey(t testing.TB, bits int) ssh.PublicKey {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	pub, err := ssh.NewPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatalf("rsa public key: %v", err)
	}
	return pub
}

// ECDSAKey returns a freshly generated ECDSA public key on curve.
func ECDSAKey(t testing.TB, curve elliptic.Curve) ssh.PublicKey {
	t.Helper()
	priv, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		t.Fatalf("generate ecdsa key: %v", err)
	}
	pub, err := ssh.NewPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatalf("ecdsa public key: %v", err)
	}
	return pub
}
