// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds small helpers shared by package tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ErrFakeWrite is returned by FailingWriter.
var ErrFakeWrite = errors.New("fake write failure")

// FailingWriter fails every Write with ErrFakeWrite and records the calls.
type FailingWriter struct {
	Calls int
}

func (f *FailingWriter) Write(p []byte) (int, error) {
	f.Calls++
	return 0, ErrFakeWrite
}

// ShortWriter accepts at most Limit bytes per call without reporting an error.
type ShortWriter struct {
	Limit int
}

func (s ShortWriter) Write(p []byte) (int, error) {
	if len(p) > s.Limit {
		return s.Limit, nil
	}
	return len(p), nil
}

// TempHome returns a fresh directory to be used as a home directory. The
// ssh directory below it does not exist yet.
func TempHome(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "home", "user")
}

// WriteFile writes content to path, failing the test on error.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
