// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	clog "github.com/charmbracelet/log"
	cfg "github.com/toeirei/knownhostsxml/config"
	"github.com/toeirei/knownhostsxml/core/knownhosts"
)

func TestLoad_ReadsExplicitFile(t *testing.T) {
	tmp := t.TempDir()
	yaml := "home: /home/nuko\nfile_name: hosts.xml\nlog_level: debug\nno_lock: true\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write cfg: %v", err)
	}

	c, err := cfg.Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := cfg.Config{Home: "/home/nuko", FileName: "hosts.xml", LogLevel: "debug", NoLock: true}
	if c != want {
		t.Fatalf("Load: got %+v, want %+v", c, want)
	}
}

func TestLoad_ExplicitFileErrors(t *testing.T) {
	tmp := t.TempDir()
	if _, err := cfg.Load(filepath.Join(tmp, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}

	bad := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(bad, []byte("home: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	if _, err := cfg.Load(bad); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
}

func TestLoad_DefaultsWhenNothingFound(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("user config dir is redirected through XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := cfg.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FileName != knownhosts.DefaultFileName || c.LogLevel != "warn" || c.Home != "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestWriteThenLoad_UserConfigPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("user config dir is redirected through XDG_CONFIG_HOME")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	c := cfg.Config{Directory: "/srv/ssh", FileName: "fleet.xml", LogLevel: "info"}
	if err := cfg.Write("", &c); err != nil {
		t.Fatalf("Write: %v", err)
	}
	path, err := cfg.GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	if path != filepath.Join(tmp, "knownhostsxml", "knownhostsxml.yaml") {
		t.Fatalf("unexpected config path %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("config file mode: got %v, want 0600", info.Mode().Perm())
	}

	got, err := cfg.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != c {
		t.Fatalf("Load: got %+v, want %+v", got, c)
	}
}

func TestOptions(t *testing.T) {
	c := cfg.Config{Home: "/home/cat", FileName: "x.xml", LogLevel: "debug", NoLock: true}
	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Home != "/home/cat" || opts.FileName != "x.xml" || !opts.NoLock {
		t.Fatalf("Options: got %+v", opts)
	}
	if opts.Logger == nil || opts.Logger.GetLevel() != clog.DebugLevel {
		t.Fatalf("Options: logger not at debug level")
	}

	if _, err := (cfg.Config{LogLevel: "shouty"}).Options(); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}

func TestNewFile(t *testing.T) {
	home := t.TempDir()
	f, err := cfg.Config{Home: home, FileName: "hosts.xml"}.NewFile()
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	path, err := f.Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if want := filepath.Join(home, ".ssh", "hosts.xml"); path != want {
		t.Fatalf("Path: got %q, want %q", path, want)
	}

	if _, err := (cfg.Config{LogLevel: "nope"}).NewFile(); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}
