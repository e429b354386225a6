// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
// Package config loads and persists the settings used to build a
// knownhosts.File. It uses Viper for file parsing and goccy/go-yaml for
// writing. Environment variables are deliberately not consulted: the
// location of the known hosts file only changes through a config file or
// explicit options.
package config
