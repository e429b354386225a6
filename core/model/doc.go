// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the known-host record shared by the codec, the file
// accessor and the ssh helpers. The types are plain comparable values so they
// can be copied, compared with == and used as map keys.
package model
