// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for kdiff's optional
// user configuration. The configuration is a YAML document named by
// KDIFF_CFG_FILE or found in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/kdiff.yaml or $HOME/.config/kdiff.yaml
//   - macOS: $HOME/Library/Application Support/kdiff.yaml
//   - Windows: %APPDATA%/kdiff.yaml
//
// Flags read the same file through cli-altsrc; the getters here serve the
// settings that have no flag, such as colors and the cache cleaning window.
package config
