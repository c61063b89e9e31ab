// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the kdiff root command. It wires flags, validators
// and the action that loads two manifests, diffs them and renders the result.
package command
