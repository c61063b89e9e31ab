// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output turns a diff result into summary strings and renders them as
// text, json or yaml, or renders an ASCII delta of the two documents.
package output
