// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tree holds the in-memory form of a structured document: a tagged
// variant of scalars, ordered mappings and sequences.
package tree
