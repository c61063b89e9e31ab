// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader reads a YAML manifest from a local file, stdin or an
// s3://bucket/key location and converts it to a document tree. Failures are
// reported as *Error values whose Kind is ErrNotFound or ErrParse.
package loader
