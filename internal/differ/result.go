// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/tfctl/kdiff/internal/tree"
)

const (
	// MsgCurrentListEmpty marks a list that is empty in the current document.
	MsgCurrentListEmpty = "Current state list is empty"
	// MsgDesiredListEmpty marks a list that is empty in the desired document.
	MsgDesiredListEmpty = "Desired state list is empty"
)

// Record is a single reported difference. Removed records carry OldValue,
// Added records NewValue and Changed records both. The wholesale empty-list
// records carry a Message instead of values.
type Record struct {
	Path     string     `json:"path"`
	OldValue *tree.Node `json:"-"`
	NewValue *tree.Node `json:"-"`
	Message  string     `json:"message,omitempty"`
}

// Result is the flat, path-addressed change set. Each list is in traversal
// order.
type Result struct {
	Removed []Record
	Added   []Record
	Changed []Record
}

// Empty reports whether no differences were found.
func (r Result) Empty() bool {
	return r.Len() == 0
}

// Len returns the total number of records.
func (r Result) Len() int {
	return len(r.Removed) + len(r.Added) + len(r.Changed)
}

func (r *Result) merge(o Result) {
	r.Removed = append(r.Removed, o.Removed...)
	r.Added = append(r.Added, o.Added...)
	r.Changed = append(r.Changed, o.Changed...)
}

// childPath joins a mapping key onto a path prefix.
func childPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// elementPath appends a sequence element identity to a path prefix.
func elementPath(prefix, id string) string {
	return prefix + "[" + id + "]"
}

// Normalize replaces every element identity in path with "*" so that
// spec.containers[nginx].env becomes spec.containers[*].env. Identity-key
// tables and ignore lists are written against normalized paths.
func Normalize(path string) string {
	var b strings.Builder
	depth := 0
	for _, r := range path {
		switch {
		case r == '[':
			if depth == 0 {
				b.WriteString("[*")
			}
			depth++
		case r == ']' && depth > 0:
			depth--
			if depth == 0 {
				b.WriteByte(']')
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lastSegment returns the trailing mapping key of a normalized path.
func lastSegment(path string) string {
	path = strings.TrimSuffix(path, "[*]")
	if i := strings.LastIndexAny(path, ".]"); i >= 0 {
		return path[i+1:]
	}
	return path
}
