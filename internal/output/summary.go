// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/tfctl/kdiff/internal/differ"
	"github.com/tfctl/kdiff/internal/tree"
)

// Summary is the human-readable form of a diff result. Empty sections are
// omitted when marshaled.
type Summary struct {
	Removed []string `json:"removed,omitempty" yaml:"removed,omitempty"`
	Added   []string `json:"added,omitempty" yaml:"added,omitempty"`
	Changed []string `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// Empty reports whether the summary has no entries.
func (s Summary) Empty() bool {
	return len(s.Removed) == 0 && len(s.Added) == 0 && len(s.Changed) == 0
}

// Summarize renders each record as a "path: value" string. Removed and added
// values are dumped as YAML; changed records read
// "path: old value: X, new value: Y".
func Summarize(res differ.Result) Summary {
	var s Summary

	for _, r := range res.Removed {
		s.Removed = append(s.Removed, r.Path+": "+recordValue(r, r.OldValue))
	}
	for _, r := range res.Added {
		s.Added = append(s.Added, r.Path+": "+recordValue(r, r.NewValue))
	}
	for _, r := range res.Changed {
		s.Changed = append(s.Changed, fmt.Sprintf("%s: old value: %s, new value: %s", r.Path, r.OldValue.String(), r.NewValue.String()))
	}

	return s
}

func recordValue(r differ.Record, v *tree.Node) string {
	if r.Message != "" {
		return r.Message
	}
	return dumpYAML(v)
}

// dumpYAML renders a value as block YAML with mapping keys in document order.
func dumpYAML(n *tree.Node) string {
	b, err := yaml.Marshal(toYAML(n))
	if err != nil {
		return n.String()
	}
	return strings.TrimSpace(string(b))
}

// toYAML converts a tree to yaml.v2 values, using MapSlice so that key order
// survives marshaling.
func toYAML(n *tree.Node) interface{} {
	switch {
	case n.IsMapping():
		ms := make(yaml.MapSlice, 0, n.Len())
		for _, k := range n.Keys {
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAML(n.Fields[k])})
		}
		return ms
	case n.IsSequence():
		items := make([]interface{}, 0, n.Len())
		for _, item := range n.Items {
			items = append(items, toYAML(item))
		}
		return items
	case n == nil:
		return nil
	}
	return n.Value
}
