// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which variant of the document tree a Node holds.
type Kind int

const (
	ScalarKind Kind = iota
	MappingKind
	SequenceKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	}
	return "<unknown kind>"
}

// Node is a single value of a document tree.
//
// Only the fields matching Kind are meaningful:
//   - ScalarKind: Value holds a string, int, float64, bool or nil.
//   - MappingKind: Keys holds the key order, Fields the children by key.
//   - SequenceKind: Items holds the elements in document order.
type Node struct {
	Kind   Kind
	Value  any
	Keys   []string
	Fields map[string]*Node
	Items  []*Node
}

// Scalar returns a scalar node wrapping v.
func Scalar(v any) *Node {
	return &Node{Kind: ScalarKind, Value: v}
}

// Null returns a null scalar.
func Null() *Node {
	return Scalar(nil)
}

// Mapping returns an empty mapping.
func Mapping() *Node {
	return &Node{Kind: MappingKind, Fields: map[string]*Node{}}
}

// Sequence returns a sequence holding items.
func Sequence(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{Kind: SequenceKind, Items: items}
}

// Set stores value under key. A new key is appended to the key order, an
// existing key keeps its position. Set returns the receiver so mappings can be
// built inline.
func (n *Node) Set(key string, value *Node) *Node {
	if n.Fields == nil {
		n.Fields = map[string]*Node{}
	}
	if _, ok := n.Fields[key]; !ok {
		n.Keys = append(n.Keys, key)
	}
	n.Fields[key] = value
	return n
}

// Get returns the child stored under key. It is always false for non-mappings.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != MappingKind {
		return nil, false
	}
	v, ok := n.Fields[key]
	return v, ok
}

// Has reports whether a mapping holds key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Len returns the number of keys or items. Scalars have length zero.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case MappingKind:
		return len(n.Keys)
	case SequenceKind:
		return len(n.Items)
	}
	return 0
}

func (n *Node) IsMapping() bool  { return n != nil && n.Kind == MappingKind }
func (n *Node) IsSequence() bool { return n != nil && n.Kind == SequenceKind }
func (n *Node) IsScalar() bool   { return n == nil || n.Kind == ScalarKind }

// Equal reports deep structural equality. Mapping key order is irrelevant and
// numbers compare by value, so 1 and 1.0 are equal. A nil node is a null.
func Equal(a, b *Node) bool {
	if a == nil {
		a = Null()
	}
	if b == nil {
		b = Null()
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case MappingKind:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for _, k := range a.Keys {
			bv, ok := b.Fields[k]
			if !ok || !Equal(a.Fields[k], bv) {
				return false
			}
		}
		return true
	case SequenceKind:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	default:
		return scalarEqual(a.Value, b.Value)
	}
}

func scalarEqual(a, b any) bool {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum || bNum {
		return aNum && bNum && af == bf
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Interface converts the node to plain Go values: map[string]any, []any or
// the scalar value.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case MappingKind:
		m := make(map[string]any, len(n.Keys))
		for _, k := range n.Keys {
			m[k] = n.Fields[k].Interface()
		}
		return m
	case SequenceKind:
		s := make([]any, len(n.Items))
		for i, item := range n.Items {
			s[i] = item.Interface()
		}
		return s
	}
	return n.Value
}

// String renders scalars plainly and composites as compact JSON that keeps the
// document key order.
func (n *Node) String() string {
	if n.IsScalar() {
		if n == nil {
			return "null"
		}
		return scalarString(n.Value)
	}
	var buf bytes.Buffer
	writeJSON(&buf, n)
	return buf.String()
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return "null"
	case string:
		return s
	case float64:
		if math.IsInf(s, 0) || math.IsNaN(s) {
			return fmt.Sprint(s)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func writeJSON(buf *bytes.Buffer, n *Node) {
	switch {
	case n.IsMapping():
		buf.WriteByte('{')
		for i, k := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			writeJSON(buf, n.Fields[k])
		}
		buf.WriteByte('}')
	case n.IsSequence():
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSON(buf, item)
		}
		buf.WriteByte(']')
	default:
		var v any
		if n != nil {
			v = n.Value
		}
		b, err := json.Marshal(v)
		if err != nil {
			// NaN and Inf have no JSON form.
			b, _ = json.Marshal(scalarString(v))
		}
		buf.Write(b)
	}
}
