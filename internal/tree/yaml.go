// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

const mergeKey = "<<"

// ErrExcessiveAliasing is returned when aliases expand a document far beyond
// its written size.
var ErrExcessiveAliasing = errors.New("document contains excessive aliasing")

// FromYAML converts a parsed YAML node into a document tree. Mapping key order
// is taken from the document. Aliases share the tree converted for their
// anchor and << merge keys are flattened with explicit keys taking precedence.
func FromYAML(n *yaml.Node) (*Node, error) {
	c := converter{
		active:  map[*yaml.Node]bool{},
		anchors: map[*yaml.Node]anchored{},
	}
	return c.convert(n)
}

type converter struct {
	// active tracks the aliases being expanded so a self-referencing anchor
	// fails instead of recursing forever.
	active map[*yaml.Node]bool

	// anchors holds each converted anchor target with the number of nodes it
	// expands to.
	anchors map[*yaml.Node]anchored

	// decoded counts the nodes of the expanded document, aliased the share of
	// them reached through an alias.
	decoded    int
	aliased    int
	aliasDepth int
}

type anchored struct {
	node *Node
	size int
}

// allowedAliasRatio is the share of expanded nodes that may come from
// aliases. Larger documents get a smaller share.
func allowedAliasRatio(decoded int) float64 {
	switch {
	case decoded <= 400000:
		return 0.99
	case decoded >= 4000000:
		return 0.10
	default:
		return 0.10 + 0.89*(1-float64(decoded-400000)/3600000)
	}
}

// count adds n expanded nodes and fails once aliases dominate the document.
func (c *converter) count(n int, viaAlias bool) error {
	c.decoded += n
	if viaAlias {
		c.aliased += n
	}
	if c.aliased > 100 && c.decoded > 1000 && float64(c.aliased)/float64(c.decoded) > allowedAliasRatio(c.decoded) {
		return ErrExcessiveAliasing
	}
	return nil
}

func (c *converter) convert(n *yaml.Node) (*Node, error) {
	// A zero node is what yaml.Unmarshal leaves behind for empty input.
	if n == nil || n.Kind == 0 {
		return Null(), nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		return c.alias(n)
	}

	start := c.decoded
	if err := c.count(1, c.aliasDepth > 0); err != nil {
		return nil, err
	}

	v, err := c.node(n)
	if err != nil {
		return nil, err
	}
	if n.Anchor != "" {
		c.anchors[n] = anchored{node: v, size: c.decoded - start}
	}
	return v, nil
}

func (c *converter) alias(n *yaml.Node) (*Node, error) {
	if c.active[n] {
		return nil, fmt.Errorf("line %d: recursive alias *%s", n.Line, n.Value)
	}

	// Trees are never modified after conversion, so every alias of an anchor
	// can point at the same nodes.
	if a, ok := c.anchors[n.Alias]; ok {
		if err := c.count(a.size, true); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return a.node, nil
	}

	c.active[n] = true
	c.aliasDepth++
	defer func() {
		delete(c.active, n)
		c.aliasDepth--
	}()
	return c.convert(n.Alias)
}

func (c *converter) node(n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return c.mapping(n)
	case yaml.SequenceNode:
		seq := Sequence()
		for _, item := range n.Content {
			v, err := c.convert(item)
			if err != nil {
				return nil, err
			}
			seq.Items = append(seq.Items, v)
		}
		return seq, nil
	case yaml.ScalarNode:
		return scalar(n)
	}

	return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
}

func (c *converter) mapping(n *yaml.Node) (*Node, error) {
	m := Mapping()

	// Merged keys come first so explicit keys override their values.
	for i := 0; i+1 < len(n.Content); i += 2 {
		if isMergeKey(n.Content[i]) {
			if err := c.merge(m, n.Content[i+1]); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if isMergeKey(kn) {
			continue
		}
		key, err := c.key(kn)
		if err != nil {
			return nil, err
		}
		v, err := c.convert(vn)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}

	return m, nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == mergeKey && n.ShortTag() == "!!merge"
}

func (c *converter) merge(into *Node, src *yaml.Node) error {
	v, err := c.convert(src)
	if err != nil {
		return err
	}

	var sources []*Node
	switch v.Kind {
	case MappingKind:
		sources = []*Node{v}
	case SequenceKind:
		sources = v.Items
	}
	if len(sources) == 0 {
		return fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", src.Line)
	}

	// Earlier sources win over later ones.
	for _, s := range sources {
		if !s.IsMapping() {
			return fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", src.Line)
		}
		for _, k := range s.Keys {
			if !into.Has(k) {
				into.Set(k, s.Fields[k])
			}
		}
	}
	return nil
}

func (c *converter) key(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: mapping keys must be scalars", n.Line)
	}
	if n.ShortTag() == "!!null" {
		return "null", nil
	}
	return n.Value, nil
}

func scalar(n *yaml.Node) (*Node, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}

	switch t := v.(type) {
	case nil, string, bool, int, float64:
		return Scalar(t), nil
	case int64:
		if t >= math.MinInt && t <= math.MaxInt {
			return Scalar(int(t)), nil
		}
		return Scalar(t), nil
	case uint64:
		return Scalar(t), nil
	}

	// Anything else (timestamps, binary) is kept in its textual form.
	return Scalar(n.Value), nil
}
