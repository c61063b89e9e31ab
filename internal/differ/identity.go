// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strconv"

	"github.com/tfctl/kdiff/internal/tree"
)

// IdentityField is the field preferred as a list element identity.
const IdentityField = "name"

// KeySelector picks the field that identifies elements of the list at path.
// first is the first element of the current list and is always a mapping. An
// empty result makes every element positional.
type KeySelector func(path string, first *tree.Node) string

// DefaultKeySelector uses "name" when the first element has it and otherwise
// the first key of that element.
func DefaultKeySelector(_ string, first *tree.Node) string {
	if first.Has(IdentityField) {
		return IdentityField
	}
	if first.Len() > 0 {
		return first.Keys[0]
	}
	return ""
}

// identityKey resolves the identity key for the list at path. An explicit
// table entry for the normalized path wins, then one for the bare list name,
// then the selector.
func (d *Differ) identityKey(path string, first *tree.Node) string {
	normalized := Normalize(path)
	if key, ok := d.identity[normalized]; ok {
		return key
	}
	if key, ok := d.identity[lastSegment(normalized)]; ok {
		return key
	}
	return d.selector(path, first)
}

// elementID identifies a list element. Positional ids and occurrence counts
// are kept apart from the key value so they never match a real key value
// that happens to look like "#1" or "nginx#2".
type elementID struct {
	value      string
	positional bool
	occurrence int
}

// String renders the id used in paths: the key value, "#<index>" for
// positional elements and a "#<n>" suffix for repeated values.
func (id elementID) String() string {
	s := id.value
	if id.positional {
		s = "#" + s
	}
	if id.occurrence > 1 {
		s += "#" + strconv.Itoa(id.occurrence)
	}
	return s
}

// keyed is a list indexed by element identity, in list order.
type keyed struct {
	order []elementID
	byID  map[elementID]*tree.Node
}

// identify indexes seq by the value of key. Elements without the key are
// identified by their position. Repeated identities are numbered by
// occurrence so no element is silently dropped.
func identify(seq *tree.Node, key string) keyed {
	k := keyed{byID: make(map[elementID]*tree.Node, seq.Len())}
	seen := map[elementID]int{}

	for i, item := range seq.Items {
		var id elementID
		if v, ok := item.Get(key); ok && key != "" {
			id.value = v.String()
		} else {
			id.value = strconv.Itoa(i)
			id.positional = true
		}

		seen[id]++
		id.occurrence = seen[id]

		k.order = append(k.order, id)
		k.byID[id] = item
	}

	return k
}
