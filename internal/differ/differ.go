// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/apex/log"

	"github.com/tfctl/kdiff/internal/tree"
)

// Differ compares two document trees. The zero value is not usable; build one
// with New. A Differ holds no per-comparison state and never mutates the
// trees it is given.
type Differ struct {
	log      log.Interface
	selector KeySelector
	identity map[string]string
	ignored  []string
}

// Option customizes a Differ.
type Option func(*Differ)

// WithLogger sets the logger receiving the per-key debug events. Defaults to
// the apex process logger.
func WithLogger(l log.Interface) Option {
	return func(d *Differ) {
		if l != nil {
			d.log = l
		}
	}
}

// WithKeySelector replaces the fallback identity key selection used for lists
// without an explicit identity key.
func WithKeySelector(ks KeySelector) Option {
	return func(d *Differ) {
		if ks != nil {
			d.selector = ks
		}
	}
}

// WithIdentityKeys sets explicit identity keys. Table keys are normalized list
// paths (spec.template.spec.containers[*].ports) or bare list names (env).
func WithIdentityKeys(table map[string]string) Option {
	return func(d *Differ) {
		for path, key := range table {
			d.identity[Normalize(path)] = key
		}
	}
}

// WithIgnoredPaths excludes paths, and everything beneath them, from the
// comparison. Paths may name a concrete element (containers[nginx]) or use the
// normalized form (containers[*].image).
func WithIgnoredPaths(paths []string) Option {
	return func(d *Differ) {
		for _, p := range paths {
			if p = strings.TrimSpace(p); p != "" {
				d.ignored = append(d.ignored, p)
			}
		}
	}
}

// New returns a Differ configured by opts.
func New(opts ...Option) *Differ {
	d := &Differ{
		log:      log.Log,
		selector: DefaultKeySelector,
		identity: map[string]string{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diff compares the current document against the desired one. Both are
// expected to be mappings; a nil document is treated as an empty mapping.
func (d *Differ) Diff(current, desired *tree.Node) Result {
	if current == nil {
		current = tree.Mapping()
	}
	if desired == nil {
		desired = tree.Mapping()
	}

	if current.IsMapping() && desired.IsMapping() {
		return d.diffMappings(current, desired, "")
	}

	var res Result
	d.compare(&res, current, desired, "")
	return res
}

// diffMappings walks the current keys, then the keys only the desired
// mapping has. A new mapping-valued key is decomposed into one added record
// per leaf; new scalars and sequences are added as a single record.
func (d *Differ) diffMappings(current, desired *tree.Node, path string) Result {
	var res Result

	d.log.WithField("path", path).Debugf("comparing mappings: current=%d keys desired=%d keys", current.Len(), desired.Len())

	for _, key := range current.Keys {
		kp := childPath(path, key)
		if d.isIgnored(kp) {
			d.log.Debugf("key '%s' ignored at path: %s", key, kp)
			continue
		}
		d.log.Debugf("processing key '%s' with path '%s'", key, kp)

		cv := current.Fields[key]
		dv, ok := desired.Get(key)
		if !ok {
			d.log.Debugf("key '%s' removed. Path: %s", key, kp)
			res.Removed = append(res.Removed, Record{Path: kp, OldValue: cv})
			continue
		}
		d.compare(&res, cv, dv, kp)
	}

	for _, key := range desired.Keys {
		if current.Has(key) {
			continue
		}
		kp := childPath(path, key)
		if d.isIgnored(kp) {
			d.log.Debugf("key '%s' ignored at path: %s", key, kp)
			continue
		}
		d.log.Debugf("key '%s' added. Path: %s", key, kp)

		dv := desired.Fields[key]
		if dv.IsMapping() && dv.Len() > 0 {
			sub := d.diffMappings(tree.Mapping(), dv, kp)
			res.Added = append(res.Added, sub.Added...)
			continue
		}
		res.Added = append(res.Added, Record{Path: kp, NewValue: dv})
	}

	return res
}

// compare dispatches on the kinds of two values present on both sides.
func (d *Differ) compare(res *Result, cv, dv *tree.Node, path string) {
	switch {
	case cv.IsMapping() && dv.IsMapping():
		res.merge(d.diffMappings(cv, dv, path))
	case cv.IsSequence() && dv.IsSequence():
		res.merge(d.diffSequences(cv, dv, path))
	case !tree.Equal(cv, dv):
		d.log.Debugf("value changed at path: %s", path)
		res.Changed = append(res.Changed, Record{Path: path, OldValue: cv, NewValue: dv})
	}
}

// diffSequences matches list elements by identity rather than position, so
// reordering is not reported. Elements only in current are removed, elements
// only in desired are added, and elements on both sides that differ are
// compared field by field.
func (d *Differ) diffSequences(current, desired *tree.Node, path string) Result {
	var res Result

	if tree.Equal(current, desired) {
		return res
	}

	if current.Len() == 0 {
		res.Removed = append(res.Removed, Record{Path: path, Message: MsgCurrentListEmpty})
		return res
	}
	if desired.Len() == 0 {
		res.Added = append(res.Added, Record{Path: path, Message: MsgDesiredListEmpty})
		return res
	}

	// Lists of scalars, or of mixed kinds, have no identity to match on.
	if !allMappings(current) || !allMappings(desired) {
		d.log.Debugf("list of non-mappings changed at path: %s", path)
		res.Changed = append(res.Changed, Record{Path: path, OldValue: current, NewValue: desired})
		return res
	}

	key := d.identityKey(path, current.Items[0])
	d.log.WithField("path", path).Debugf("matching list elements by '%s'", key)

	cur := identify(current, key)
	des := identify(desired, key)

	for _, id := range cur.order {
		if _, ok := des.byID[id]; ok {
			continue
		}
		ep := elementPath(path, id.String())
		if d.isIgnored(ep) {
			continue
		}
		res.Removed = append(res.Removed, Record{Path: ep, OldValue: cur.byID[id]})
	}

	for _, id := range des.order {
		if _, ok := cur.byID[id]; ok {
			continue
		}
		ep := elementPath(path, id.String())
		if d.isIgnored(ep) {
			continue
		}
		res.Added = append(res.Added, Record{Path: ep, NewValue: des.byID[id]})
	}

	for _, id := range cur.order {
		dv, ok := des.byID[id]
		if !ok {
			continue
		}
		cv := cur.byID[id]
		ep := elementPath(path, id.String())
		if d.isIgnored(ep) || tree.Equal(cv, dv) {
			continue
		}
		res.merge(d.diffMappings(cv, dv, ep))
	}

	return res
}

// CheckMismatches reports, per field, whether the top-level field differs
// between the two documents. A field present on only one side is a mismatch.
// It is independent of Diff and does not affect its output.
func (d *Differ) CheckMismatches(current, desired *tree.Node, fields []string) map[string]bool {
	mismatches := make(map[string]bool, len(fields))

	for _, field := range fields {
		cv, cok := current.Get(field)
		dv, dok := desired.Get(field)

		mismatch := cok != dok || !tree.Equal(cv, dv)
		if mismatch {
			d.log.Warnf("'%s' mismatch. Current: %s, Desired: %s", field, display(cv, cok), display(dv, dok))
		}
		mismatches[field] = mismatch
	}

	return mismatches
}

func (d *Differ) isIgnored(path string) bool {
	if len(d.ignored) == 0 {
		return false
	}
	normalized := Normalize(path)
	for _, p := range d.ignored {
		if under(path, p) || under(normalized, p) {
			return true
		}
	}
	return false
}

// under reports whether path is p or lies beneath it.
func under(path, p string) bool {
	return path == p || strings.HasPrefix(path, p+".") || strings.HasPrefix(path, p+"[")
}

func allMappings(seq *tree.Node) bool {
	for _, item := range seq.Items {
		if !item.IsMapping() {
			return false
		}
	}
	return true
}

func display(n *tree.Node, ok bool) string {
	if !ok {
		return "<absent>"
	}
	return n.String()
}
