// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes the structural difference between two document
// trees as a flat list of removed, added and changed records, each addressed
// by a dotted path such as spec.template.spec.containers[nginx].image.
//
// Mappings are compared key by key. Lists of mappings are matched by an
// identity field rather than by position, so reordering a list is not a
// change. A mapping that exists only in the desired document is reported as
// one added record per leaf, while a scalar or list that exists only in the
// desired document is reported as a single record.
package differ
