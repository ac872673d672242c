// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package radix

import (
	"fmt"
	"slices"
	"strings"
)

// edge connects a node to one child, labeled with the substring consumed
// when following it.
type edge struct {
	label string
	child *node
}

// edgeSet holds the outgoing edges of a node. Invariant: no two edges start
// with the same byte, so a single first-byte lookup selects the only
// candidate edge for any remaining key.
//
// The representation adapts to the edge count: an ordered list while small,
// a map keyed by each label's first byte once the count reaches the fanout
// switch threshold. The switch is re-evaluated on every mutation. The zero
// value is an empty set holding no allocation.
type edgeSet struct {
	list    []edge
	byFirst map[byte]edge
}

// get returns the edge whose label starts with c, if any.
func (e *edgeSet) get(c byte) (edge, bool) {
	if e.byFirst != nil {
		ed, ok := e.byFirst[c]
		return ed, ok
	}
	for _, ed := range e.list {
		if ed.label[0] == c {
			return ed, true
		}
	}
	return edge{}, false
}

// set inserts the given edge, replacing any existing edge sharing the
// label's first byte. Growing to the threshold promotes the list to a map.
func (e *edgeSet) set(label string, child *node, fanoutSwitch int) {
	c := label[0]
	if e.byFirst != nil {
		e.byFirst[c] = edge{label, child}
		return
	}
	for i, ed := range e.list {
		if ed.label[0] == c {
			e.list[i] = edge{label, child}
			return
		}
	}
	e.list = append(e.list, edge{label, child})
	if len(e.list) >= fanoutSwitch {
		byFirst := make(map[byte]edge, len(e.list))
		for _, ed := range e.list {
			if _, taken := byFirst[ed.label[0]]; taken {
				panic(fmt.Sprintf("radix: edge set holds two edges starting with %q", ed.label[0]))
			}
			byFirst[ed.label[0]] = ed
		}
		e.list, e.byFirst = nil, byFirst
	}
}

// remove deletes the edge starting with c and reports whether one existed.
// Shrinking below the threshold demotes the map back to a list.
func (e *edgeSet) remove(c byte, fanoutSwitch int) bool {
	if e.byFirst != nil {
		if _, ok := e.byFirst[c]; !ok {
			return false
		}
		delete(e.byFirst, c)
		if len(e.byFirst) <= fanoutSwitch-2 {
			list := make([]edge, 0, len(e.byFirst))
			for _, ed := range e.byFirst {
				list = append(list, ed)
			}
			e.list, e.byFirst = list, nil
		}
		return true
	}
	for i, ed := range e.list {
		if ed.label[0] == c {
			e.list = slices.Delete(e.list, i, i+1)
			if len(e.list) == 0 {
				e.list = nil
			}
			return true
		}
	}
	return false
}

// degree returns the number of outgoing edges.
func (e *edgeSet) degree() int {
	if e.byFirst != nil {
		return len(e.byFirst)
	}
	return len(e.list)
}

// only returns the single outgoing edge if the degree is exactly one.
func (e *edgeSet) only() (edge, bool) {
	if e.byFirst != nil {
		if len(e.byFirst) != 1 {
			return edge{}, false
		}
		for _, ed := range e.byFirst {
			return ed, true
		}
	}
	if len(e.list) == 1 {
		return e.list[0], true
	}
	return edge{}, false
}

// each calls fn for every outgoing edge, in container order.
func (e *edgeSet) each(fn func(edge)) {
	if e.byFirst != nil {
		for _, ed := range e.byFirst {
			fn(ed)
		}
		return
	}
	for _, ed := range e.list {
		fn(ed)
	}
}

// sorted returns all outgoing edges ordered by label. Since no two labels
// share a first byte, this is also the order of their first bytes.
func (e *edgeSet) sorted() []edge {
	edges := make([]edge, 0, e.degree())
	e.each(func(ed edge) {
		edges = append(edges, ed)
	})
	slices.SortFunc(edges, func(a, b edge) int {
		return strings.Compare(a.label, b.label)
	})
	return edges
}
