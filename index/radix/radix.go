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
	"iter"

	"github.com/triebench/triebench/index"
)

// defaultFanoutSwitch is the edge count at which a node's edge container is
// promoted from an ordered list to a first-byte map.
const defaultFanoutSwitch = 8

// node is a single radix-trie node. The zero value is a non-terminal leaf
// holding no edge container allocation.
type node struct {
	edges    edgeSet
	terminal bool
}

// Config configures a Trie instance.
type Config struct {
	// Normalize is applied once to every input key. Defaults to index.Fold.
	Normalize index.Normalizer

	// FanoutSwitch overrides the edge count at which a node switches from
	// the list to the map representation. Defaults to defaultFanoutSwitch.
	FanoutSwitch int
}

// Trie is an all-in-memory compressed (radix/Patricia) string index storing
// one shared label per edge instead of one character. Keys sharing long
// prefixes, such as URLs or file paths, collapse into few edges, keeping the
// structure shallow.
//
// Every internal non-terminal node other than the root has at least two
// children; deletion re-establishes this by coalescing unary chains back
// into their parent edge. The root's terminal flag represents membership of
// the empty string. All traversals are iterative. The structure is not safe
// for concurrent use.
type Trie struct {
	root      node
	normalize index.Normalizer
	fanout    int
}

// Trie implements the shared string-index contract.
var _ index.Index = (*Trie)(nil)

// New creates an empty Trie with the given configuration.
func New(config Config) *Trie {
	normalize := config.Normalize
	if normalize == nil {
		normalize = index.Fold
	}
	fanout := config.FanoutSwitch
	if fanout <= 0 {
		fanout = defaultFanoutSwitch
	}
	return &Trie{normalize: normalize, fanout: fanout}
}

// prefixSearch walks the trie consuming the given prefix. It returns the
// reached node and, when the prefix ends inside an edge, the unconsumed
// remainder of that edge's label. A nil node reports the prefix as absent.
func (t *Trie) prefixSearch(prefix string) (*node, string) {
	cur := &t.root
	for len(prefix) > 0 {
		ed, ok := cur.edges.get(prefix[0])
		if !ok {
			return nil, ""
		}
		i := lcp(prefix, ed.label)
		if i == len(ed.label) {
			prefix = prefix[i:]
			cur = ed.child
			continue
		}
		if i == len(prefix) {
			// The prefix terminates mid-edge.
			return ed.child, ed.label[i:]
		}
		return nil, ""
	}
	return cur, ""
}

// PrefixSearch reports whether any stored key starts with the given prefix.
// When the prefix ends inside an edge rather than on a node boundary,
// pending holds the unconsumed suffix of that edge's label; it is empty for
// matches ending exactly on a node.
func (t *Trie) PrefixSearch(prefix string) (pending string, ok bool) {
	n, pending := t.prefixSearch(t.normalize(prefix))
	return pending, n != nil
}

// Search reports whether the key is stored in the trie. A key is present
// only if its path ends exactly on a terminal node boundary.
func (t *Trie) Search(key string) bool {
	n, pending := t.prefixSearch(t.normalize(key))
	return n != nil && pending == "" && n.terminal
}

// Insert adds a single key, splitting an edge at the common-prefix boundary
// when the key diverges inside a label. Inserting a present key is a no-op.
func (t *Trie) Insert(key string) {
	t.insert(t.normalize(key))
}

func (t *Trie) insert(key string) {
	cur := &t.root
	for len(key) > 0 {
		ed, ok := cur.edges.get(key[0])
		if !ok {
			// No candidate edge; the whole remainder becomes one new edge.
			cur.edges.set(key, &node{terminal: true}, t.fanout)
			return
		}
		i := lcp(key, ed.label)
		if i == len(ed.label) {
			key = key[i:]
			cur = ed.child
			continue
		}

		// The key diverges inside the edge label. Split the edge at the
		// shared prefix, re-attach the old tail below a fresh intermediate
		// node, and add the new tail as a second edge unless the key ends
		// exactly at the split point.
		shared, oldTail, newTail := ed.label[:i], ed.label[i:], key[i:]
		mid := &node{terminal: newTail == ""}
		cur.edges.set(shared, mid, t.fanout)
		mid.edges.set(oldTail, ed.child, t.fanout)
		if newTail != "" {
			mid.edges.set(newTail, &node{terminal: true}, t.fanout)
		}
		return
	}
	cur.terminal = true
}

// pathFrame records one step of a descent: the node left behind and the
// label of the edge taken from it.
type pathFrame struct {
	parent *node
	label  string
}

// Delete removes a single key and reports whether it was present. Nodes that
// become childless and non-terminal are pruned; nodes left with exactly one
// edge and no terminal flag are coalesced into their parent edge by label
// concatenation, propagating upward. The root is exempt from both.
func (t *Trie) Delete(key string) bool {
	return t.delete(t.normalize(key))
}

func (t *Trie) delete(key string) bool {
	if key == "" {
		if !t.root.terminal {
			return false
		}
		t.root.terminal = false
		return true
	}

	cur := &t.root
	rem := key
	frames := make([]pathFrame, 0, 8)
	for len(rem) > 0 {
		ed, ok := cur.edges.get(rem[0])
		if !ok {
			return false
		}
		i := lcp(rem, ed.label)
		if i < len(ed.label) {
			// The key diverges from or ends inside the edge label, so it
			// cannot end on a node boundary.
			return false
		}
		frames = append(frames, pathFrame{cur, ed.label})
		cur = ed.child
		rem = rem[i:]
	}
	if !cur.terminal {
		return false
	}
	cur.terminal = false

	for len(frames) > 0 {
		frame := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		if cur.terminal {
			break
		}
		switch cur.edges.degree() {
		case 0:
			frame.parent.edges.remove(frame.label[0], t.fanout)
			cur = frame.parent
		case 1:
			// Unary non-terminal node: merge its sole edge onto the incoming
			// edge, then keep coalescing upward while the pattern repeats.
			ed, _ := cur.edges.only()
			frame.parent.edges.set(frame.label+ed.label, ed.child, t.fanout)
			cur = frame.parent
			for len(frames) > 0 && !cur.terminal && cur.edges.degree() == 1 {
				up := frames[len(frames)-1]
				frames = frames[:len(frames)-1]
				ed, _ := cur.edges.only()
				up.parent.edges.set(up.label+ed.label, ed.child, t.fanout)
				cur = up.parent
			}
			return true
		default:
			return true
		}
	}
	return true
}

// BatchInsert adds many keys after a single preparation pass. Unlike the
// uncompressed trie there is no LCP-based path reuse; the edge compression
// captures shared-prefix savings structurally, and sorted processing order
// still provides cache locality.
func (t *Trie) BatchInsert(keys []string, options index.BatchOptions) {
	for _, key := range index.PrepareBatch(keys, t.normalize, options) {
		t.insert(key)
	}
}

// BatchDelete removes many keys after a single preparation pass, reporting
// how many keys were removed and how many were not present.
func (t *Trie) BatchDelete(keys []string, options index.BatchOptions) (deleted, missing int) {
	for _, key := range index.PrepareBatch(keys, t.normalize, options) {
		if t.delete(key) {
			deleted++
		} else {
			missing++
		}
	}
	return deleted, missing
}

// EnumeratePrefix returns a lazy sequence of all stored keys starting with
// the given prefix, in lexicographic order of their normalized form. A limit
// greater than zero caps the number of produced keys.
//
// A prefix ending mid-edge seeds the shared buffer with the pending label
// suffix before descending, so the edge's own key and subtree are included.
// The buffer is truncated back on backtrack, accumulating whole edge labels
// instead of re-concatenating path prefixes.
func (t *Trie) EnumeratePrefix(prefix string, limit int) iter.Seq[string] {
	normalized := t.normalize(prefix)
	return func(yield func(string) bool) {
		start, pending := t.prefixSearch(normalized)
		if start == nil {
			return
		}

		yielded := 0
		buf := append([]byte{}, normalized...)
		buf = append(buf, pending...)
		emit := func() bool {
			if !yield(string(buf)) {
				return false
			}
			yielded++
			return limit <= 0 || yielded < limit
		}

		if start.terminal && !emit() {
			return
		}

		type frame struct {
			next  []edge // edges not yet visited
			depth int    // buffer length at this node
		}
		stack := []frame{{start.edges.sorted(), len(buf)}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				buf = buf[:top.depth]
				stack = stack[:len(stack)-1]
				continue
			}
			ed := top.next[0]
			top.next = top.next[1:]

			buf = append(buf[:top.depth], ed.label...)
			if ed.child.terminal && !emit() {
				return
			}
			stack = append(stack, frame{ed.child.edges.sorted(), len(buf)})
		}
	}
}

// NodeCount returns the total number of nodes, including the root.
func (t *Trie) NodeCount() int {
	total, _, _ := t.stats()
	return total
}

// AvgBranching returns the average out-degree over internal nodes, or zero
// if the trie has no internal nodes.
func (t *Trie) AvgBranching() float64 {
	_, internal, degree := t.stats()
	if internal == 0 {
		return 0
	}
	return float64(degree) / float64(internal)
}

func (t *Trie) stats() (total, internal, degree int) {
	stack := []*node{&t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		if d := n.edges.degree(); d > 0 {
			internal++
			degree += d
			n.edges.each(func(ed edge) {
				stack = append(stack, ed.child)
			})
		}
	}
	return total, internal, degree
}

// lcp returns the length of the longest common prefix of a and b.
func lcp(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
