// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

import (
	"iter"
	"slices"

	"github.com/triebench/triebench/index"
)

// node is a single trie node. The children map is nil until the first child
// is added, so leaf nodes carry no container allocation.
type node struct {
	children map[byte]*node
	terminal bool
}

// Config configures a Trie instance.
type Config struct {
	// Normalize is applied once to every input key. Defaults to index.Fold.
	Normalize index.Normalizer
}

// Trie is an all-in-memory string index storing one byte of the key per
// edge. The root's terminal flag represents membership of the empty string.
//
// All traversals are iterative, keeping stack usage independent of key
// length. The structure is not safe for concurrent use.
type Trie struct {
	root      node
	normalize index.Normalizer
}

// Trie implements the shared string-index contract.
var _ index.Index = (*Trie)(nil)

// New creates an empty Trie with the given configuration.
func New(config Config) *Trie {
	normalize := config.Normalize
	if normalize == nil {
		normalize = index.Fold
	}
	return &Trie{normalize: normalize}
}

// walk descends from the root consuming one byte of key per edge. It returns
// nil as soon as a required byte has no matching edge.
func (t *Trie) walk(key string) *node {
	cur := &t.root
	for i := 0; i < len(key); i++ {
		next := cur.children[key[i]]
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Search reports whether the key is stored in the trie.
func (t *Trie) Search(key string) bool {
	n := t.walk(t.normalize(key))
	return n != nil && n.terminal
}

// ContainsPrefix reports whether any stored key starts with the given prefix.
func (t *Trie) ContainsPrefix(prefix string) bool {
	return t.walk(t.normalize(prefix)) != nil
}

// Insert adds a single key, creating nodes along the path as needed.
// Inserting a present key is a no-op.
func (t *Trie) Insert(key string) {
	t.insert(t.normalize(key))
}

func (t *Trie) insert(key string) {
	cur := &t.root
	for i := 0; i < len(key); i++ {
		c := key[i]
		next := cur.children[c]
		if next == nil {
			next = &node{}
			if cur.children == nil {
				cur.children = map[byte]*node{c: next}
			} else {
				cur.children[c] = next
			}
		}
		cur = next
	}
	cur.terminal = true
}

// Delete removes a single key and reports whether it was present. Nodes that
// become childless and non-terminal are pruned on the way back up.
func (t *Trie) Delete(key string) bool {
	deleted, _ := t.BatchDelete([]string{key}, index.BatchOptions{Presorted: true})
	return deleted == 1
}

// BatchInsert adds many keys after a single preparation pass. Keys are
// processed in sorted order; the longest common prefix with the previous key
// is kept on a path stack so shared path segments are not re-walked from the
// root.
func (t *Trie) BatchInsert(keys []string, options index.BatchOptions) {
	prepared := index.PrepareBatch(keys, t.normalize, options)

	prev := ""
	path := make([]*node, 1, 16)
	path[0] = &t.root

	for _, key := range prepared {
		i := lcp(prev, key)
		path = path[:i+1]
		cur := path[len(path)-1]

		for j := i; j < len(key); j++ {
			c := key[j]
			next := cur.children[c]
			if next == nil {
				next = &node{}
				if cur.children == nil {
					cur.children = map[byte]*node{c: next}
				} else {
					cur.children[c] = next
				}
			}
			path = append(path, next)
			cur = next
		}
		cur.terminal = true
		prev = key
	}
}

// BatchDelete removes many keys after a single preparation pass, reusing the
// longest common prefix with the previous key to minimize descent work. For
// each present key the terminal flag is cleared and ancestors are pruned
// upward while they are non-terminal and childless; the root is never
// pruned. Missing keys are counted instead of aborting the batch.
func (t *Trie) BatchDelete(keys []string, options index.BatchOptions) (deleted, missing int) {
	prepared := index.PrepareBatch(keys, t.normalize, options)

	prev := ""
	nodes := make([]*node, 1, 16)
	nodes[0] = &t.root
	edges := make([]byte, 1, 16) // edges[i] leads from nodes[i-1] to nodes[i]

	for _, key := range prepared {
		// After a failed walk the retained path is shorter than the longest
		// common prefix with the previous key; resume from its deepest node.
		i := min(lcp(prev, key), len(nodes)-1)
		nodes = nodes[:i+1]
		edges = edges[:i+1]
		cur := nodes[len(nodes)-1]

		found := true
		for j := i; j < len(key); j++ {
			c := key[j]
			next := cur.children[c]
			if next == nil {
				found = false
				break
			}
			cur = next
			nodes = append(nodes, next)
			edges = append(edges, c)
		}

		if !found || !cur.terminal {
			missing++
			prev = key
			continue
		}

		cur.terminal = false
		deleted++

		for idx := len(nodes) - 1; idx > 0; idx-- {
			cur := nodes[idx]
			if cur.terminal || len(cur.children) > 0 {
				break
			}
			parent := nodes[idx-1]
			delete(parent.children, edges[idx])
			if len(parent.children) == 0 {
				parent.children = nil
			}
		}
		prev = key
	}
	return deleted, missing
}

// EnumeratePrefix returns a lazy sequence of all stored keys starting with
// the given prefix, in lexicographic order of their normalized form. A limit
// greater than zero caps the number of produced keys.
//
// The traversal is an iterative depth-first walk sharing one byte buffer
// across all produced keys; the buffer is truncated on backtrack instead of
// re-concatenating path prefixes.
func (t *Trie) EnumeratePrefix(prefix string, limit int) iter.Seq[string] {
	normalized := t.normalize(prefix)
	return func(yield func(string) bool) {
		start := t.walk(normalized)
		if start == nil {
			return
		}

		yielded := 0
		buf := append([]byte{}, normalized...)
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
			n     *node
			next  []byte // child bytes not yet visited
			depth int    // buffer length at this node
		}
		stack := []frame{{start, childBytes(start), len(buf)}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				buf = buf[:top.depth]
				stack = stack[:len(stack)-1]
				continue
			}
			c := top.next[0]
			top.next = top.next[1:]

			child := top.n.children[c]
			buf = append(buf[:top.depth], c)
			if child.terminal && !emit() {
				return
			}
			stack = append(stack, frame{child, childBytes(child), len(buf)})
		}
	}
}

// childBytes returns the sorted outgoing edge bytes of a node.
func childBytes(n *node) []byte {
	if len(n.children) == 0 {
		return nil
	}
	bytes := make([]byte, 0, len(n.children))
	for c := range n.children {
		bytes = append(bytes, c)
	}
	slices.Sort(bytes)
	return bytes
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
		if len(n.children) > 0 {
			internal++
			degree += len(n.children)
			for _, child := range n.children {
				stack = append(stack, child)
			}
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
