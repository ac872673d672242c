// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package index

import (
	"iter"

	"golang.org/x/text/cases"
)

// Normalizer maps an input key to its canonical form. Implementations of the
// Index interface apply their configured Normalizer exactly once to every
// incoming key before any traversal. Batch operations apply it during the
// shared preparation pass.
type Normalizer func(string) string

// Fold is the default Normalizer. It performs Unicode case folding, making
// lookups case-insensitive.
func Fold(key string) string {
	return cases.Fold().String(key)
}

// Identity is a Normalizer that leaves keys untouched.
func Identity(key string) string {
	return key
}

// Index is the capability set shared by all string-index engines in this
// repository. Implementations keep the full structure in memory and are
// exclusively owned by their caller; concurrent use requires external
// synchronization.
//
// Operations never perform hidden background work, so each call can be timed
// individually. The only amortized cost shared across keys is the documented
// preparation pass of the batch operations.
type Index interface {
	// Insert adds a single key to the index. Inserting a key that is already
	// present is a no-op.
	Insert(key string)

	// Delete removes a single key and reports whether it was present.
	// Removing an absent key leaves the structure unmodified.
	Delete(key string) bool

	// Search reports whether the given key is stored in the index.
	Search(key string) bool

	// BatchInsert adds many keys at once. The batch is normalized, and unless
	// asserted presorted, sorted and optionally deduplicated in a single
	// preparation pass before any structural modification.
	BatchInsert(keys []string, options BatchOptions)

	// BatchDelete removes many keys at once, using the same preparation pass
	// as BatchInsert. It reports how many keys were removed and how many were
	// not present. A missing key never aborts the batch.
	BatchDelete(keys []string, options BatchOptions) (deleted, missing int)

	// EnumeratePrefix returns a lazy, single-pass sequence of all stored keys
	// starting with the given prefix. Traversal proceeds incrementally as the
	// consumer pulls results; stopping early releases no resources since none
	// are held. A limit greater than zero caps the number of produced keys.
	EnumeratePrefix(prefix string, limit int) iter.Seq[string]

	// NodeCount returns the total number of nodes in the structure,
	// including the root.
	NodeCount() int

	// AvgBranching returns the average number of outgoing edges over all
	// internal nodes, or zero for an empty structure.
	AvgBranching() float64
}
