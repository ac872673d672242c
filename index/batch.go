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

import "slices"

// BatchOptions controls the preparation pass shared by all batch operations.
type BatchOptions struct {
	// Dedup removes duplicate keys from the batch. Duplicates are detected
	// between adjacent keys, which finds all of them on sorted input.
	Dedup bool

	// Presorted asserts that the input is already sorted under the same
	// normalization the receiving engine applies, skipping the sort. A
	// violated assertion degrades batch efficiency and deduplication but must
	// not crash the engine.
	Presorted bool
}

// PrepareBatch normalizes a batch of keys and, unless asserted presorted,
// sorts the result. The input slice is never modified. When two distinct
// input keys normalize to the same string, which of the two literal inputs
// survives deduplication is unspecified; after normalization they are
// indistinguishable anyway.
func PrepareBatch(keys []string, normalize Normalizer, options BatchOptions) []string {
	prepared := make([]string, len(keys))
	for i, key := range keys {
		prepared[i] = normalize(key)
	}
	if !options.Presorted {
		slices.Sort(prepared)
	}
	if options.Dedup {
		prepared = slices.Compact(prepared)
	}
	return prepared
}
