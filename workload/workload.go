// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package workload synthesizes key corpora for exercising the string-index
// engines: English words with tunable prefix locality, URLs with long shared
// prefixes, IPv4 addresses, and fixed-width numeric identifiers.
//
// All generators are deterministic for a given seed. The index engines are
// agnostic to how keys are produced; this package only mimics the key
// distributions the engines are benchmarked against.
package workload

import (
	"math/rand"
	"strings"

	"golang.org/x/exp/constraints"
)

// pick returns a random index into weights, with probability proportional to
// the weight at that index. The weights must not all be zero.
func pick[W constraints.Integer | constraints.Float](rng *rand.Rand, weights []W) int {
	var total float64
	for _, w := range weights {
		total += float64(w)
	}
	x := rng.Float64() * total
	for i, w := range weights {
		x -= float64(w)
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// splitLines splits an embedded word list into its non-empty lines.
func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			words = append(words, line)
		}
	}
	return words
}
