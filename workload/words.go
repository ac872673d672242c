// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package workload

import (
	_ "embed"
	"fmt"
	"math"
	"math/rand"
)

//go:embed words_common.txt
var wordsCommonRaw string

//go:embed words_alpha.txt
var wordsAlphaRaw string

var (
	wordsCommon = splitLines(wordsCommonRaw)
	wordsBroad  = splitLines(wordsAlphaRaw)

	// The broad list bucketed by its two leading bytes, with buckets weighted
	// by size. Sampling a bucket first and then words within it produces
	// corpora whose keys cluster under shared prefixes.
	prefixBuckets map[string][]string
	prefixes      []string
	prefixWeights []int
)

func init() {
	prefixBuckets = make(map[string][]string)
	for _, word := range wordsBroad {
		p := word[:2]
		if _, ok := prefixBuckets[p]; !ok {
			prefixes = append(prefixes, p)
		}
		prefixBuckets[p] = append(prefixBuckets[p], word)
	}
	prefixWeights = make([]int, len(prefixes))
	for i, p := range prefixes {
		prefixWeights[i] = len(prefixBuckets[p])
	}
}

// Words returns n English words sampled uniformly, with replacement, from
// the embedded common-word list.
func Words(n int, seed int64) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("word count must be positive, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	for i := range keys {
		keys[i] = wordsCommon[rng.Intn(len(wordsCommon))]
	}
	return keys, nil
}

// WordsWithPrefixFreq returns n words from the embedded broad list whose
// prefix locality is controlled by prefixFreq in [0, 1]. A higher frequency
// makes consecutive words more likely to share their two leading bytes. The
// frequency is mapped logarithmically, so the mean run length under one
// prefix grows from 1 towards 100 as the frequency approaches 1.
func WordsWithPrefixFreq(n int, prefixFreq float64, seed int64) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("word count must be positive, got %d", n)
	}
	if prefixFreq < 0 || prefixFreq > 1 {
		return nil, fmt.Errorf("prefix frequency must be between 0 and 1, got %g", prefixFreq)
	}
	effective := effectivePrefixFreq(prefixFreq)

	rng := rand.New(rand.NewSource(seed))
	keys := make([]string, 0, n)
	for len(keys) < n {
		bucket := prefixBuckets[prefixes[pick(rng, prefixWeights)]]
		keys = append(keys, bucket[rng.Intn(len(bucket))])
		for len(keys) < n && rng.Float64() < effective {
			keys = append(keys, bucket[rng.Intn(len(bucket))])
		}
	}
	return keys, nil
}

// effectivePrefixFreq maps the requested frequency to the repeat probability
// actually used while sampling: p = 1 - e^(-ln(100) * x), capped just below
// one to keep run lengths finite.
func effectivePrefixFreq(x float64) float64 {
	x = math.Min(0.999999, math.Max(0, x))
	p := 1 - math.Exp(-math.Log(100)*x)
	return math.Min(p, 0.999999)
}
