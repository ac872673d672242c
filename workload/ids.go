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
	"fmt"
	"math/rand"
)

// NumericIDs returns n fixed-width decimal identifiers, digits drawn
// uniformly. Uniform digit strings give the index engines a worst case for
// prefix sharing: a small alphabet with no locality.
func NumericIDs(n, width int, seed int64) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("id count must be positive, got %d", n)
	}
	if width < 1 {
		return nil, fmt.Errorf("id width must be positive, got %d", width)
	}
	rng := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	digits := make([]byte, width)
	for i := range keys {
		for j := range digits {
			digits[j] = '0' + byte(rng.Intn(10))
		}
		keys[i] = string(digits)
	}
	return keys, nil
}
