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
	"net/netip"
)

// publicShare is the fraction of generated addresses drawn from public
// address space; the rest come from the RFC 1918 private ranges.
const publicShare = 0.50

// Relative frequencies of the private ranges: home and small-business gear
// mostly sits in 192.168/16, cloud and enterprise networks in 10/8, and
// 172.16/12 is comparatively rare.
var (
	privateClasses      = []string{"c", "a", "b"}
	privateClassWeights = []float64{0.55, 0.35, 0.10}
)

// IPs returns n IPv4 addresses in dotted-decimal form, mixing public and
// private address space. Dotted-decimal keys give the index engines a small
// alphabet and dense shared prefixes.
func IPs(n int, seed int64) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("address count must be positive, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	for i := range keys {
		if rng.Float64() < publicShare {
			keys[i] = randomPublicIP(rng)
		} else {
			keys[i] = randomPrivateIP(rng)
		}
	}
	return keys, nil
}

func randomPublicIP(rng *rand.Rand) string {
	for {
		addr := netip.AddrFrom4([4]byte{
			byte(rng.Intn(256)), byte(rng.Intn(256)),
			byte(rng.Intn(256)), byte(rng.Intn(256)),
		})
		if addr.IsGlobalUnicast() && !addr.IsPrivate() {
			return addr.String()
		}
	}
}

func randomPrivateIP(rng *rand.Rand) string {
	var addr [4]byte
	switch privateClasses[pick(rng, privateClassWeights)] {
	case "a":
		addr = [4]byte{10, byte(rng.Intn(256)), byte(rng.Intn(256)), byte(rng.Intn(256))}
	case "b":
		addr = [4]byte{172, byte(16 + rng.Intn(16)), byte(rng.Intn(256)), byte(rng.Intn(256))}
	default:
		addr = [4]byte{192, 168, byte(rng.Intn(256)), byte(rng.Intn(256))}
	}
	return netip.AddrFrom4(addr).String()
}
