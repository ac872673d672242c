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
	"net/url"
	"strings"
)

//go:embed domains.txt
var domainsRaw string

var (
	domains       = splitLines(domainsRaw)
	domainWeights = zipfWeights(len(domains), 1.1)
)

// File extensions and their observed relative frequencies on the web,
// grouped as code/markup, images, fonts, docs/data, and media.
var fileExtensions = []string{
	"js", "mjs", "css", "html", "htm",
	"jpg", "jpeg", "png", "gif", "webp", "svg", "ico",
	"woff2", "woff", "ttf", "otf", "eot",
	"pdf", "json", "xml", "txt", "csv",
	"mp4", "webm", "mov", "mp3", "ogg",
}

var fileExtensionWeights = []float64{
	0.283058, 0.010266, 0.095455, 0.029750, 0.004057,
	0.103223, 0.025806, 0.090288, 0.050907, 0.028495, 0.015048, 0.005123,
	0.080540, 0.009943, 0.003977, 0.002983, 0.001989,
	0.029830, 0.029830, 0.009943, 0.011932, 0.007955,
	0.034801, 0.014915, 0.004972, 0.009943, 0.004972,
}

var (
	slugSeparators       = []string{"-", "_", " "}
	slugSeparatorWeights = []float64{0.82, 0.12, 0.06}

	segmentCounts       = []int{1, 2, 3, 4, 5, 6, 7, 8}
	segmentCountWeights = []float64{0.30, 0.23, 0.18, 0.12, 0.08, 0.05, 0.03, 0.01}
)

// URLs returns n synthetic URLs. Hosts are drawn from an embedded popular
// domain list under a Zipf distribution, so a few hosts dominate and produce
// long shared prefixes; paths mix dictionary words and random slugs and may
// end in a weighted file extension.
func URLs(n int, seed int64) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("url count must be positive, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	for i := range keys {
		keys[i] = randomURL(rng)
	}
	return keys, nil
}

func randomURL(rng *rand.Rand) string {
	var sb strings.Builder
	sb.WriteString(pickScheme(rng))
	sb.WriteString("://")
	sb.WriteString(domains[pick(rng, domainWeights)])
	for _, segment := range randomPath(rng) {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}
	return sb.String()
}

// pickScheme returns http or https with realistic probability.
func pickScheme(rng *rand.Rand) string {
	if rng.Float64() < 0.12 {
		return "http"
	}
	return "https"
}

// randomPath produces the path segments of a URL. Roughly a third of the
// generated URLs address a file, ending in an extension.
func randomPath(rng *rand.Rand) []string {
	count := segmentCounts[pick(rng, segmentCountWeights)]
	segments := make([]string, count)
	for i := range segments {
		if rng.Float64() < 0.35 {
			segments[i] = slug(rng)
		} else {
			segments[i] = url.PathEscape(wordsBroad[rng.Intn(len(wordsBroad))])
		}
	}
	if rng.Float64() < 0.35 {
		last := count - 1
		segments[last] = segments[last] + "." + fileExtensions[pick(rng, fileExtensionWeights)]
	}
	return segments
}

// slug generates a random path segment of 2 to 12 lowercase characters,
// occasionally containing digits or a separator.
func slug(rng *rand.Rand) string {
	pool := "abcdefghijklmnopqrstuvwxyz"
	if rng.Float64() < 0.15 {
		pool += "0123456789"
	}
	length := 2 + rng.Intn(11)
	chars := make([]byte, length)
	for i := range chars {
		chars[i] = pool[rng.Intn(len(pool))]
	}
	s := string(chars)
	if rng.Float64() < 0.15 && len(s) > 3 {
		at := 2 + rng.Intn(len(s)-3)
		s = s[:at] + slugSeparators[pick(rng, slugSeparatorWeights)] + s[at:]
	}
	return url.PathEscape(s)
}

// zipfWeights returns weights 1/(r+1)^s for ranks 0..n-1.
func zipfWeights(n int, s float64) []float64 {
	weights := make([]float64, n)
	for r := range weights {
		weights[r] = 1 / math.Pow(float64(r+1), s)
	}
	return weights
}
