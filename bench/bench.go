// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package bench measures the string-index engines: it drives any
// index.Index through a fixed operation sequence, times each operation
// individually, and records structural and allocation statistics alongside.
package bench

import (
	"runtime"
	"time"

	"github.com/triebench/triebench/index"
)

// Measurement captures one timed operation on one engine and corpus.
type Measurement struct {
	Engine       string
	Workload     string
	Op           string
	Keys         int
	Duration     time.Duration
	Nodes        int
	AvgBranching float64
	AllocBytes   uint64
	Timestamp    time.Time
}

// Runner drives an index through the benchmark operation sequence.
type Runner struct {
	// Engine and Workload label the produced measurements.
	Engine   string
	Workload string

	// SearchPasses is the number of full-corpus search rounds per run.
	// Defaults to 1.
	SearchPasses int
}

// Run feeds the given corpus through the index: batch insert, full-corpus
// search, complete enumeration, and batch delete. Every operation is timed
// on its own; node count and branching factor are sampled after each.
func (r *Runner) Run(idx index.Index, keys []string) []Measurement {
	passes := r.SearchPasses
	if passes < 1 {
		passes = 1
	}

	measurements := make([]Measurement, 0, 4)
	measure := func(op string, fn func()) {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		start := time.Now()
		fn()
		elapsed := time.Since(start)
		runtime.ReadMemStats(&after)

		measurements = append(measurements, Measurement{
			Engine:       r.Engine,
			Workload:     r.Workload,
			Op:           op,
			Keys:         len(keys),
			Duration:     elapsed,
			Nodes:        idx.NodeCount(),
			AvgBranching: idx.AvgBranching(),
			AllocBytes:   after.TotalAlloc - before.TotalAlloc,
			Timestamp:    time.Now(),
		})
	}

	measure("batch_insert", func() {
		idx.BatchInsert(keys, index.BatchOptions{Dedup: true})
	})
	measure("search", func() {
		for range passes {
			for _, key := range keys {
				idx.Search(key)
			}
		}
	})
	measure("enumerate", func() {
		for range idx.EnumeratePrefix("", 0) {
		}
	})
	measure("batch_delete", func() {
		idx.BatchDelete(keys, index.BatchOptions{Dedup: true})
	})
	return measurements
}
