// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package diagnostics provides CPU-profiling and execution-trace support for
// CLI commands.
package diagnostics

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

// WithProfiling wraps a CLI action so that, when the given flags are set, a
// CPU profile and an execution trace are recorded for the duration of the
// action. Both flags must be string flags naming the target file; an empty
// value disables the respective recording.
func WithProfiling(action cli.ActionFunc, cpuProfileFlag, traceFlag *cli.StringFlag) cli.ActionFunc {
	return func(context *cli.Context) error {
		cpuProfileFile := context.String(cpuProfileFlag.Names()[0])
		if strings.TrimSpace(cpuProfileFile) != "" {
			if err := startCpuProfiler(cpuProfileFile); err != nil {
				return err
			}
			defer pprof.StopCPUProfile()
		}

		traceFile := context.String(traceFlag.Names()[0])
		if strings.TrimSpace(traceFile) != "" {
			if err := startTracer(traceFile); err != nil {
				return err
			}
			defer trace.Stop()
		}

		return action(context)
	}
}

func startCpuProfiler(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %s", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %s", err)
	}
	return nil
}

func startTracer(filename string) error {
	traceFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %v", err)
	}
	if err := trace.Start(traceFile); err != nil {
		return fmt.Errorf("failed to start trace: %v", err)
	}
	return nil
}
