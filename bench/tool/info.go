// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/triebench/triebench/bench"
	"github.com/urfave/cli/v2"
)

var InfoCmd = cli.Command{
	Action: doInfo,
	Name:   "info",
	Usage:  "print the benchmark execution environment",
}

func doInfo(context *cli.Context) error {
	env := bench.Env()
	fmt.Printf("Go version:   %s\n", env.GoVersion)
	fmt.Printf("Platform:     %s/%s\n", env.OS, env.Arch)
	fmt.Printf("CPUs:         %d\n", env.NumCPU)
	fmt.Printf("Total memory: %.1f GiB\n", float64(env.TotalMemory)/(1<<30))
	return nil
}
