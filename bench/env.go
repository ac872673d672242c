// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package bench

import (
	"runtime"

	"github.com/pbnjay/memory"
)

// Environment describes the machine a benchmark was executed on.
type Environment struct {
	GoVersion   string
	OS          string
	Arch        string
	NumCPU      int
	TotalMemory uint64
}

// Env samples the current execution environment.
func Env() Environment {
	return Environment{
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		TotalMemory: memory.TotalMemory(),
	}
}
