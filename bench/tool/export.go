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
	"os"

	"github.com/triebench/triebench/bench"
	"github.com/urfave/cli/v2"
)

var outputFlag = cli.StringFlag{
	Name:  "output",
	Usage: "the target CSV file, standard output if empty",
	Value: "",
}

var ExportCmd = cli.Command{
	Action: doExport,
	Name:   "export",
	Usage:  "export all recorded measurements as CSV",
	Flags: []cli.Flag{
		&resultDbFlag,
		&outputFlag,
	},
}

func doExport(context *cli.Context) error {
	results, err := bench.OpenResultStore(context.String(resultDbFlag.Name))
	if err != nil {
		return err
	}
	defer results.Close()

	out := os.Stdout
	if file := context.String(outputFlag.Name); file != "" {
		out, err = os.Create(file)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}
	return results.ExportCSV(out)
}
