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
	"errors"
	"fmt"

	"github.com/triebench/triebench/bench"
	"github.com/triebench/triebench/common/diagnostics"
	"github.com/triebench/triebench/index"
	"github.com/triebench/triebench/index/radix"
	"github.com/triebench/triebench/index/trie"
	"github.com/urfave/cli/v2"
)

var (
	engineFlag = cli.StringFlag{
		Name:  "engine",
		Usage: "the engine to benchmark: trie, radix, or all",
		Value: "all",
	}
	resultDbFlag = cli.StringFlag{
		Name:  "result-db",
		Usage: "the file of the result database",
		Value: "results.db",
	}
	searchPassesFlag = cli.IntFlag{
		Name:  "search-passes",
		Usage: "the number of full-corpus search rounds per run",
		Value: 1,
	}
)

var BenchCmd = cli.Command{
	Action:    diagnostics.WithProfiling(doBench, &cpuProfileFlag, &traceFlag),
	Name:      "bench",
	Usage:     "run the benchmark operation sequence on a stored corpus",
	ArgsUsage: "<corpus name>",
	Flags: []cli.Flag{
		&engineFlag,
		&corpusDirFlag,
		&resultDbFlag,
		&searchPassesFlag,
	},
}

func doBench(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing corpus name parameter")
	}
	name := context.Args().Get(0)

	corpora, err := bench.OpenCorpusStore(context.String(corpusDirFlag.Name))
	if err != nil {
		return err
	}
	defer corpora.Close()

	keys, err := corpora.Get(name)
	if err != nil {
		return err
	}

	engines, err := selectEngines(context.String(engineFlag.Name))
	if err != nil {
		return err
	}

	results, err := bench.OpenResultStore(context.String(resultDbFlag.Name))
	if err != nil {
		return err
	}
	defer results.Close()

	for _, engine := range engines {
		runner := bench.Runner{
			Engine:       engine.name,
			Workload:     name,
			SearchPasses: context.Int(searchPassesFlag.Name),
		}
		measurements := runner.Run(engine.make(), keys)
		if err := results.Add(measurements...); err != nil {
			return err
		}
		for _, m := range measurements {
			fmt.Printf("%-6s %-14s %8d keys %12v %9d nodes %6.2f branching %12d B\n",
				m.Engine, m.Op, m.Keys, m.Duration, m.Nodes, m.AvgBranching, m.AllocBytes)
		}
	}
	return nil
}

type engineChoice struct {
	name string
	make func() index.Index
}

func selectEngines(selection string) ([]engineChoice, error) {
	standard := engineChoice{"trie", func() index.Index { return trie.New(trie.Config{}) }}
	compressed := engineChoice{"radix", func() index.Index { return radix.New(radix.Config{}) }}
	switch selection {
	case "trie":
		return []engineChoice{standard}, nil
	case "radix":
		return []engineChoice{compressed}, nil
	case "all":
		return []engineChoice{standard, compressed}, nil
	}
	return nil, errors.New("unknown engine: " + selection)
}
