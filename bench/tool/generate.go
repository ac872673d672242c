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
	"github.com/triebench/triebench/workload"
	"github.com/urfave/cli/v2"
)

var (
	workloadFlag = cli.StringFlag{
		Name:  "workload",
		Usage: "the key distribution to generate: words, prefix-words, urls, ips, or ids",
		Value: "words",
	}
	countFlag = cli.IntFlag{
		Name:  "count",
		Usage: "the number of keys to generate",
		Value: 100_000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "the seed of the generator, making runs reproducible",
		Value: 42,
	}
	prefixFreqFlag = cli.Float64Flag{
		Name:  "prefix-freq",
		Usage: "the prefix locality of the prefix-words workload, between 0 and 1",
		Value: 0.5,
	}
	idWidthFlag = cli.IntFlag{
		Name:  "id-width",
		Usage: "the digit width of the ids workload",
		Value: 12,
	}
	corpusDirFlag = cli.StringFlag{
		Name:  "corpus-db",
		Usage: "the directory of the corpus database",
		Value: "corpora",
	}
)

var GenerateCmd = cli.Command{
	Action:    doGenerate,
	Name:      "generate",
	Usage:     "generate a key corpus and store it for later benchmark runs",
	ArgsUsage: "<corpus name>",
	Flags: []cli.Flag{
		&workloadFlag,
		&countFlag,
		&seedFlag,
		&prefixFreqFlag,
		&idWidthFlag,
		&corpusDirFlag,
	},
}

func doGenerate(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing corpus name parameter")
	}
	name := context.Args().Get(0)

	keys, err := makeCorpus(context)
	if err != nil {
		return err
	}

	store, err := bench.OpenCorpusStore(context.String(corpusDirFlag.Name))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Put(name, keys); err != nil {
		return err
	}
	fmt.Printf("stored corpus %q with %d keys\n", name, len(keys))
	return nil
}

// makeCorpus produces a key corpus from the workload flags.
func makeCorpus(context *cli.Context) ([]string, error) {
	kind := context.String(workloadFlag.Name)
	count := context.Int(countFlag.Name)
	seed := context.Int64(seedFlag.Name)
	switch kind {
	case "words":
		return workload.Words(count, seed)
	case "prefix-words":
		return workload.WordsWithPrefixFreq(count, context.Float64(prefixFreqFlag.Name), seed)
	case "urls":
		return workload.URLs(count, seed)
	case "ips":
		return workload.IPs(count, seed)
	case "ids":
		return workload.NumericIDs(count, context.Int(idWidthFlag.Name), seed)
	}
	return nil, fmt.Errorf("unknown workload %q", kind)
}
