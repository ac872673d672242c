// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/triebench/triebench/index"
)

func collect(t *Trie, prefix string, limit int) []string {
	var keys []string
	for key := range t.EnumeratePrefix(prefix, limit) {
		keys = append(keys, key)
	}
	return keys
}

func TestTrie_InitialTrieIsEmpty(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	require.False(trie.Search(""))
	require.False(trie.Search("a"))
	require.Equal(1, trie.NodeCount())
	require.Zero(trie.AvgBranching())
}

func TestTrie_OneNodePerCharacterIsCreated(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("abcdef")
	require.Equal(7, trie.NodeCount(), "root plus one node per character")

	trie.Insert("abcxyz")
	require.Equal(10, trie.NodeCount(), "shared prefix nodes are reused")
}

func TestTrie_SearchFailsAtTheFirstMissingEdge(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("carton")

	require.True(trie.Search("carton"))
	require.False(trie.Search("car"), "path exists but node is not terminal")
	require.False(trie.Search("cartons"), "walk runs past the last node")
	require.False(trie.Search("dog"))
}

func TestTrie_ContainsPrefixChecksPathOnly(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("carton")

	require.True(trie.ContainsPrefix(""))
	require.True(trie.ContainsPrefix("car"))
	require.True(trie.ContainsPrefix("carton"))
	require.False(trie.ContainsPrefix("cartons"))
	require.False(trie.ContainsPrefix("d"))
}

func TestTrie_DeletePrunesUpToTheFirstBranchingAncestor(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("car")
	trie.Insert("carton")
	nodes := trie.NodeCount()

	trie.Insert("cartoon")
	require.True(trie.Delete("cartoon"))
	require.Equal(nodes, trie.NodeCount(), "divergent suffix nodes are pruned")
	require.True(trie.Search("car"))
	require.True(trie.Search("carton"))
}

func TestTrie_DeletePruningStopsAtTerminalAncestors(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("car")
	trie.Insert("carton")

	require.True(trie.Delete("carton"))
	require.Equal(4, trie.NodeCount(), "nodes of the surviving key remain")
	require.True(trie.Search("car"))
	require.False(trie.Search("carton"))
}

func TestTrie_RootIsNeverPruned(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("a")
	require.True(trie.Delete("a"))
	require.Equal(1, trie.NodeCount())
	trie.Insert("b")
	require.True(trie.Search("b"))
}

func TestTrie_BatchDeleteAfterFailedWalkKeepsUnrelatedKeys(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.BatchInsert([]string{"cax", "car"}, index.BatchOptions{})

	// "cat" fails mid-walk; the following "catx" shares a longer prefix with
	// it than the retained path and must not damage sibling keys.
	deleted, missing := trie.BatchDelete(
		[]string{"cat", "catx"},
		index.BatchOptions{Presorted: true},
	)
	require.Zero(deleted)
	require.Equal(2, missing)
	require.True(trie.Search("cax"))
	require.True(trie.Search("car"))
}

func TestTrie_BatchInsertEqualsRepeatedSingleInserts(t *testing.T) {
	require := require.New(t)

	keys := []string{"to", "tea", "ted", "ten", "inn", "in", "i"}

	batched := New(Config{})
	batched.BatchInsert(keys, index.BatchOptions{Dedup: true})

	single := New(Config{})
	for _, key := range keys {
		single.Insert(key)
	}

	require.Equal(single.NodeCount(), batched.NodeCount())
	require.Equal(collect(single, "", 0), collect(batched, "", 0))
}

func TestTrie_EnumerationIsLexicographic(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.BatchInsert([]string{"banana", "apple", "cherry", "app"}, index.BatchOptions{})

	require.Equal([]string{"app", "apple", "banana", "cherry"}, collect(trie, "", 0))
	require.Equal([]string{"app", "apple"}, collect(trie, "ap", 0))
	require.Equal([]string{"app"}, collect(trie, "", 1))
}

func TestTrie_EnumerationOfMissingPrefixYieldsNothing(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("apple")
	require.Empty(collect(trie, "b", 0))
	require.Empty(collect(trie, "apples", 0))
}

func TestTrie_AvgBranchingDividesEdgesByInternalNodes(t *testing.T) {
	require := require.New(t)

	trie := New(Config{})
	trie.Insert("ab")
	trie.Insert("ac")

	// Root and the "a" node are internal; three edges in total.
	require.InDelta(1.5, trie.AvgBranching(), 1e-9)
}

func TestTrie_CustomNormalizerIsApplied(t *testing.T) {
	require := require.New(t)

	trie := New(Config{Normalize: strings.ToUpper})
	trie.Insert("abc")
	require.True(trie.Search("ABC"))
	require.Equal([]string{"ABC"}, collect(trie, "a", 0))
}

func TestTrie_DeepKeysDoNotExhaustTheStack(t *testing.T) {
	require := require.New(t)

	key := strings.Repeat("a", 100_000)
	trie := New(Config{})
	trie.Insert(key)
	require.True(trie.Search(key))
	require.Equal(100_001, trie.NodeCount())
	require.Equal([]string{key}, collect(trie, "", 0))
	require.True(trie.Delete(key))
	require.Equal(1, trie.NodeCount())
}
