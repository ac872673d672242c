// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package index_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/triebench/triebench/index"
	"github.com/triebench/triebench/index/radix"
	"github.com/triebench/triebench/index/trie"
)

// initIndexes lists one constructor per engine implementing the shared
// string-index contract. Every test below runs against all of them.
func initIndexes() map[string]func() index.Index {
	return map[string]func() index.Index{
		"trie": func() index.Index {
			return trie.New(trie.Config{})
		},
		"radix": func() index.Index {
			return radix.New(radix.Config{})
		},
		"radix-small-fanout": func() index.Index {
			return radix.New(radix.Config{FanoutSwitch: 2})
		},
	}
}

func collect(seq func(func(string) bool)) []string {
	var keys []string
	seq(func(key string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func TestIndexes_InsertedKeysAreFound(t *testing.T) {
	keys := []string{"car", "cart", "carton", "dog", "a", "apple", "url"}
	absent := []string{"ca", "cars", "d", "carto", "b", ""}

	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()
			for _, key := range keys {
				idx.Insert(key)
			}
			for _, key := range keys {
				require.True(idx.Search(key), "key %q should be found", key)
			}
			for _, key := range absent {
				require.False(idx.Search(key), "key %q should not be found", key)
			}
		})
	}
}

func TestIndexes_DeleteIsInverseOfInsert(t *testing.T) {
	base := []string{"test", "testing", "team", "toast"}

	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()
			for _, key := range base {
				idx.Insert(key)
			}
			nodesBefore := idx.NodeCount()
			keysBefore := collect(idx.EnumeratePrefix("", 0))

			idx.Insert("tester")
			require.True(idx.Delete("tester"))

			require.Equal(nodesBefore, idx.NodeCount())
			require.Equal(keysBefore, collect(idx.EnumeratePrefix("", 0)))
		})
	}
}

func TestIndexes_OperationsAreIdempotent(t *testing.T) {
	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()

			idx.Insert("key")
			nodes := idx.NodeCount()
			idx.Insert("key")
			require.Equal(nodes, idx.NodeCount())
			require.Equal([]string{"key"}, collect(idx.EnumeratePrefix("", 0)))

			require.True(idx.Delete("key"))
			require.False(idx.Delete("key"), "second delete should report not found")
		})
	}
}

func TestIndexes_DeletingAbsentKeysLeavesStructureUnmodified(t *testing.T) {
	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()
			idx.Insert("carton")
			nodes := idx.NodeCount()

			for _, key := range []string{"car", "cartons", "dog", ""} {
				require.False(idx.Delete(key), "key %q should be missing", key)
			}
			require.Equal(nodes, idx.NodeCount())
			require.True(idx.Search("carton"))
		})
	}
}

func TestIndexes_EnumerationIsCompleteAndExact(t *testing.T) {
	keys := []string{"car", "card", "carton", "cat", "dog", "dot", "a"}

	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()
			idx.BatchInsert(keys, index.BatchOptions{Dedup: true})

			for _, prefix := range []string{"", "c", "ca", "car", "cart", "d", "x", "carton", "cartons"} {
				var want []string
				for _, key := range keys {
					if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
						want = append(want, key)
					}
				}
				got := collect(idx.EnumeratePrefix(prefix, 0))
				require.ElementsMatch(want, got, "prefix %q", prefix)
			}
		})
	}
}

func TestIndexes_EnumerationRespectsLimit(t *testing.T) {
	keys := []string{"a", "ab", "abc", "abcd", "abcde"}

	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()
			idx.BatchInsert(keys, index.BatchOptions{Dedup: true})

			for limit := 1; limit <= len(keys)+1; limit++ {
				got := collect(idx.EnumeratePrefix("", limit))
				require.Len(got, min(limit, len(keys)))
			}
		})
	}
}

func TestIndexes_EnumerationCanBeAbandonedEarly(t *testing.T) {
	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()
			idx.BatchInsert([]string{"a", "b", "c"}, index.BatchOptions{})

			var got []string
			for key := range idx.EnumeratePrefix("", 0) {
				got = append(got, key)
				break
			}
			require.Len(got, 1)
		})
	}
}

func TestIndexes_EmptyKeyIsRepresentedByTheRoot(t *testing.T) {
	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()

			require.False(idx.Search(""))
			idx.Insert("")
			require.True(idx.Search(""))
			require.Equal(1, idx.NodeCount(), "empty key must not create nodes")

			idx.Insert("a")
			require.Equal([]string{"", "a"}, collect(idx.EnumeratePrefix("", 0)))

			require.True(idx.Delete(""))
			require.False(idx.Search(""))
			require.True(idx.Search("a"))
		})
	}
}

func TestIndexes_KeysAreNormalizedOnEveryOperation(t *testing.T) {
	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()

			idx.Insert("HeLLo")
			require.True(idx.Search("hello"))
			require.True(idx.Search("HELLO"))
			require.Equal([]string{"hello"}, collect(idx.EnumeratePrefix("HE", 0)))
			require.True(idx.Delete("hellO"))
			require.False(idx.Search("hello"))
		})
	}
}

func TestIndexes_BatchInsertMatchesSingleInserts(t *testing.T) {
	keys := []string{"car", "cart", "carton", "cat", "dog", "do", "a", "apple", "ap"}

	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			rng := rand.New(rand.NewSource(123))

			for round := 0; round < 5; round++ {
				permuted := append([]string{}, keys...)
				rng.Shuffle(len(permuted), func(i, j int) {
					permuted[i], permuted[j] = permuted[j], permuted[i]
				})

				batched := create()
				batched.BatchInsert(permuted, index.BatchOptions{Dedup: true})

				single := create()
				for _, key := range permuted {
					single.Insert(key)
				}

				require.Equal(single.NodeCount(), batched.NodeCount())
				require.Equal(
					collect(single.EnumeratePrefix("", 0)),
					collect(batched.EnumeratePrefix("", 0)),
				)
			}
		})
	}
}

func TestIndexes_BatchDeleteCountsDeletedAndMissing(t *testing.T) {
	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			idx := create()
			idx.BatchInsert([]string{"car", "cart", "dog"}, index.BatchOptions{Dedup: true})

			deleted, missing := idx.BatchDelete(
				[]string{"car", "cat", "dog", "dogs"},
				index.BatchOptions{Dedup: true},
			)
			require.Equal(2, deleted)
			require.Equal(2, missing)
			require.False(idx.Search("car"))
			require.True(idx.Search("cart"))
		})
	}
}

func TestIndexes_ManyRandomKeysRoundTrip(t *testing.T) {
	const n = 2000

	for name, create := range initIndexes() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			rng := rand.New(rand.NewSource(42))

			unique := map[string]struct{}{}
			keys := make([]string, 0, n)
			for len(keys) < n {
				key := randomKey(rng)
				if _, seen := unique[key]; seen {
					continue
				}
				unique[key] = struct{}{}
				keys = append(keys, key)
			}

			idx := create()
			idx.BatchInsert(keys, index.BatchOptions{Dedup: true})
			for _, key := range keys {
				require.True(idx.Search(key), "key %q should be found", key)
			}

			deleted, missing := idx.BatchDelete(keys, index.BatchOptions{Dedup: true})
			require.Equal(n, deleted)
			require.Zero(missing)
			require.Equal(1, idx.NodeCount(), "only the root should remain")
		})
	}
}

func randomKey(rng *rand.Rand) string {
	alphabet := "abcdef"
	length := 1 + rng.Intn(12)
	key := make([]byte, length)
	for i := range key {
		key[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(key)
}

func BenchmarkIndexes_BatchInsert(b *testing.B) {
	for name, create := range initIndexes() {
		for _, n := range []int{1_000, 10_000} {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				rng := rand.New(rand.NewSource(42))
				keys := make([]string, n)
				for i := range keys {
					keys[i] = randomKey(rng)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					idx := create()
					idx.BatchInsert(keys, index.BatchOptions{Dedup: true})
				}
			})
		}
	}
}
