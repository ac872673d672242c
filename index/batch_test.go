// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold_FoldsCase(t *testing.T) {
	require := require.New(t)

	require.Equal("hello", Fold("Hello"))
	require.Equal("hello", Fold("HELLO"))
	require.Equal("strasse", Fold("Straße"))
	require.Equal("", Fold(""))
}

func TestIdentity_LeavesKeysUntouched(t *testing.T) {
	require := require.New(t)

	for _, key := range []string{"", "Hello", "HELLO", "Straße"} {
		require.Equal(key, Identity(key))
	}
}

func TestPrepareBatch_NormalizesSortsAndDeduplicates(t *testing.T) {
	tests := map[string]struct {
		keys    []string
		options BatchOptions
		want    []string
	}{
		"sorted and deduplicated": {
			keys:    []string{"Banana", "apple", "APPLE", "cherry", "banana"},
			options: BatchOptions{Dedup: true},
			want:    []string{"apple", "banana", "cherry"},
		},
		"sorted with duplicates kept": {
			keys:    []string{"b", "a", "a"},
			options: BatchOptions{},
			want:    []string{"a", "a", "b"},
		},
		"presorted skips sorting": {
			keys:    []string{"b", "a"},
			options: BatchOptions{Presorted: true},
			want:    []string{"b", "a"},
		},
		"presorted dedup removes adjacent duplicates only": {
			keys:    []string{"a", "a", "b", "a"},
			options: BatchOptions{Presorted: true, Dedup: true},
			want:    []string{"a", "b", "a"},
		},
		"empty batch": {
			keys:    nil,
			options: BatchOptions{Dedup: true},
			want:    []string{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			got := PrepareBatch(test.keys, Fold, test.options)
			require.Equal(test.want, got)
		})
	}
}

func TestPrepareBatch_DoesNotModifyInput(t *testing.T) {
	require := require.New(t)

	keys := []string{"C", "b", "A"}
	PrepareBatch(keys, Fold, BatchOptions{Dedup: true})
	require.Equal([]string{"C", "b", "A"}, keys)
}
