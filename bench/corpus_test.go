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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCorpusStore_StoredCorporaCanBeRetrieved(t *testing.T) {
	require := require.New(t)

	store, err := OpenCorpusStore(t.TempDir())
	require.NoError(err)
	defer store.Close()

	keys := []string{"car", "cart", "carton", "dog"}
	require.NoError(store.Put("words-4", keys))

	restored, err := store.Get("words-4")
	require.NoError(err)
	require.Equal(keys, restored)
}

func TestCorpusStore_PutReplacesPreviousContent(t *testing.T) {
	require := require.New(t)

	store, err := OpenCorpusStore(t.TempDir())
	require.NoError(err)
	defer store.Close()

	require.NoError(store.Put("words", []string{"old"}))
	require.NoError(store.Put("words", []string{"new", "content"}))

	restored, err := store.Get("words")
	require.NoError(err)
	require.Equal([]string{"new", "content"}, restored)
}

func TestCorpusStore_UnknownNamesReportErrNoCorpus(t *testing.T) {
	require := require.New(t)

	store, err := OpenCorpusStore(t.TempDir())
	require.NoError(err)
	defer store.Close()

	_, err = store.Get("missing")
	require.ErrorIs(err, ErrNoCorpus)
}

func TestCorpusStore_EmptyCorpusRoundTripsToNil(t *testing.T) {
	require := require.New(t)

	store, err := OpenCorpusStore(t.TempDir())
	require.NoError(err)
	defer store.Close()

	require.NoError(store.Put("empty", nil))
	restored, err := store.Get("empty")
	require.NoError(err)
	require.Nil(restored)
}

func TestCorpusStore_NamesListsAllStoredCorpora(t *testing.T) {
	require := require.New(t)

	store, err := OpenCorpusStore(t.TempDir())
	require.NoError(err)
	defer store.Close()

	names, err := store.Names()
	require.NoError(err)
	require.Empty(names)

	require.NoError(store.Put("ips-1k", []string{"10.0.0.1"}))
	require.NoError(store.Put("words-1k", []string{"car"}))

	names, err = store.Names()
	require.NoError(err)
	require.ElementsMatch([]string{"ips-1k", "words-1k"}, names)
}

func TestCorpusStore_CorruptedContentIsDetected(t *testing.T) {
	require := require.New(t)

	store, err := OpenCorpusStore(t.TempDir())
	require.NoError(err)
	defer store.Close()

	require.NoError(store.Put("words", []string{"car", "dog"}))

	// Overwrite the stored checksum to simulate silent corruption.
	wrong := make([]byte, 32)
	require.NoError(store.db.Put([]byte(sumKeyPrefix+"words"), wrong, nil))

	_, err = store.Get("words")
	require.ErrorContains(err, "checksum mismatch")
}
