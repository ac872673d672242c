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
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/sha3"
)

// ErrNoCorpus is returned when a requested corpus is not in the store.
var ErrNoCorpus = errors.New("no such corpus")

// CorpusStore persists generated key corpora in a LevelDB database, so
// benchmark runs can be repeated on identical inputs. Corpora are stored
// snappy-compressed together with a content checksum verified on load.
//
// The store holds harness artifacts only; the index engines themselves
// remain purely in-memory.
type CorpusStore struct {
	db *leveldb.DB
}

const (
	corpusKeyPrefix = "corpus/"
	sumKeyPrefix    = "sum/"
)

// OpenCorpusStore opens or creates a corpus database in the given directory.
func OpenCorpusStore(dir string) (*CorpusStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database %s: %w", dir, err)
	}
	return &CorpusStore{db: db}, nil
}

// Put stores a corpus under the given name, replacing any previous content.
func (s *CorpusStore) Put(name string, keys []string) error {
	payload := []byte(strings.Join(keys, "\n"))
	sum := sha3.Sum256(payload)

	batch := new(leveldb.Batch)
	batch.Put([]byte(corpusKeyPrefix+name), snappy.Encode(nil, payload))
	batch.Put([]byte(sumKeyPrefix+name), sum[:])
	return s.db.Write(batch, nil)
}

// Get loads the corpus stored under the given name. It fails with
// ErrNoCorpus if the name is unknown and reports corruption when the stored
// checksum does not match the decompressed content.
func (s *CorpusStore) Get(name string) ([]string, error) {
	compressed, err := s.db.Get([]byte(corpusKeyPrefix+name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoCorpus, name)
	}
	if err != nil {
		return nil, err
	}
	payload, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress corpus %s: %w", name, err)
	}

	storedSum, err := s.db.Get([]byte(sumKeyPrefix+name), nil)
	if err != nil {
		return nil, fmt.Errorf("missing checksum for corpus %s: %w", name, err)
	}
	sum := sha3.Sum256(payload)
	if !bytes.Equal(sum[:], storedSum) {
		return nil, fmt.Errorf("corpus %s is corrupted: checksum mismatch", name)
	}

	if len(payload) == 0 {
		return nil, nil
	}
	return strings.Split(string(payload), "\n"), nil
}

// Names lists the names of all stored corpora.
func (s *CorpusStore) Names() ([]string, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(corpusKeyPrefix)), nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
		names = append(names, string(iter.Key()[len(corpusKeyPrefix):]))
	}
	return names, iter.Error()
}

// Close closes the underlying database.
func (s *CorpusStore) Close() error {
	return s.db.Close()
}
