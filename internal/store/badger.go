// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/nametax/engine/internal/logging"
)

// slogLike is the subset of *slog.Logger the badger shim needs, kept
// narrow so this file doesn't have to import log/slog directly.
type slogLike interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// BadgerStore is the production Store backed by a BadgerDB instance,
// generalizing the ad hoc storage structs in internal/storage and
// internal/oracle/lending_storage.go into one reusable abstraction
// shared by every engine.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (creating if needed) a BadgerDB at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(newBadgerLogger()).
		// The default INFO logging is noisy for an embedded KV store.
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: failed to open badger at %q: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) Get(key []byte) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte{}, val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (s *BadgerStore) IteratePrefix(prefix, cursor []byte, fn func(key, value []byte) (bool, error)) error {
	if cursor == nil {
		cursor = prefix
	}
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = append([]byte{}, prefix...)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(cursor); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			keyCopy := append([]byte{}, item.Key()...)
			var valCopy []byte
			if err := item.Value(func(val []byte) error {
				valCopy = append([]byte{}, val...)
				return nil
			}); err != nil {
				return err
			}
			cont, err := fn(keyCopy, valCopy)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
		return nil
	})
}

// badgerBatch buffers writes in memory and commits them in a single
// badger transaction, giving callers the atomic all-or-nothing write a
// dispatch requires.
type badgerBatch struct {
	db      *badger.DB
	sets    map[string][]byte
	deletes map[string]struct{}
	order   [][]byte // preserves insertion order for determinism
}

func (s *BadgerStore) NewBatch() Batch {
	return &badgerBatch{
		db:      s.db,
		sets:    make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}
}

func (b *badgerBatch) Set(key, value []byte) {
	k := string(key)
	if _, existed := b.sets[k]; !existed {
		if _, deleted := b.deletes[k]; !deleted {
			b.order = append(b.order, append([]byte{}, key...))
		}
	}
	delete(b.deletes, k)
	b.sets[k] = append([]byte{}, value...)
}

func (b *badgerBatch) Delete(key []byte) {
	k := string(key)
	if _, existed := b.deletes[k]; !existed {
		if _, had := b.sets[k]; !had {
			b.order = append(b.order, append([]byte{}, key...))
		}
	}
	delete(b.sets, k)
	b.deletes[k] = struct{}{}
}

func (b *badgerBatch) Commit() error {
	return b.db.Update(func(txn *badger.Txn) error {
		for _, key := range b.order {
			k := string(key)
			if val, ok := b.sets[k]; ok {
				if err := txn.Set(key, val); err != nil {
					return err
				}
				continue
			}
			if _, ok := b.deletes[k]; ok {
				if err := txn.Delete(key); err != nil && err != badger.ErrKeyNotFound {
					return err
				}
			}
		}
		return nil
	})
}

// badgerLogger adapts the engine's slog logger to badger's Logger
// interface, the same shim internal/storage/storage.go uses.
type badgerLogger struct {
	log slogLike
}

func newBadgerLogger() *badgerLogger {
	return &badgerLogger{log: logging.GetLogger()}
}

func (b *badgerLogger) Warningf(format string, args ...any) {
	b.log.Warn(fmt.Sprintf(format, args...))
}

func (b *badgerLogger) Errorf(format string, args ...any) {
	b.log.Error(fmt.Sprintf(format, args...))
}

func (b *badgerLogger) Infof(format string, args ...any) {
	b.log.Info(fmt.Sprintf(format, args...))
}

func (b *badgerLogger) Debugf(format string, args ...any) {
	b.log.Debug(fmt.Sprintf(format, args...))
}
