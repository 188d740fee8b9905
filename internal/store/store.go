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

// Package store defines the minimal key/value contract the persisted
// state layout requires: get/set/delete/iterate with an exclusive
// start-after cursor, shared by the auction engine, the dividend
// engine, and the resolver as three independent keyspaces
// distinguished only by key prefix.
package store

// Store is the storage contract every engine depends on. Callers
// namespace their own keys (e.g. "auction/name/<name>"); Store itself
// is a flat byte-keyed map.
type Store interface {
	// Get returns the value for key, or ok=false if absent.
	Get(key []byte) (value []byte, ok bool, err error)

	// IteratePrefix walks every key with the given prefix in
	// lexicographic order, starting at cursor (inclusive), calling fn
	// for each. fn returns false to stop early. Callers wanting an
	// exclusive start-after semantics pass a cursor one byte past the
	// key they want to exclude (see auction.Engine.iterate).
	IteratePrefix(prefix, cursor []byte, fn func(key, value []byte) (cont bool, err error)) error

	// NewBatch begins a set of mutations to be committed atomically.
	NewBatch() Batch

	// Close releases any underlying resources.
	Close() error
}

// Batch buffers a set of writes for atomic commit. A Batch that is
// never committed has no effect: either both the new state and the
// outbound transfers it produced are committed, or neither is.
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Commit() error
}
