// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
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

// Package lhset provides an unordered in-memory set backed by linear
// hashing. The directory grows one bucket split at a time, so the cost of
// rehashing is amortized across inserts instead of being paid in a single
// full rebuild.
//
// A Set is not safe for concurrent use; callers that share one across
// goroutines must serialize access with an outer mutex.
package lhset

import (
	"io"
	"iter"

	"github.com/maypok86/lhset/internal/linearhash"
)

// Set is an unordered set of keys. The zero value is not usable; construct
// sets with New, Must, From or FromSeq.
type Set[K comparable] struct {
	table *linearhash.Table[K]
}

// New constructs an empty Set with the given options. A nil Options is
// equivalent to the defaults.
func New[K comparable](o *Options[K]) (*Set[K], error) {
	if o == nil {
		o = &Options[K]{}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Set[K]{
		table: linearhash.New[K](o.toTableOptions()...),
	}, nil
}

// Must is like New, but panics when the options are invalid.
func Must[K comparable](o *Options[K]) *Set[K] {
	s, err := New[K](o)
	if err != nil {
		panic(err)
	}
	return s
}

// From constructs a Set holding the given keys. Duplicates collapse.
func From[K comparable](o *Options[K], keys ...K) (*Set[K], error) {
	if o == nil {
		o = &Options[K]{}
	}
	if o.InitialCapacity == 0 {
		o = &Options[K]{
			BucketSize:      o.BucketSize,
			Hasher:          o.Hasher,
			InitialCapacity: len(keys),
		}
	}
	s, err := New[K](o)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		s.table.Insert(key)
	}
	return s, nil
}

// FromSeq constructs a Set holding every key the sequence yields.
// Duplicates collapse.
func FromSeq[K comparable](o *Options[K], seq iter.Seq[K]) (*Set[K], error) {
	s, err := New[K](o)
	if err != nil {
		return nil, err
	}
	s.InsertAll(seq)
	return s, nil
}

// Insert adds key to the set and reports whether it was newly inserted.
// Inserting a key that is already present leaves the set unchanged.
func (s *Set[K]) Insert(key K) bool {
	return s.table.Insert(key)
}

// InsertAll inserts every key the sequence yields.
func (s *Set[K]) InsertAll(seq iter.Seq[K]) {
	for key := range seq {
		s.table.Insert(key)
	}
}

// Erase removes key and returns the number of removed keys: 1 if it was
// present, 0 otherwise.
func (s *Set[K]) Erase(key K) int {
	return s.table.Delete(key)
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.table.Contains(key)
}

// Count returns the number of stored keys equal to key: 1 or 0.
func (s *Set[K]) Count(key K) int {
	if s.table.Contains(key) {
		return 1
	}
	return 0
}

// Find returns an iterator positioned at key. The iterator is not valid if
// key is absent.
func (s *Set[K]) Find(key K) Iterator[K] {
	return Iterator[K]{cursor: s.table.Find(key)}
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.table.Size()
}

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.table.IsEmpty()
}

// Clear removes all keys, resetting the set to an empty two-bucket
// directory. The pre-sizing from InitialCapacity is not restored.
func (s *Set[K]) Clear() {
	s.table.Clear()
}

// Swap exchanges the contents of s and other in O(1).
func (s *Set[K]) Swap(other *Set[K]) {
	s.table, other.table = other.table, s.table
}

// Clone returns a copy of the set sharing no storage with s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{
		table: s.table.Clone(),
	}
}

// Equal reports whether s and other hold the same keys. Two sets with the
// same keys are equal no matter how their directories grew: the split
// state is not observable.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.table.Size() != other.table.Size() {
		return false
	}
	equal := true
	s.table.Range(func(key K) bool {
		equal = other.table.Contains(key)
		return equal
	})
	return equal
}

// All returns an iterator over the stored keys. The order is deterministic
// for an unchanged set but carries no meaning; two sets with the same keys
// may enumerate them differently. The set must not be mutated during
// iteration.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.table.Range(yield)
	}
}

// Iterator returns a forward iterator positioned at the first key. Any
// mutation of the set invalidates it.
func (s *Set[K]) Iterator() Iterator[K] {
	return Iterator[K]{cursor: s.table.Cursor()}
}

// Dump writes a diagnostic view of the set's buckets and split state to w.
// The format is unspecified and may change.
func (s *Set[K]) Dump(w io.Writer) {
	s.table.Dump(w)
}
