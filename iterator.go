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

package lhset

import (
	"github.com/maypok86/lhset/internal/linearhash"
)

// Iterator is a read-only forward iterator over a Set. It is invalidated
// by any mutation of the set: inserts can move buckets into a new
// directory or slots into a new array, and erase reorders slots. Do not
// retain an Iterator across mutations; to replace a key, erase it and
// insert the new one.
type Iterator[K comparable] struct {
	cursor linearhash.Cursor[K]
}

// Valid reports whether the iterator points at a key. An exhausted
// iterator and the result of Find for an absent key are not valid.
func (it *Iterator[K]) Valid() bool {
	return it.cursor.Valid()
}

// Key returns the key under the iterator. It must only be called on a
// valid iterator.
func (it *Iterator[K]) Key() K {
	return it.cursor.Key()
}

// Next advances to the next key. Advancing an exhausted iterator is a
// no-op.
func (it *Iterator[K]) Next() {
	it.cursor.Next()
}
