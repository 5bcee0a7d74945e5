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

package linearhash

// Cursor is a forward cursor over the table's keys in (bucket, slot) order.
// Any mutation of the table invalidates every cursor: splits move buckets
// into a new directory, bucket regrowth moves slots into a new array and
// delete reorders slots. A cursor over a mutated table is not validated.
type Cursor[K comparable] struct {
	table  *Table[K]
	bucket int
	slot   int
}

// newCursor positions a cursor at (bucket, slot), skipping forward to the
// first non-empty bucket if slot points past the bucket's last key.
func newCursor[K comparable](t *Table[K], bucket, slot int) Cursor[K] {
	c := Cursor[K]{table: t, bucket: bucket, slot: slot}
	if bucket < t.dir.len() && slot >= t.dir.at(bucket).size() {
		c.slot = 0
		c.bucket++
		c.skipEmpty()
	}
	return c
}

func endCursor[K comparable](t *Table[K]) Cursor[K] {
	return Cursor[K]{table: t, bucket: t.dir.len()}
}

func (c *Cursor[K]) skipEmpty() {
	for c.bucket < c.table.dir.len() && c.table.dir.at(c.bucket).size() == 0 {
		c.bucket++
	}
}

// Valid reports whether the cursor points at a key. The end cursor is not
// valid.
func (c *Cursor[K]) Valid() bool {
	return c.bucket < c.table.dir.len()
}

// Key returns the key under the cursor. The cursor must be valid.
func (c *Cursor[K]) Key() K {
	return c.table.dir.at(c.bucket).at(c.slot)
}

// Next advances to the next key in (bucket, slot) order, skipping empty
// buckets. Advancing the end cursor is a no-op.
func (c *Cursor[K]) Next() {
	if !c.Valid() {
		return
	}
	c.slot++
	if c.slot < c.table.dir.at(c.bucket).size() {
		return
	}
	c.slot = 0
	c.bucket++
	c.skipEmpty()
}
