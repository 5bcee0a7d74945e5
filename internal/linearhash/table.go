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

// Package linearhash implements an in-memory hash table that grows by
// linear hashing: one bucket split per overflow, driven by a split pointer,
// instead of a stop-the-world rehash at a load-factor threshold.
//
// The table keeps a split round d and a split pointer s. Buckets below s
// have already been split in the current round and are addressed with the
// fine hash H(k) mod 2^(d+1); the rest still use the coarse H(k) mod 2^d.
// Each overflow splits exactly the bucket at s, whether or not it is the
// one that overflowed, which keeps every rehash local to a single bucket.
package linearhash

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/gammazero/deque"

	"github.com/maypok86/lhset/internal/xmath"
)

// Table is a set of keys addressed by linear hashing. It is not safe for
// concurrent use.
type Table[K comparable] struct {
	dir directory[K]
	// splitRound is d: the coarse hash of the current round spans 2^d
	// buckets.
	splitRound uint64
	// splitIndex is s: the next bucket to be split in this round.
	splitIndex uint64
	size       int
	base       int
	hash       func(K) uint64
	// pending holds the keys drained from a bucket mid-split until they are
	// reinserted under the advanced (d, s). Reused across splits.
	pending *deque.Deque[K]
}

// New constructs an empty table with d=1: two buckets, so that both hash
// functions of the address pair are meaningful from the first insert. A
// single-bucket initial state would degenerate the coarse hash. With
// WithPresizedFor the table instead starts at a larger round d with 2^d
// buckets and s=0.
func New[K comparable](opts ...Option[K]) *Table[K] {
	o := defaultOptions[K]()
	for _, opt := range opts {
		opt(o)
	}

	splitRound := uint64(1)
	if o.presizeFor > o.base*2 {
		want := xmath.RoundUpPowerOf264(uint64((o.presizeFor + o.base - 1) / o.base))
		splitRound = uint64(bits.Len64(want)) - 1
	}

	return &Table[K]{
		dir:        newDirectory[K](1<<splitRound, o.base),
		splitRound: splitRound,
		base:       o.base,
		hash:       o.hasher,
		pending:    deque.New[K](),
	}
}

// address returns the bucket index for key under the current (d, s).
// Buckets already split in this round are addressed with the fine hash.
func (t *Table[K]) address(key K) uint64 {
	h := t.hash(key)
	i := h & (1<<t.splitRound - 1)
	if i < t.splitIndex {
		i = h & (1<<(t.splitRound+1) - 1)
	}
	return i
}

func (t *Table[K]) Contains(key K) bool {
	return t.dir.at(int(t.address(key))).contains(key)
}

// Insert adds key to the table and reports whether it was newly inserted.
// If the target bucket was already full, the insert performs exactly one
// split of the bucket at the split pointer. A bucket that overflows again
// while its keys are being redistributed does not chain another split.
func (t *Table[K]) Insert(key K) bool {
	b := t.dir.at(int(t.address(key)))
	if b.contains(key) {
		return false
	}
	wasFull := b.full()
	b.insert(key, t.base)
	t.size++
	if wasFull {
		t.split()
	}
	return true
}

// reinsert is the splitting-suppressed insert path used while draining the
// split bucket. The drained keys are distinct by construction, so no
// membership check is repeated here beyond the one in bucket.insert.
func (t *Table[K]) reinsert(key K) {
	t.dir.at(int(t.address(key))).insert(key, t.base)
	t.size++
}

// split doubles the directory if this round has not done so yet, drains the
// bucket at the split pointer, advances (d, s) and redistributes the
// drained keys under the new address function. Each key lands either back
// in the drained bucket or in its sibling half a directory away.
func (t *Table[K]) split() {
	if t.dir.len() == 1<<t.splitRound {
		t.dir.grow(t.dir.len()<<1, t.base)
	}

	victim := t.dir.at(int(t.splitIndex))
	for i := 0; i < victim.size(); i++ {
		t.pending.PushBack(victim.at(i))
	}
	t.size -= victim.size()
	victim.reset(t.base)

	if t.splitIndex+1 >= 1<<t.splitRound {
		t.splitIndex = 0
		t.splitRound++
	} else {
		t.splitIndex++
	}

	for t.pending.Len() > 0 {
		t.reinsert(t.pending.PopFront())
	}
}

// Delete removes key and returns the number of removed keys (0 or 1). The
// directory never shrinks on delete.
func (t *Table[K]) Delete(key K) int {
	removed := t.dir.at(int(t.address(key))).delete(key)
	t.size -= removed
	return removed
}

func (t *Table[K]) Size() int {
	return t.size
}

func (t *Table[K]) IsEmpty() bool {
	return t.size == 0
}

// Clear resets the table to an empty two-bucket state (d=1, s=0), keeping
// the bucket size and hasher. A pre-sized directory is not restored.
func (t *Table[K]) Clear() {
	t.dir = newDirectory[K](2, t.base)
	t.splitRound = 1
	t.splitIndex = 0
	t.size = 0
	t.pending.Clear()
}

// Range calls f for every stored key in (bucket, slot) order until f
// returns false. The order is deterministic for a fixed table state but
// carries no meaning across insertion histories.
func (t *Table[K]) Range(f func(key K) bool) {
	for i := 0; i < t.dir.len(); i++ {
		b := t.dir.at(i)
		for slot := 0; slot < b.size(); slot++ {
			if !f(b.at(slot)) {
				return
			}
		}
	}
}

// Clone returns a deep copy sharing no storage with t. The copy also
// shares t's split history, which callers must not rely on: equality of
// tables is defined over elements only.
func (t *Table[K]) Clone() *Table[K] {
	clone := &Table[K]{
		dir:        newDirectory[K](t.dir.len(), t.base),
		splitRound: t.splitRound,
		splitIndex: t.splitIndex,
		size:       t.size,
		base:       t.base,
		hash:       t.hash,
		pending:    deque.New[K](),
	}
	for i := 0; i < t.dir.len(); i++ {
		src := t.dir.at(i)
		dst := clone.dir.at(i)
		for slot := 0; slot < src.size(); slot++ {
			dst.insert(src.at(slot), t.base)
		}
	}
	return clone
}

// Find returns a cursor positioned at key, or the end cursor if key is not
// stored.
func (t *Table[K]) Find(key K) Cursor[K] {
	i := int(t.address(key))
	b := t.dir.at(i)
	slot := b.indexOf(key)
	if slot == b.size() {
		return endCursor(t)
	}
	return Cursor[K]{table: t, bucket: i, slot: slot}
}

// Cursor returns a cursor at the first stored key, or the end cursor for an
// empty table.
func (t *Table[K]) Cursor() Cursor[K] {
	return newCursor(t, 0, 0)
}

// Dump writes a human-readable view of the table: the split state followed
// by one line per bucket, the split pointer marked with an arrow.
func (t *Table[K]) Dump(w io.Writer) {
	fmt.Fprintf(w, "d = %d, s = %d, m = %d, n = %d\n", t.splitRound, t.splitIndex, t.dir.len(), t.size)
	for i := 0; i < t.dir.len(); i++ {
		marker := "  "
		if uint64(i) == t.splitIndex {
			marker = "->"
		}
		b := t.dir.at(i)
		fmt.Fprintf(w, "%s %4d (size %d, cap %d) |", marker, i, b.size(), cap(b.slots))
		for slot := 0; slot < b.size(); slot++ {
			fmt.Fprintf(w, " %v", b.at(slot))
		}
		fmt.Fprintln(w)
	}
}
