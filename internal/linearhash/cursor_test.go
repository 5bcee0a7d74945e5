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

import "testing"

func TestCursor_EmptyTable(t *testing.T) {
	t.Parallel()

	table := newIdentityTable(5)
	c := table.Cursor()
	if c.Valid() {
		t.Fatal("cursor over an empty table should be at end")
	}
	c.Next()
	if c.Valid() {
		t.Fatal("advancing the end cursor should be a no-op")
	}
}

func TestCursor_SkipsEmptyBuckets(t *testing.T) {
	t.Parallel()

	// Spread keys so that some buckets in between stay empty.
	table := newIdentityTable(5)
	for _, k := range []int{0, 2, 4, 6, 8, 10, 16, 20} {
		table.Insert(k)
	}

	seen := make(map[int]struct{})
	for c := table.Cursor(); c.Valid(); c.Next() {
		key := c.Key()
		if _, ok := seen[key]; ok {
			t.Fatalf("key %d yielded twice", key)
		}
		seen[key] = struct{}{}
	}
	if len(seen) != table.Size() {
		t.Fatalf("cursor yielded %d keys, table holds %d", len(seen), table.Size())
	}
}

func TestCursor_StartPastBucketEnd(t *testing.T) {
	t.Parallel()

	table := newIdentityTable(5)
	table.Insert(1) // bucket 1; bucket 0 stays empty

	c := newCursor(table, 0, 0)
	if !c.Valid() {
		t.Fatal("cursor should advance past the empty bucket")
	}
	if c.Key() != 1 {
		t.Fatalf("cursor at key %d, want 1", c.Key())
	}
	c.Next()
	if c.Valid() {
		t.Fatal("cursor past the single key should be at end")
	}
}

func TestCursor_Find(t *testing.T) {
	t.Parallel()

	table := newIdentityTable(5)
	for i := 0; i < 30; i++ {
		table.Insert(i)
	}

	for i := 0; i < 30; i++ {
		c := table.Find(i)
		if !c.Valid() {
			t.Fatalf("find(%d) returned the end cursor", i)
		}
		if c.Key() != i {
			t.Fatalf("find(%d) positioned at %d", i, c.Key())
		}
	}

	c := table.Find(1000)
	if c.Valid() {
		t.Fatal("find of an absent key should return the end cursor")
	}
}
