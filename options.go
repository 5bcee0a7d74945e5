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
	"errors"

	"github.com/maypok86/lhset/internal/linearhash"
)

// Options should be passed to New to construct a Set.
type Options[K comparable] struct {
	// BucketSize is the base bucket capacity b. Every bucket starts with b
	// slots and regrows by b when it overflows; an overflow is also what
	// drives a split. Defaults to 5.
	BucketSize int
	// Hasher replaces the default hash function. The default is a per-set
	// seeded hasher, so bucket placement differs between runs and between
	// sets; pass a fixed Hasher when placement must be reproducible. The
	// set calls Hasher as if it were pure: the same key must always
	// produce the same value.
	Hasher func(K) uint64
	// InitialCapacity pre-sizes the directory for an expected number of
	// keys. Providing a large enough estimate avoids the early cascade of
	// splits while a set is filled from a known range; setting it
	// unnecessarily high wastes memory. The set still starts with at least
	// two buckets.
	InitialCapacity int
}

func (o *Options[K]) validate() error {
	if o.BucketSize < 0 {
		return errors.New("lhset: bucket size should be positive")
	}
	if o.InitialCapacity < 0 {
		return errors.New("lhset: initial capacity should be positive")
	}
	return nil
}

func (o *Options[K]) toTableOptions() []linearhash.Option[K] {
	var opts []linearhash.Option[K]
	if o.BucketSize > 0 {
		opts = append(opts, linearhash.WithBucketSize[K](o.BucketSize))
	}
	if o.Hasher != nil {
		opts = append(opts, linearhash.WithHasher[K](o.Hasher))
	}
	if o.InitialCapacity > 0 {
		opts = append(opts, linearhash.WithPresizedFor[K](o.InitialCapacity))
	}
	return opts
}
