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

import (
	"github.com/dolthub/maphash"
)

const defaultBucketSize = 5

type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	base       int
	hasher     func(K) uint64
	presizeFor int
}

func defaultOptions[K comparable]() *options[K] {
	hasher := maphash.NewHasher[K]()
	return &options[K]{
		base:   defaultBucketSize,
		hasher: hasher.Hash,
	}
}

// WithHasher replaces the default per-table hasher. The same function must
// be used for the whole lifetime of the table.
func WithHasher[K comparable](hasher func(K) uint64) Option[K] {
	return func(o *options[K]) {
		o.hasher = hasher
	}
}

// WithBucketSize sets the base bucket capacity b. Buckets regrow by this
// amount when they overflow.
func WithBucketSize[K comparable](base int) Option[K] {
	return func(o *options[K]) {
		o.base = base
	}
}

// WithPresizedFor sizes the initial directory for an expected number of
// keys, avoiding the early cascade of splits when building from a known
// range.
func WithPresizedFor[K comparable](keys int) Option[K] {
	return func(o *options[K]) {
		o.presizeFor = keys
	}
}
