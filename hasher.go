package lhset

import (
	"unsafe"

	"github.com/zeebo/xxh3"
)

type hasher[K comparable] struct {
	keyIsString bool
	keySize     int
}

func newHasher[K comparable]() *hasher[K] {
	h := &hasher[K]{}

	var key K
	switch (any(key)).(type) {
	case string:
		h.keyIsString = true
	default:
		h.keySize = int(unsafe.Sizeof(key))
	}

	return h
}

func (h *hasher[K]) hash(key K) uint64 {
	var strKey string
	if h.keyIsString {
		strKey = *(*string)(unsafe.Pointer(&key))
	} else {
		strKey = *(*string)(unsafe.Pointer(&struct {
			data unsafe.Pointer
			len  int
		}{unsafe.Pointer(&key), h.keySize}))
	}

	return xxh3.HashString(strKey)
}

// XXH3Hasher returns a hash function over the bytes of K using xxh3.
// Unlike the default per-set seeded hasher it is stable across sets and
// across process runs, which makes bucket placement reproducible.
//
// Strings are hashed by content. Any other K is hashed by its in-memory
// representation and must not contain pointers, interfaces or other
// indirect data, since for those the representation does not determine
// equality.
func XXH3Hasher[K comparable]() func(K) uint64 {
	h := newHasher[K]()
	return h.hash
}
