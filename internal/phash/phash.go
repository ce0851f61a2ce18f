// Package phash builds single-probe perfect hash tables over small, fixed key sets.
//
// The hash function lives here so that the generator and the generated lookup
// code hash identically. A table maps Sum(seed, key) & mask to index+1 of the
// key in its source list; zero marks an empty slot. Lookups probe exactly one
// slot and confirm the hit with a string comparison.
package phash

import (
	"errors"
	"fmt"
)

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// MaxKeys is the largest key set a table can index. Slots hold index+1 in a byte.
const MaxKeys = 255

// Default search limits.
const (
	DefaultMaxSeeds = 1 << 16
	DefaultMaxSize  = 1 << 16
)

var (
	// ErrNoKeys is returned when Build is given an empty key set.
	ErrNoKeys = errors.New("phash: no keys")
	// ErrTooManyKeys is returned when the key set exceeds MaxKeys.
	ErrTooManyKeys = fmt.Errorf("phash: more than %d keys", MaxKeys)
	// ErrNoSeed is returned when no seed within the limits places every key.
	ErrNoSeed = errors.New("phash: no collision-free seed within limits")
)

// DuplicateKeyError reports a key that appears twice in the input.
type DuplicateKeyError struct {
	Key    string
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("phash: duplicate key %q at %d and %d", e.Key, e.First, e.Second)
}

// Sum returns the seeded FNV-1a hash of s, passed through the murmur3 finalizer
// so that the low bits used for masking depend on every input byte.
func Sum(seed uint32, s string) uint32 {
	h := offset32 ^ seed
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return mix(h)
}

// SumBytes is Sum over a byte slice. Sum(seed, string(b)) == SumBytes(seed, b).
func SumBytes(seed uint32, b []byte) uint32 {
	h := offset32 ^ seed
	for i := 0; i < len(b); i++ {
		h ^= uint32(b[i])
		h *= prime32
	}
	return mix(h)
}

func mix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Options bounds the seed search.
type Options struct {
	// MaxSeeds is the number of seeds tried per table size (default DefaultMaxSeeds).
	MaxSeeds uint32
	// MaxSize is the largest table size tried (default DefaultMaxSize).
	MaxSize int
}

func (o Options) withDefaults() Options {
	if o.MaxSeeds == 0 {
		o.MaxSeeds = DefaultMaxSeeds
	}
	if o.MaxSize == 0 {
		o.MaxSize = DefaultMaxSize
	}
	return o
}

// Table is a built perfect hash table.
type Table struct {
	Seed  uint32
	Slots []uint8
	keys  []string
}

// Size returns the number of slots.
func (t *Table) Size() int { return len(t.Slots) }

// Mask returns the mask applied to Sum before indexing Slots.
func (t *Table) Mask() uint32 { return uint32(len(t.Slots) - 1) }

// Lookup returns the source index of key, if present.
func (t *Table) Lookup(key string) (int, bool) {
	i := t.Slots[Sum(t.Seed, key)&t.Mask()]
	if i == 0 || t.keys[i-1] != key {
		return 0, false
	}
	return int(i) - 1, true
}

// Build searches for the smallest table and lowest seed that place every key
// in its own slot. Sizes start at the power of two at or above twice the key
// count. The search is deterministic: the same keys always yield the same table.
func Build(keys []string, opts Options) (*Table, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	if len(keys) > MaxKeys {
		return nil, ErrTooManyKeys
	}

	seen := make(map[string]int, len(keys))
	for i, k := range keys {
		if j, ok := seen[k]; ok {
			return nil, &DuplicateKeyError{Key: k, First: j, Second: i}
		}
		seen[k] = i
	}

	opts = opts.withDefaults()
	for size := nextPow2(2 * len(keys)); size <= opts.MaxSize; size <<= 1 {
		slots := make([]uint8, size)
		mask := uint32(size - 1)
		for seed := uint32(0); seed < opts.MaxSeeds; seed++ {
			if place(keys, seed, mask, slots) {
				owned := make([]string, len(keys))
				copy(owned, keys)
				return &Table{Seed: seed, Slots: slots, keys: owned}, nil
			}
		}
	}
	return nil, ErrNoSeed
}

// place fills slots for seed, reporting false on the first collision.
func place(keys []string, seed, mask uint32, slots []uint8) bool {
	clear(slots)
	for i, k := range keys {
		j := Sum(seed, k) & mask
		if slots[j] != 0 {
			return false
		}
		slots[j] = uint8(i + 1)
	}
	return true
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
