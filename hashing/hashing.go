// Package hashing provides the hash functions used to fingerprint sorted key sequences.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
// Sha256, XXH3 and XXH64 are all HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA-256 of the given Hashable.
func Sha256(hashable Hashable) (string, error) {
	return sum(sha256.New(), hashable)
}

// XXH3 returns the hex-encoded 64-bit XXH3 of the given Hashable. It's much
// faster than Sha256 and fine for change detection, but not collision resistant.
func XXH3(hashable Hashable) (string, error) {
	return sum(xxh3.New(), hashable)
}

// XXH64 returns the hex-encoded 64-bit xxHash of the given Hashable.
func XXH64(hashable Hashable) (string, error) {
	return sum(xxhash.New64(), hashable)
}

func sum(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
