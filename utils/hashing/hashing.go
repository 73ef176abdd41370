package hashing

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Index maps key into a bucket index in [0, modulus). It is a pure
// function of (key, modulus): equal inputs always yield equal indices.
// modulus must be positive.
func Index[K constraints.Integer](key K, modulus int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return int(xxhash.Sum64(buf[:]) % uint64(modulus))
}
