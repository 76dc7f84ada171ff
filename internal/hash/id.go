package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Uint64 computes the xxHash64 of v's little-endian byte representation,
// used by the auto-encoder's HyperLogLog sketch to hash sample values
// without round-tripping them through a string.
func Uint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)

	return xxhash.Sum64(b[:])
}
