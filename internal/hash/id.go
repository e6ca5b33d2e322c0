package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// stringDomainKey is the fixed BLAKE3 key for hashing string plaintexts.
// Changing it changes the canonical encoding of every string, so it must
// stay constant. ASCII of the domain name, zero-padded to 32 bytes.
var stringDomainKey = [32]byte{
	'o', 'r', 'e', 'e', 'n', 'c', '.', 'p', 'l', 'a', 'i', 'n', 't', 'e', 'x', 't',
	'.', 's', 't', 'r', 'i', 'n', 'g', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// String maps the bytes of a string plaintext to a 64-bit value using the
// first eight bytes (big-endian) of a keyed BLAKE3 digest.
//
// Equal inputs map to equal values. The numeric order of the result is
// unrelated to the lexicographic order of the input.
func String(data []byte) uint64 {
	// NewKeyed only fails for keys that are not 32 bytes long.
	hasher, err := blake3.NewKeyed(stringDomainKey[:])
	if err != nil {
		panic("hash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	_, _ = hasher.Write(data)

	return binary.BigEndian.Uint64(hasher.Sum(nil)[:8])
}

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
