// Package primitive defines the contract between oreenc and an ORE
// engine.
//
// The encoding layer hands an engine canonical uint64 plaintexts and gets
// back opaque ciphertexts. It never looks inside them: serialization,
// deserialization and comparison all go through the engine. An engine can
// be linked in (see primitive/aes128) or front an out-of-process service.
//
// Engine implementations must be safe for concurrent use once constructed.
// Errors should wrap errs.ErrInitialization, errs.ErrEncryption,
// errs.ErrMalformedCiphertext or errs.ErrComparisonType so that callers can
// branch on them.
package primitive

import (
	"github.com/arloliu/oreenc/format"
)

// Ciphertext is an ORE ciphertext produced or parsed by an Engine.
type Ciphertext interface {
	// Bytes returns the fixed-length serialization of the ciphertext.
	// The returned slice is owned by the caller.
	Bytes() []byte

	// Blocks returns the number of ORE blocks in the ciphertext.
	Blocks() int

	// Scheme names the engine that produced the ciphertext.
	Scheme() string
}

// EqualityKeyer is implemented by ciphertexts that carry a deterministic
// component. EqualityKey returns the same value for two ciphertexts of the
// same plaintext under the same keys.
type EqualityKeyer interface {
	EqualityKey() uint64
}

// Handle encrypts canonical plaintexts under one pair of keys.
type Handle interface {
	Encrypt(canonical uint64) (Ciphertext, error)
}

// Engine is the capability interface of an ORE scheme.
type Engine interface {
	// Scheme names the engine. Ciphertexts of different schemes never compare.
	Scheme() string

	// New binds the PRF key k1 and PRP key k2 to the parameters p.
	New(k1, k2 []byte, p format.Params) (Handle, error)

	// Parse deserializes a ciphertext with the given block count.
	Parse(data []byte, blocks int) (Ciphertext, error)

	// Compare returns -1, 0 or +1 as the plaintext of a is less than, equal
	// to or greater than the plaintext of b.
	Compare(a, b Ciphertext) (int, error)

	// Size returns the serialized length of a ciphertext with the given
	// block count, or 0 when the engine does not support that count.
	Size(blocks int) int
}
