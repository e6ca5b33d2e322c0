// Package endian provides byte order utilities for splitting canonical
// plaintexts into ORE blocks.
//
// Block ORE compares ciphertexts block by block and decides the order at
// the first block that differs. For that to match the unsigned order of a
// canonical uint64, block 0 must hold the most significant bits, so the
// plaintext order is always big-endian regardless of the host:
//
//	engine := endian.GetPlaintextEngine()
//	blocks := endian.AppendBlocks(nil, engine, canonical)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetPlaintextEngine returns the engine that lays out canonical plaintexts
// so that lexicographic block order equals unsigned integer order.
func GetPlaintextEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsOrderPreserving reports whether engine lays out uint64 values so that
// byte-wise comparison agrees with numeric comparison.
func IsOrderPreserving(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// AppendBlocks appends the eight one-octet blocks of v to dst in the byte
// order of engine and returns the extended slice.
func AppendBlocks(dst []byte, engine EndianEngine, v uint64) []byte {
	return engine.AppendUint64(dst, v)
}
