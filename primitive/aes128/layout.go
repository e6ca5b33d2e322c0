package aes128

import "crypto/aes"

// Ciphertext layout for n blocks:
//
//	+--------------------+-------------+----------+--------------------+
//	| f[0..n) 16 B each  | xt[0..n) 1B | nonce 16 | r[0..n) 32 B each  |
//	+--------------------+-------------+----------+--------------------+
//	 \________ left (deterministic) _/ \________ right (randomized) __/
//
// f[i] is the PRF output for the plaintext prefix and permuted octet i,
// xt[i] the permuted octet, and r[i] one bit for each of the 256 values
// an octet can take.
const (
	blockSize      = aes.BlockSize
	domainSize     = 256
	rightBlockSize = domainSize / 8

	// MaxBlocks is the largest supported block count: one octet per block
	// of a 64-bit canonical plaintext.
	MaxBlocks = 8
)

// LeftSize returns the length of the left ciphertext for n blocks.
func LeftSize(n int) int {
	return n*blockSize + n
}

// RightSize returns the length of the right ciphertext for n blocks.
func RightSize(n int) int {
	return blockSize + n*rightBlockSize
}

// Size returns the serialized ciphertext length for n blocks; 408 for n = 8.
func Size(n int) int {
	if n < 1 || n > MaxBlocks {
		return 0
	}

	return LeftSize(n) + RightSize(n)
}

func fOffset(i int) int { return i * blockSize }

func xtOffset(n int) int { return n * blockSize }

func nonceOffset(n int) int { return LeftSize(n) }

func rightOffset(n, i int) int { return LeftSize(n) + blockSize + i*rightBlockSize }

func getBit(block []byte, j byte) byte {
	return (block[j>>3] >> (j & 7)) & 1
}

func setBit(block []byte, j byte, bit byte) {
	block[j>>3] |= (bit & 1) << (j & 7)
}
