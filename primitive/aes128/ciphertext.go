package aes128

import (
	"fmt"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/internal/hash"
	"github.com/arloliu/oreenc/primitive"
)

// Ciphertext is a left/right block ORE ciphertext.
type Ciphertext struct {
	blocks int
	data   []byte
}

var (
	_ primitive.Ciphertext    = (*Ciphertext)(nil)
	_ primitive.EqualityKeyer = (*Ciphertext)(nil)
)

func newCiphertext(blocks int) *Ciphertext {
	return &Ciphertext{blocks: blocks, data: make([]byte, Size(blocks))}
}

// parseCiphertext copies data into a Ciphertext after checking its length.
func parseCiphertext(data []byte, blocks int) (*Ciphertext, error) {
	if blocks < 1 || blocks > MaxBlocks {
		return nil, fmt.Errorf("%w: block count %d outside 1..%d",
			errs.ErrMalformedCiphertext, blocks, MaxBlocks)
	}

	if want := Size(blocks); len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %d blocks",
			errs.ErrMalformedCiphertext, len(data), want, blocks)
	}

	return &Ciphertext{blocks: blocks, data: append([]byte(nil), data...)}, nil
}

// Bytes returns a copy of the serialized ciphertext.
func (c *Ciphertext) Bytes() []byte {
	return append([]byte(nil), c.data...)
}

// Blocks returns the number of ORE blocks.
func (c *Ciphertext) Blocks() int { return c.blocks }

// Scheme returns SchemeName.
func (c *Ciphertext) Scheme() string { return SchemeName }

// EqualityKey returns the xxHash64 of the deterministic left ciphertext.
func (c *Ciphertext) EqualityKey() uint64 {
	return hash.Sum64(c.left())
}

func (c *Ciphertext) left() []byte {
	return c.data[:LeftSize(c.blocks)]
}

func (c *Ciphertext) f(i int) []byte {
	off := fOffset(i)
	return c.data[off : off+blockSize]
}

func (c *Ciphertext) xt() []byte {
	off := xtOffset(c.blocks)
	return c.data[off : off+c.blocks]
}

func (c *Ciphertext) nonce() []byte {
	off := nonceOffset(c.blocks)
	return c.data[off : off+blockSize]
}

func (c *Ciphertext) right(i int) []byte {
	off := rightOffset(c.blocks, i)
	return c.data[off : off+rightBlockSize]
}
