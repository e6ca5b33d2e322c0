package oreenc

import (
	"fmt"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/primitive"
	"github.com/arloliu/oreenc/primitive/aes128"
	"github.com/arloliu/oreenc/validate"
)

// Encrypted is the result of Cipher.Encrypt: a *Ciphertext for scalar
// plaintexts or a *RangeCiphertext for ranges.
type Encrypted interface {
	isEncrypted()
}

// Ciphertext is an ORE ciphertext of a single plaintext.
//
// Ciphertexts are immutable and safe for concurrent use. Their order is
// meaningful only against ciphertexts of the same family produced under
// the same keys.
type Ciphertext struct {
	ct     primitive.Ciphertext
	engine primitive.Engine
}

// Bytes returns the fixed-length binary serialization (408 bytes for the
// default parameters). The returned slice is owned by the caller.
func (c *Ciphertext) Bytes() []byte {
	return c.ct.Bytes()
}

// Blocks returns the number of ORE blocks in the ciphertext.
func (c *Ciphertext) Blocks() int {
	return c.ct.Blocks()
}

// Scheme returns the name of the engine that produced the ciphertext.
func (c *Ciphertext) Scheme() string {
	return c.ct.Scheme()
}

// Compare returns -1, 0 or +1 as the plaintext of c is less than, equal to
// or greater than the plaintext of other.
//
// Comparing against nil, against a ciphertext of another scheme or against
// one with a different block count fails with errs.ErrComparisonType.
func (c *Ciphertext) Compare(other *Ciphertext) (int, error) {
	if c == nil || other == nil {
		return 0, fmt.Errorf("%w: nil ciphertext", errs.ErrComparisonType)
	}

	if c.Scheme() != other.Scheme() {
		return 0, fmt.Errorf("%w: schemes %q and %q differ",
			errs.ErrComparisonType, c.Scheme(), other.Scheme())
	}

	if c.Blocks() != other.Blocks() {
		return 0, fmt.Errorf("%w: block counts %d and %d differ",
			errs.ErrComparisonType, c.Blocks(), other.Blocks())
	}

	return c.engine.Compare(c.ct, other.ct)
}

// CompareAny is Compare for an untyped operand. It fails with
// errs.ErrComparisonType unless other is a *Ciphertext.
func (c *Ciphertext) CompareAny(other any) (int, error) {
	o, ok := other.(*Ciphertext)
	if !ok {
		return 0, fmt.Errorf("%w: cannot compare an ORE ciphertext to a %T",
			errs.ErrComparisonType, other)
	}

	return c.Compare(o)
}

// Less reports whether c orders before other. Incomparable operands
// report false together with the error.
func (c *Ciphertext) Less(other *Ciphertext) (bool, error) {
	cmp, err := c.Compare(other)
	if err != nil {
		return false, err
	}

	return cmp < 0, nil
}

// EqualityKey returns a deterministic 64-bit key that is equal for
// ciphertexts of equal plaintexts under the same keys, for use in hash
// indexes. ok is false when the engine's ciphertexts have no deterministic
// component.
func (c *Ciphertext) EqualityKey() (key uint64, ok bool) {
	k, ok := c.ct.(primitive.EqualityKeyer)
	if !ok {
		return 0, false
	}

	return k.EqualityKey(), true
}

func (*Ciphertext) isEncrypted() {}

// RangeCiphertext is an encrypted inclusive range. Low orders at or below
// High.
type RangeCiphertext struct {
	Low  *Ciphertext
	High *Ciphertext
}

// Contains reports whether Low <= c <= High.
func (r *RangeCiphertext) Contains(c *Ciphertext) (bool, error) {
	lo, err := r.Low.Compare(c)
	if err != nil {
		return false, err
	}

	hi, err := c.Compare(r.High)
	if err != nil {
		return false, err
	}

	return lo <= 0 && hi <= 0, nil
}

func (*RangeCiphertext) isEncrypted() {}

// ParseCiphertext deserializes a ciphertext produced with the default
// configuration. blocks must be 8.
func ParseCiphertext(data []byte, blocks int) (*Ciphertext, error) {
	return parseCiphertext(NewConfig(), data, blocks)
}

func parseCiphertext(cfg *Config, data []byte, blocks int) (*Ciphertext, error) {
	if err := validate.BlockCount(blocks, cfg.supportedParams); err != nil {
		return nil, err
	}

	ct, err := cfg.engine.Parse(data, blocks)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{ct: ct, engine: cfg.engine}, nil
}

var (
	_ Encrypted = (*Ciphertext)(nil)
	_ Encrypted = (*RangeCiphertext)(nil)

	_ primitive.Engine = aes128.Default
)
