package encoding

import (
	"math"
	"math/big"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/plaintext"
)

// MaxCanonical is the largest canonical encoding, 2^64-1.
const MaxCanonical uint64 = math.MaxUint64

// UintEncoder encodes integers in [0, 2^64-1] as themselves.
type UintEncoder struct{}

// Encode returns v as a uint64.
func (UintEncoder) Encode(v plaintext.Integer) (uint64, error) {
	if v.Sign() < 0 {
		return 0, errs.ErrNegativeInteger
	}
	if v.BitLen() > 64 {
		return 0, errs.ErrIntegerOverflow
	}

	return v.Uint64(), nil
}

// Decode returns the integer whose canonical encoding is c.
func (UintEncoder) Decode(c uint64) plaintext.Integer {
	return plaintext.Uint64(c)
}

// encodeBig is the UintEncoder path for intermediate values computed with
// arbitrary precision.
func encodeBig(v *big.Int) (uint64, error) {
	return UintEncoder{}.Encode(plaintext.BigInt(v))
}
