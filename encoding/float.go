package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/oreenc/errs"
)

const (
	signBit = uint64(1) << 63

	// binary64 exponent limits as reported by math.Frexp, whose mantissa
	// lies in [0.5, 1).
	binary64MaxExp = 1024
	binary64MinExp = -1021
)

var (
	floatNegInf = encodeFloatBits(math.Inf(-1))
	floatPosInf = encodeFloatBits(math.Inf(1))
)

// FloatEncoder encodes IEEE754 binary64 numbers so that the unsigned order
// of the encodings is the IEEE754 total order. -0.0 encodes just below
// +0.0; the infinities encode to the extremes of the non-NaN domain.
type FloatEncoder struct{}

// Encode returns the order-preserving encoding of v.
func (FloatEncoder) Encode(v float64) (uint64, error) {
	if err := CheckFloatLayout(); err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, errs.ErrNaN
	}

	return encodeFloatBits(v), nil
}

// Decode returns the float whose canonical encoding is c.
func (FloatEncoder) Decode(c uint64) float64 {
	if c&signBit != 0 {
		return math.Float64frombits(c &^ signBit)
	}

	return math.Float64frombits(^c)
}

func encodeFloatBits(v float64) uint64 {
	bits := math.Float64bits(v)
	if bits&signBit != 0 {
		return ^bits
	}

	return bits | signBit
}

// CheckFloatLayout verifies that float64 on this platform has the exponent
// range of IEEE754 binary64. The canonical float encoding relies on that
// bit layout.
func CheckFloatLayout() error {
	_, maxExp := math.Frexp(math.MaxFloat64)
	_, minExp := math.Frexp(0x1p-1022) // smallest normal

	return checkFloatLayout(maxExp, minExp)
}

func checkFloatLayout(maxExp, minExp int) error {
	if maxExp != binary64MaxExp || minExp != binary64MinExp {
		return fmt.Errorf("%w: exponent range %d..%d, want %d..%d",
			errs.ErrFloatLayout, minExp, maxExp, binary64MinExp, binary64MaxExp)
	}

	return nil
}
