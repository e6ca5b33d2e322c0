package plaintext

import (
	"fmt"
	"math/big"
	"time"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
)

// From converts a native Go value into a Value.
//
// Supported inputs are every signed and unsigned integer width, *big.Int,
// float32 and float64, string (UTF-8), []byte (declared UTF-8), bool,
// time.Time, and values that already implement Value. Any other type,
// including nil, fails with errs.ErrUnsupportedType.
func From(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return Int64(int64(x)), nil
	case int8:
		return Int64(int64(x)), nil
	case int16:
		return Int64(int64(x)), nil
	case int32:
		return Int64(int64(x)), nil
	case int64:
		return Int64(x), nil
	case uint:
		return Uint64(uint64(x)), nil
	case uint8:
		return Uint64(uint64(x)), nil
	case uint16:
		return Uint64(uint64(x)), nil
	case uint32:
		return Uint64(uint64(x)), nil
	case uint64:
		return Uint64(x), nil
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", errs.ErrUnsupportedType)
		}

		return BigInt(x), nil
	case float32:
		return Float64(float64(x)), nil
	case float64:
		return Float64(x), nil
	case string:
		return Str(x), nil
	case []byte:
		return Text(x, format.CharsetUTF8), nil
	case bool:
		return Boolean(x), nil
	case time.Time:
		return Instant(x), nil
	default:
		return nil, fmt.Errorf("%w: do not know how to ORE encrypt a %T", errs.ErrUnsupportedType, v)
	}
}

// ScalarFrom is like From but rejects ranges.
func ScalarFrom(v any) (Scalar, error) {
	val, err := From(v)
	if err != nil {
		return nil, err
	}

	s, ok := val.(Scalar)
	if !ok {
		return nil, fmt.Errorf("%w: expected a scalar, got %T", errs.ErrUnsupportedType, v)
	}

	return s, nil
}

// RangeFrom builds a Range from native Go bounds. A nil bound is open.
func RangeFrom(lo, hi any) (Range, error) {
	var r Range
	if lo != nil {
		s, err := ScalarFrom(lo)
		if err != nil {
			return Range{}, err
		}
		r.Min = s
	}
	if hi != nil {
		s, err := ScalarFrom(hi)
		if err != nil {
			return Range{}, err
		}
		r.Max = s
	}

	return r, nil
}
