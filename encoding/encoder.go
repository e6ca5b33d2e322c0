package encoding

import (
	"fmt"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/plaintext"
)

// Encoder maps values of type T onto the canonical uint64 domain.
type Encoder[T any] interface {
	// Encode returns the canonical encoding of v, or an error wrapping
	// errs.ErrDomain (or errs.ErrPlatform) when v cannot be encoded.
	Encode(v T) (uint64, error)
}

// Codec is an Encoder whose encoding can be reversed.
type Codec[T any] interface {
	Encoder[T]

	// Decode returns the value whose canonical encoding is c.
	Decode(c uint64) T
}

// ScalarEncoder routes scalar plaintexts to the encoder of their family.
type ScalarEncoder struct {
	Uint   UintEncoder
	Float  FloatEncoder
	Bool   BoolEncoder
	String StringEncoder
	Time   TimeEncoder
}

// NewScalarEncoder creates a ScalarEncoder accepting strings in the given charsets.
func NewScalarEncoder(charsets []format.Charset) ScalarEncoder {
	return ScalarEncoder{String: NewStringEncoder(charsets)}
}

// Encode returns the canonical encoding of s.
func (e ScalarEncoder) Encode(s plaintext.Scalar) (uint64, error) {
	switch v := s.(type) {
	case plaintext.Integer:
		return e.Uint.Encode(v)
	case plaintext.Float:
		return e.Float.Encode(v.Value())
	case plaintext.Bool:
		return e.Bool.Encode(v.Value())
	case plaintext.String:
		return e.String.Encode(v)
	case plaintext.Time:
		return e.Time.Encode(v.Value())
	default:
		return 0, fmt.Errorf("%w: do not know how to ORE encrypt a %T", errs.ErrUnsupportedType, s)
	}
}

// Bounds returns the canonical encodings of the smallest and largest
// representable values of family f. Only families that can form a range
// have bounds; others fail with errs.ErrUnsupportedRange.
func Bounds(f format.Family) (lo, hi uint64, err error) {
	switch f {
	case format.FamilyInteger:
		return 0, MaxCanonical, nil
	case format.FamilyFloat:
		return floatNegInf, floatPosInf, nil
	case format.FamilyTime:
		return 0, MaxCanonical, nil
	case format.FamilyString, format.FamilyBool, format.FamilyInvalid:
		return 0, 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedRange, f)
	default:
		return 0, 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedRange, f)
	}
}

var (
	_ Codec[plaintext.Integer]  = UintEncoder{}
	_ Codec[float64]            = FloatEncoder{}
	_ Codec[bool]               = BoolEncoder{}
	_ Encoder[plaintext.String] = StringEncoder{}
	_ Encoder[plaintext.Scalar] = ScalarEncoder{}
)
