// Package plaintext defines the values that can be ORE encrypted.
//
// Value is a closed union: only the types in this package implement it.
// Scalar values belong to exactly one format.Family; Range pairs two
// scalars of the same family, either of which may be open (nil).
//
// Values are immutable. Constructors copy any caller-owned memory.
package plaintext

import (
	"math/big"
	"time"

	"github.com/arloliu/oreenc/format"
)

// Value is a plaintext accepted by the cipher.
type Value interface {
	// Family returns the family of the value. For a Range it is the family
	// of its present bounds, or FamilyInvalid when none is present.
	Family() format.Family

	isValue()
}

// Scalar is a single plaintext value, i.e. any Value except a Range.
type Scalar interface {
	Value

	isScalar()
}

// Integer is an integer plaintext. It can hold any integer so that values
// outside the encodable domain reach the encoder and are rejected there.
type Integer struct {
	v *big.Int
}

// Uint64 returns an Integer holding v.
func Uint64(v uint64) Integer {
	return Integer{v: new(big.Int).SetUint64(v)}
}

// Int64 returns an Integer holding v.
func Int64(v int64) Integer {
	return Integer{v: big.NewInt(v)}
}

// BigInt returns an Integer holding a copy of v. A nil v is zero.
func BigInt(v *big.Int) Integer {
	if v == nil {
		return Integer{v: new(big.Int)}
	}

	return Integer{v: new(big.Int).Set(v)}
}

// Big returns a copy of the integer.
func (i Integer) Big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(i.v)
}

// Sign returns -1, 0 or +1 depending on the sign of the integer.
func (i Integer) Sign() int {
	if i.v == nil {
		return 0
	}

	return i.v.Sign()
}

// BitLen returns the number of bits in the absolute value of the integer.
func (i Integer) BitLen() int {
	if i.v == nil {
		return 0
	}

	return i.v.BitLen()
}

// Uint64 returns the low 64 bits of the absolute value of the integer.
// Callers must check Sign and BitLen first.
func (i Integer) Uint64() uint64 {
	if i.v == nil {
		return 0
	}

	return i.v.Uint64()
}

func (i Integer) String() string {
	if i.v == nil {
		return "0"
	}

	return i.v.String()
}

func (Integer) Family() format.Family { return format.FamilyInteger }

// Float is an IEEE754 binary64 plaintext.
type Float struct {
	v float64
}

// Float64 returns a Float holding v.
func Float64(v float64) Float {
	return Float{v: v}
}

// Value returns the float.
func (f Float) Value() float64 { return f.v }

func (Float) Family() format.Family { return format.FamilyFloat }

// String is a text plaintext together with its declared charset.
type String struct {
	data    []byte
	charset format.Charset
}

// Str returns a UTF-8 String holding s.
func Str(s string) String {
	return String{data: []byte(s), charset: format.CharsetUTF8}
}

// Text returns a String holding a copy of data declared to be encoded in charset.
func Text(data []byte, charset format.Charset) String {
	return String{data: append([]byte(nil), data...), charset: charset}
}

// Bytes returns a copy of the encoded bytes.
func (s String) Bytes() []byte {
	return append([]byte(nil), s.data...)
}

// Len returns the length of the encoded bytes.
func (s String) Len() int { return len(s.data) }

// Charset returns the declared charset.
func (s String) Charset() format.Charset { return s.charset }

// View calls fn with the encoded bytes without copying them.
// fn must not retain or modify the slice.
func (s String) View(fn func(data []byte)) {
	fn(s.data)
}

func (String) Family() format.Family { return format.FamilyString }

// Bool is a boolean plaintext.
type Bool struct {
	v bool
}

// Boolean returns a Bool holding v.
func Boolean(v bool) Bool {
	return Bool{v: v}
}

// Value returns the boolean.
func (b Bool) Value() bool { return b.v }

func (Bool) Family() format.Family { return format.FamilyBool }

// Time is an instant plaintext.
type Time struct {
	t time.Time
}

// Instant returns a Time holding t.
func Instant(t time.Time) Time {
	return Time{t: t}
}

// Date returns a Time holding midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) Time {
	return Time{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Value returns the instant.
func (t Time) Value() time.Time { return t.t }

func (Time) Family() format.Family { return format.FamilyTime }

func (Integer) isValue() {}
func (Float) isValue()   {}
func (String) isValue()  {}
func (Bool) isValue()    {}
func (Time) isValue()    {}

func (Integer) isScalar() {}
func (Float) isScalar()   {}
func (String) isScalar()  {}
func (Bool) isScalar()    {}
func (Time) isScalar()    {}

var (
	_ Scalar = Integer{}
	_ Scalar = Float{}
	_ Scalar = String{}
	_ Scalar = Bool{}
	_ Scalar = Time{}
)
