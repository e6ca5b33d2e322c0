// Package encoding maps plaintext values onto the canonical uint64 domain
// consumed by the ORE primitive.
//
// Each family has a scalar encoder whose output preserves order within
// the family: for values a and b of the same family, a < b implies
// Encode(a) < Encode(b) as unsigned integers. Nothing is promised across
// families; the integer 1 and the float 1.0 encode to unrelated values.
//
// # Built-in Implementations
//
//   - UintEncoder: identity on [0, 2^64-1]; negative or wider integers are
//     rejected with errs.ErrNegativeInteger / errs.ErrIntegerOverflow.
//   - FloatEncoder: the IEEE754 total-order transform. The sign bit is
//     flipped; negative numbers additionally have every other bit
//     inverted. NaN is rejected with errs.ErrNaN.
//   - BoolEncoder: false → 0, true → 1.
//   - StringEncoder: validates the charset and UTF-8, then hashes the bytes
//     with keyed BLAKE3. Equal strings encode equal, but the encoding does
//     NOT follow lexicographic order.
//   - TimeEncoder: Unix milliseconds shifted by 2^63 so that instants
//     before 1970 stay below instants after it.
//
// UintEncoder, FloatEncoder, BoolEncoder and TimeEncoder are reversible and
// implement Codec. StringEncoder is one-way.
//
// # Range Bounds
//
// Bounds returns the canonical encodings that stand in for the open end of
// a range: 0 and 2^64-1 for integers and instants, the encodings of -Inf
// and +Inf for floats. String and bool ranges are not supported.
//
// # Thread Safety
//
// Encoders hold no mutable state and are safe for concurrent use.
package encoding
