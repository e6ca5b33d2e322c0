// Package errs defines the error values returned by oreenc.
//
// Errors come in two layers. Class errors (ErrConfiguration, ErrDomain,
// ErrRange, ErrUnsupportedType, ErrPrimitive, ErrPlatform) name the broad
// category of a failure. Specific errors (ErrNaN, ErrReversedRange, ...)
// name the exact rule that was violated and always wrap their class, so
// both of the following hold for a NaN plaintext:
//
//	errors.Is(err, errs.ErrNaN)
//	errors.Is(err, errs.ErrDomain)
//
// Call sites add detail with fmt.Errorf("%w: ...", errs.ErrX, ...). Error
// strings are meant for humans and may change; branch on the sentinels or
// on KindOf instead.
package errs

import "errors"

// Kind is a stable category for programmatic error handling.
type Kind string

const (
	KindNone            Kind = ""
	KindConfiguration   Kind = "Configuration"
	KindDomain          Kind = "Domain"
	KindRange           Kind = "Range"
	KindUnsupportedType Kind = "UnsupportedType"
	KindPrimitive       Kind = "Primitive"
	KindPlatform        Kind = "Platform"
)

// classError is a class sentinel.
type classError struct {
	kind Kind
	msg  string
}

func (e *classError) Error() string { return e.msg }

// ruleError is a specific sentinel belonging to a class.
type ruleError struct {
	class *classError
	msg   string
}

func (e *ruleError) Error() string { return e.msg }

func (e *ruleError) Unwrap() error { return e.class }

func newClass(kind Kind, msg string) *classError {
	return &classError{kind: kind, msg: msg}
}

func newRule(class *classError, msg string) error {
	return &ruleError{class: class, msg: msg}
}

// Class errors.
var (
	errConfiguration   = newClass(KindConfiguration, "invalid configuration")
	errDomain          = newClass(KindDomain, "value outside of its domain")
	errRange           = newClass(KindRange, "invalid range")
	errUnsupportedType = newClass(KindUnsupportedType, "unsupported plaintext type")
	errPrimitive       = newClass(KindPrimitive, "ore primitive failure")
	errPlatform        = newClass(KindPlatform, "unsupported platform")

	ErrConfiguration   error = errConfiguration
	ErrDomain          error = errDomain
	ErrRange           error = errRange
	ErrUnsupportedType error = errUnsupportedType
	ErrPrimitive       error = errPrimitive
	ErrPlatform        error = errPlatform
)

// Configuration errors.
var (
	ErrInvalidKey         = newRule(errConfiguration, "key must be exactly 16 raw bytes")
	ErrUnsupportedParams  = newRule(errConfiguration, "unsupported ore parameters")
	ErrUnsupportedBlocks  = newRule(errConfiguration, "unsupported ciphertext block count")
	ErrNilEngine          = newRule(errConfiguration, "ore engine must not be nil")
	ErrNoCharsets         = newRule(errConfiguration, "at least one string charset must be accepted")
	ErrNoSupportedParams  = newRule(errConfiguration, "at least one parameter set must be supported")
	ErrInvalidCharsetName = newRule(errConfiguration, "invalid charset")
)

// Domain errors.
var (
	ErrNegativeInteger    = newRule(errDomain, "cannot encrypt integers less than zero")
	ErrIntegerOverflow    = newRule(errDomain, "cannot encrypt integers greater than 2^64 - 1")
	ErrNaN                = newRule(errDomain, "cannot encrypt NaN")
	ErrInvalidUTF8        = newRule(errDomain, "cannot encrypt invalid UTF-8 string")
	ErrInvalidASCII       = newRule(errDomain, "cannot encrypt invalid US-ASCII string")
	ErrUnsupportedCharset = newRule(errDomain, "cannot encrypt non-UTF-8 string")
	ErrTimeOutOfRange     = newRule(errDomain, "time cannot be represented as int64 milliseconds")
)

// Range errors.
var (
	ErrReversedRange    = newRule(errRange, "cannot encrypt a non-ascending range")
	ErrMixedRange       = newRule(errRange, "range bounds belong to different families")
	ErrUnboundedRange   = newRule(errRange, "cannot encrypt a range with both ends open")
	ErrUnsupportedRange = newRule(errRange, "cannot encrypt a range over this family")
)

// Primitive errors.
var (
	ErrInitialization      = newRule(errPrimitive, "failed to initialize ore cipher")
	ErrEncryption          = newRule(errPrimitive, "failed to encrypt ore plaintext")
	ErrMalformedCiphertext = newRule(errPrimitive, "failed to deserialize ore ciphertext")
	ErrComparisonType      = newRule(errPrimitive, "cannot compare an ore ciphertext to an incompatible value")
)

// Platform errors.
var (
	ErrFloatLayout = newRule(errPlatform, "platform float representation is not IEEE754 binary64")
)

// KindOf returns the Kind of the first oreenc error found in err's chain,
// or KindNone when err carries no oreenc error.
func KindOf(err error) Kind {
	var c *classError
	if errors.As(err, &c) {
		return c.kind
	}

	return KindNone
}

// IsKind reports whether err is (or wraps) an oreenc error of the given kind.
func IsKind(err error, kind Kind) bool {
	return kind != KindNone && KindOf(err) == kind
}
