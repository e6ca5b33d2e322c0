// Package oreenc encrypts typed plaintexts with order-revealing encryption
// (ORE) so that an untrusted party can sort and range-filter ciphertexts
// without learning the plaintexts.
//
// Every plaintext is first mapped onto a canonical unsigned 64-bit value
// whose unsigned order matches the natural order of its type, and the
// canonical value is then encrypted by an ORE engine (AES-128 block ORE by
// default). Ciphertexts of the same type under the same keys compare like
// their plaintexts.
//
// # Core Features
//
//   - Unsigned integers in [0, 2^64), including math/big inputs
//   - IEEE754 doubles in total order (-Inf < ... < -0.0 < +0.0 < ... < +Inf)
//   - Booleans (false < true)
//   - Instants and dates at millisecond resolution
//   - Strings, encrypted for equality only through a keyed hash
//   - Inclusive ranges with optional open ends
//   - Fixed-length 408-byte ciphertexts with parse and compare
//
// # Basic Usage
//
//	cipher, err := oreenc.NewDefault(k1, k2)
//	if err != nil {
//	    return err
//	}
//
//	a, _ := cipher.EncryptUint64(42)
//	b, _ := cipher.EncryptUint64(420)
//	cmp, _ := a.Compare(b) // -1
//
// Ranges:
//
//	r, _ := cipher.EncryptRange(plaintext.Between(plaintext.Uint64(42), plaintext.Uint64(420)))
//	ok, _ := r.Contains(a) // true
//
// Untyped values go through EncryptAny:
//
//	enc, err := cipher.EncryptAny(3.14)
//
// # Errors
//
// Every failure wraps a sentinel from the errs package. Use errors.Is with
// a specific sentinel (errs.ErrNaN) or with its class (errs.ErrDomain), or
// errs.KindOf to branch on the class.
package oreenc

import (
	"fmt"
	"time"

	"github.com/arloliu/oreenc/encoding"
	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/internal/options"
	"github.com/arloliu/oreenc/plaintext"
	"github.com/arloliu/oreenc/primitive"
	"github.com/arloliu/oreenc/validate"
)

// Cipher binds two ORE keys and a parameter set to an engine handle.
//
// A Cipher is immutable after construction and safe for concurrent use.
// It does not keep the key bytes; only the keyed engine handle does.
type Cipher struct {
	cfg    *Config
	params format.Params
	handle primitive.Handle
	scalar encoding.ScalarEncoder
}

// New creates a Cipher from the PRF key k1 and the PRP key k2, each exactly
// 16 bytes, for plaintexts of the given bit width split into blocks.
//
// Only the parameter sets enabled by the configuration are accepted; the
// default is bits=64, blocks=8. Key and parameter problems fail with a
// configuration-class error, engine setup problems with
// errs.ErrInitialization.
//
// Available options:
//   - WithEngine(primitive.Engine)
//   - WithCharsets(...format.Charset) / WithCharsetNames(...string)
//   - WithSupportedParams(...format.Params)
func New(k1, k2 []byte, bits, blocks int, opts ...Option) (*Cipher, error) {
	if err := validate.Key("k1", k1); err != nil {
		return nil, err
	}
	if err := validate.Key("k2", k2); err != nil {
		return nil, err
	}

	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	p := format.Params{Bits: bits, Blocks: blocks}
	if err := validate.Params(p, cfg.supportedParams); err != nil {
		return nil, err
	}

	handle, err := cfg.engine.New(k1, k2, p)
	if err != nil {
		return nil, err
	}

	return &Cipher{
		cfg:    cfg,
		params: p,
		handle: handle,
		scalar: encoding.NewScalarEncoder(cfg.charsets),
	}, nil
}

// NewDefault creates a Cipher with the default parameters (64 bits,
// 8 blocks) and configuration.
func NewDefault(k1, k2 []byte) (*Cipher, error) {
	return New(k1, k2, format.DefaultParams.Bits, format.DefaultParams.Blocks)
}

// Params returns the parameter set the Cipher was created with.
func (c *Cipher) Params() format.Params {
	return c.params
}

// Config returns a copy of the configuration the Cipher was created with.
func (c *Cipher) Config() *Config {
	return &Config{
		engine:          c.cfg.engine,
		charsets:        c.cfg.Charsets(),
		supportedParams: c.cfg.SupportedParams(),
	}
}

// Encrypt encrypts a scalar into a *Ciphertext or a range into a
// *RangeCiphertext.
func (c *Cipher) Encrypt(v plaintext.Value) (Encrypted, error) {
	switch x := v.(type) {
	case plaintext.Scalar:
		return c.EncryptScalar(x)
	case plaintext.Range:
		return c.EncryptRange(x)
	default:
		return nil, fmt.Errorf("%w: do not know how to ORE encrypt a %T", errs.ErrUnsupportedType, v)
	}
}

// EncryptAny converts v with plaintext.From and encrypts the result.
func (c *Cipher) EncryptAny(v any) (Encrypted, error) {
	val, err := plaintext.From(v)
	if err != nil {
		return nil, err
	}

	return c.Encrypt(val)
}

// EncryptScalar encrypts a single plaintext.
func (c *Cipher) EncryptScalar(s plaintext.Scalar) (*Ciphertext, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scalar", errs.ErrUnsupportedType)
	}

	canonical, err := c.scalar.Encode(s)
	if err != nil {
		return nil, err
	}

	return c.encryptCanonical(canonical)
}

// EncryptRange encrypts both ends of an inclusive range. An open end takes
// the smallest or largest value of the other end's family.
//
// The range fails with errs.ErrUnboundedRange when both ends are open,
// errs.ErrMixedRange when the ends disagree on family,
// errs.ErrUnsupportedRange for strings and booleans, and
// errs.ErrReversedRange when the upper end orders below the lower end.
func (c *Cipher) EncryptRange(r plaintext.Range) (*RangeCiphertext, error) {
	if !r.Bounded() {
		return nil, errs.ErrUnboundedRange
	}

	family := r.Family()
	if family == format.FamilyInvalid {
		return nil, fmt.Errorf("%w: %s and %s",
			errs.ErrMixedRange, r.Min.Family(), r.Max.Family())
	}

	lo, hi, err := encoding.Bounds(family)
	if err != nil {
		return nil, err
	}

	if r.Min != nil {
		if lo, err = c.scalar.Encode(r.Min); err != nil {
			return nil, err
		}
	}
	if r.Max != nil {
		if hi, err = c.scalar.Encode(r.Max); err != nil {
			return nil, err
		}
	}

	if err := validate.RangeDirection(lo, hi); err != nil {
		return nil, err
	}

	low, err := c.encryptCanonical(lo)
	if err != nil {
		return nil, err
	}

	high, err := c.encryptCanonical(hi)
	if err != nil {
		return nil, err
	}

	return &RangeCiphertext{Low: low, High: high}, nil
}

// EncryptUint64 encrypts an unsigned integer.
func (c *Cipher) EncryptUint64(v uint64) (*Ciphertext, error) {
	return c.EncryptScalar(plaintext.Uint64(v))
}

// EncryptFloat64 encrypts a double. NaN fails with errs.ErrNaN.
func (c *Cipher) EncryptFloat64(v float64) (*Ciphertext, error) {
	return c.EncryptScalar(plaintext.Float64(v))
}

// EncryptString encrypts a UTF-8 string. String ciphertexts compare equal
// for equal strings only; their relative order carries no meaning.
func (c *Cipher) EncryptString(s string) (*Ciphertext, error) {
	return c.EncryptScalar(plaintext.Str(s))
}

// EncryptBool encrypts a boolean.
func (c *Cipher) EncryptBool(v bool) (*Ciphertext, error) {
	return c.EncryptScalar(plaintext.Boolean(v))
}

// EncryptTime encrypts an instant at millisecond resolution.
func (c *Cipher) EncryptTime(t time.Time) (*Ciphertext, error) {
	return c.EncryptScalar(plaintext.Instant(t))
}

// ParseCiphertext deserializes a ciphertext for this Cipher's engine.
// blocks must belong to one of the supported parameter sets.
func (c *Cipher) ParseCiphertext(data []byte, blocks int) (*Ciphertext, error) {
	return parseCiphertext(c.cfg, data, blocks)
}

func (c *Cipher) encryptCanonical(v uint64) (*Ciphertext, error) {
	ct, err := c.handle.Encrypt(v)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{ct: ct, engine: c.cfg.engine}, nil
}
