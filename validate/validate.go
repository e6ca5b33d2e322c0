// Package validate enforces the preconditions checked before anything is
// encoded or encrypted: key shape, scheme parameters, string domains and
// range direction.
//
// Every function returns nil or an error wrapping one of the errs
// sentinels. No function inspects or retains key bytes beyond their length.
package validate

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/plaintext"
)

// KeySize is the length in bytes of each of the two ORE keys.
const KeySize = 16

// Key checks that k is exactly KeySize raw bytes. name identifies the key
// in the error message ("k1", "k2").
func Key(name string, k []byte) error {
	if len(k) != KeySize {
		return fmt.Errorf("%w: %s must be a %d octet binary string, got %d octets",
			errs.ErrInvalidKey, name, KeySize, len(k))
	}

	return nil
}

// Params checks that p is one of the supported parameter sets.
func Params(p format.Params, supported []format.Params) error {
	if len(supported) == 0 {
		return errs.ErrNoSupportedParams
	}

	if !slices.Contains(supported, p) {
		return fmt.Errorf("%w: %s, supported: %v", errs.ErrUnsupportedParams, p, supported)
	}

	return nil
}

// BlockCount checks that some supported parameter set uses n blocks.
func BlockCount(n int, supported []format.Params) error {
	for _, p := range supported {
		if p.Blocks == n {
			return nil
		}
	}

	return fmt.Errorf("%w: %d", errs.ErrUnsupportedBlocks, n)
}

// RangeDirection checks that the canonical encodings of a range's bounds
// are ascending. Equal bounds are allowed.
func RangeDirection(lo, hi uint64) error {
	if hi < lo {
		return errs.ErrReversedRange
	}

	return nil
}

// StringDomain checks that s is declared in one of the accepted charsets
// and that its bytes are valid UTF-8. Strings declared US-ASCII must be
// 7-bit clean, which makes them valid UTF-8 as well.
func StringDomain(s plaintext.String, accepted []format.Charset) error {
	cs := s.Charset()
	if !slices.Contains(accepted, cs) {
		return fmt.Errorf("%w: charset %s", errs.ErrUnsupportedCharset, cs)
	}

	var err error
	s.View(func(data []byte) {
		switch cs { //nolint: exhaustive
		case format.CharsetASCII:
			if !isASCII(data) {
				err = errs.ErrInvalidASCII
				return
			}
		default:
			if !utf8.Valid(data) {
				err = errs.ErrInvalidUTF8
			}
		}
	})

	return err
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
