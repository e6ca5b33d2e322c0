package encoding

import (
	"slices"

	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/internal/hash"
	"github.com/arloliu/oreenc/plaintext"
	"github.com/arloliu/oreenc/validate"
)

// DefaultCharsets are the string charsets accepted unless configured
// otherwise. US-ASCII is a subset of UTF-8.
var DefaultCharsets = []format.Charset{format.CharsetUTF8, format.CharsetASCII}

// StringEncoder hashes validated strings into the canonical domain.
//
// The encoding supports equality only: equal strings encode equal, but the
// order of encodings is unrelated to lexicographic order.
type StringEncoder struct {
	charsets []format.Charset
}

// NewStringEncoder creates a StringEncoder accepting the given charsets.
// A nil or empty list selects DefaultCharsets.
func NewStringEncoder(charsets []format.Charset) StringEncoder {
	if len(charsets) == 0 {
		charsets = DefaultCharsets
	}

	return StringEncoder{charsets: slices.Clone(charsets)}
}

// Charsets returns the accepted charsets.
func (e StringEncoder) Charsets() []format.Charset {
	if len(e.charsets) == 0 {
		return slices.Clone(DefaultCharsets)
	}

	return slices.Clone(e.charsets)
}

// Encode validates s and returns its 64-bit hash.
func (e StringEncoder) Encode(s plaintext.String) (uint64, error) {
	charsets := e.charsets
	if len(charsets) == 0 {
		charsets = DefaultCharsets
	}

	if err := validate.StringDomain(s, charsets); err != nil {
		return 0, err
	}

	var c uint64
	s.View(func(data []byte) {
		c = hash.String(data)
	})

	return c, nil
}
