package format

import (
	"fmt"
	"strings"
)

type (
	Family  uint8
	Charset uint8
)

const (
	FamilyInvalid Family = 0x0 // FamilyInvalid is the zero value and never a valid family.
	FamilyInteger Family = 0x1 // FamilyInteger represents unsigned 64-bit integers.
	FamilyFloat   Family = 0x2 // FamilyFloat represents IEEE754 binary64 numbers.
	FamilyString  Family = 0x3 // FamilyString represents UTF-8 strings.
	FamilyBool    Family = 0x4 // FamilyBool represents booleans.
	FamilyTime    Family = 0x5 // FamilyTime represents instants (dates and times).

	CharsetBinary Charset = 0x0 // CharsetBinary represents bytes with no declared text encoding.
	CharsetUTF8   Charset = 0x1 // CharsetUTF8 represents UTF-8 text.
	CharsetASCII  Charset = 0x2 // CharsetASCII represents 7-bit US-ASCII text.
	CharsetLatin1 Charset = 0x3 // CharsetLatin1 represents ISO-8859-1 text.
	CharsetUTF16  Charset = 0x4 // CharsetUTF16 represents UTF-16 text.
)

func (f Family) String() string {
	switch f {
	case FamilyInteger:
		return "Integer"
	case FamilyFloat:
		return "Float"
	case FamilyString:
		return "String"
	case FamilyBool:
		return "Bool"
	case FamilyTime:
		return "Time"
	default:
		return "Unknown"
	}
}

func (c Charset) String() string {
	switch c {
	case CharsetBinary:
		return "BINARY"
	case CharsetUTF8:
		return "UTF-8"
	case CharsetASCII:
		return "US-ASCII"
	case CharsetLatin1:
		return "ISO-8859-1"
	case CharsetUTF16:
		return "UTF-16"
	default:
		return "Unknown"
	}
}

// ParseCharset maps a charset label to a Charset. Matching is
// case-insensitive and accepts the common aliases.
func ParseCharset(label string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "binary", "ascii-8bit":
		return CharsetBinary, nil
	case "utf-8", "utf8":
		return CharsetUTF8, nil
	case "us-ascii", "ascii":
		return CharsetASCII, nil
	case "iso-8859-1", "latin1", "latin-1":
		return CharsetLatin1, nil
	case "utf-16", "utf16":
		return CharsetUTF16, nil
	default:
		return CharsetBinary, fmt.Errorf("unknown charset %q", label)
	}
}

// Params are the plaintext width and block count of an ORE scheme.
//
// Each block encrypts Bits/Blocks bits of the canonical plaintext.
type Params struct {
	Bits   int
	Blocks int
}

// DefaultParams is the only parameter set supported at present:
// 64-bit plaintexts split into eight one-octet blocks.
var DefaultParams = Params{Bits: 64, Blocks: 8}

// BlockBits returns the number of plaintext bits covered by each block.
func (p Params) BlockBits() int {
	if p.Blocks <= 0 {
		return 0
	}

	return p.Bits / p.Blocks
}

func (p Params) String() string {
	return fmt.Sprintf("bits=%d, blocks=%d", p.Bits, p.Blocks)
}
