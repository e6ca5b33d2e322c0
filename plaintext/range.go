package plaintext

import (
	"github.com/arloliu/oreenc/format"
)

// Range is an inclusive interval over one family. A nil bound is open.
type Range struct {
	Min Scalar
	Max Scalar
}

// Between returns the closed range [lo, hi].
func Between(lo, hi Scalar) Range {
	return Range{Min: lo, Max: hi}
}

// AtLeast returns the range [lo, +∞).
func AtLeast(lo Scalar) Range {
	return Range{Min: lo}
}

// AtMost returns the range (-∞, hi].
func AtMost(hi Scalar) Range {
	return Range{Max: hi}
}

// Family returns the family shared by the present bounds. It returns
// FamilyInvalid when both bounds are open or when they disagree.
func (r Range) Family() format.Family {
	switch {
	case r.Min == nil && r.Max == nil:
		return format.FamilyInvalid
	case r.Min == nil:
		return r.Max.Family()
	case r.Max == nil:
		return r.Min.Family()
	case r.Min.Family() != r.Max.Family():
		return format.FamilyInvalid
	default:
		return r.Min.Family()
	}
}

// Bounded reports whether at least one end of the range is present.
func (r Range) Bounded() bool {
	return r.Min != nil || r.Max != nil
}

func (Range) isValue() {}

var _ Value = Range{}
