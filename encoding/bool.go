package encoding

// BoolEncoder encodes false as 0 and true as 1.
type BoolEncoder struct{}

// Encode returns 0 or 1. It never fails.
func (BoolEncoder) Encode(v bool) (uint64, error) {
	if v {
		return 1, nil
	}

	return 0, nil
}

// Decode returns c != 0.
func (BoolEncoder) Decode(c uint64) bool {
	return c != 0
}
