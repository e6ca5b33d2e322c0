package encoding

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/arloliu/oreenc/errs"
)

var (
	bigThousand = big.NewInt(1000)
	bigMinInt64 = big.NewInt(math.MinInt64)
	bigMaxInt64 = big.NewInt(math.MaxInt64)
	bigTwo63    = new(big.Int).Lsh(big.NewInt(1), 63)
)

// TimeEncoder encodes instants as Unix milliseconds plus 2^63.
//
// Sub-millisecond precision is dropped by flooring, so the encoding is
// monotonic but not injective below one millisecond. Instants whose
// millisecond count does not fit in an int64 are rejected with
// errs.ErrTimeOutOfRange.
type TimeEncoder struct{}

// Encode returns the canonical encoding of t.
func (TimeEncoder) Encode(t time.Time) (uint64, error) {
	ms, err := unixMilli(t)
	if err != nil {
		return 0, err
	}

	return encodeBig(ms.Add(ms, bigTwo63))
}

// Decode returns the instant, in UTC, whose canonical encoding is c.
func (TimeEncoder) Decode(c uint64) time.Time {
	return time.UnixMilli(int64(c ^ signBit)).UTC()
}

// unixMilli returns floor(t in ms since the Unix epoch) when it fits in an int64.
func unixMilli(t time.Time) (*big.Int, error) {
	ms := new(big.Int).Mul(big.NewInt(t.Unix()), bigThousand)
	ms.Add(ms, big.NewInt(int64(t.Nanosecond())/int64(time.Millisecond)))

	if ms.Cmp(bigMinInt64) < 0 || ms.Cmp(bigMaxInt64) > 0 {
		return nil, fmt.Errorf("%w: %s", errs.ErrTimeOutOfRange, t.UTC().Format(time.RFC3339))
	}

	return ms, nil
}

var _ Codec[time.Time] = TimeEncoder{}
