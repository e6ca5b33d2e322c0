package encoding

import (
	"math"
	"math/big"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/plaintext"
	"github.com/stretchr/testify/require"
)

// === UintEncoder Tests ===

func TestUintEncoder_Encode(t *testing.T) {
	enc := UintEncoder{}
	tests := []struct {
		name  string
		value plaintext.Integer
		want  uint64
	}{
		{"zero", plaintext.Uint64(0), 0},
		{"a legal integer", plaintext.Uint64(42), 42},
		{"int64 max", plaintext.Int64(math.MaxInt64), math.MaxInt64},
		{"U64_MAX", plaintext.Uint64(math.MaxUint64), math.MaxUint64},
		{"big within range", plaintext.BigInt(new(big.Int).SetUint64(1 << 63)), 1 << 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Encode(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.value.String(), enc.Decode(got).String())
		})
	}
}

func TestUintEncoder_Rejects(t *testing.T) {
	enc := UintEncoder{}
	twoTo64 := new(big.Int).Lsh(big.NewInt(1), 64)

	_, err := enc.Encode(plaintext.Int64(-1))
	require.ErrorIs(t, err, errs.ErrNegativeInteger)
	require.ErrorIs(t, err, errs.ErrDomain)

	_, err = enc.Encode(plaintext.BigInt(new(big.Int).Neg(twoTo64)))
	require.ErrorIs(t, err, errs.ErrNegativeInteger)

	_, err = enc.Encode(plaintext.BigInt(twoTo64))
	require.ErrorIs(t, err, errs.ErrIntegerOverflow)
	require.ErrorIs(t, err, errs.ErrDomain)
}

func TestUintEncoder_PreservesOrder(t *testing.T) {
	values := []uint64{0, 1, 42, 43, 999_999, 1_000_000, 1 << 32, 1<<63 - 1, 1 << 63, math.MaxUint64}
	assertAscending(t, values, func(v uint64) (uint64, error) {
		return UintEncoder{}.Encode(plaintext.Uint64(v))
	})
}

// === FloatEncoder Tests ===

func TestFloatEncoder_PreservesOrder(t *testing.T) {
	values := []float64{
		math.Inf(-1),
		-math.MaxFloat64,
		-1e300,
		-1_000_000.1,
		-42.6,
		-42.5,
		-1,
		-math.SmallestNonzeroFloat64,
		math.Copysign(0, -1),
		0,
		math.SmallestNonzeroFloat64,
		0x1p-1022,
		1,
		42.5,
		42.6,
		100.9,
		1_000_000.05,
		1_000_000.1,
		math.MaxFloat64,
		math.Inf(1),
	}
	assertAscending(t, values, FloatEncoder{}.Encode)
}

func TestFloatEncoder_RoundTrip(t *testing.T) {
	enc := FloatEncoder{}
	values := []float64{math.Inf(-1), -3.0, math.Copysign(0, -1), 0, 4.2, math.MaxFloat64, math.Inf(1)}

	for _, v := range values {
		c, err := enc.Encode(v)
		require.NoError(t, err)
		got := enc.Decode(c)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got), "value %v", v)
	}
}

func TestFloatEncoder_RandomOrder(t *testing.T) {
	enc := FloatEncoder{}
	rng := rand.New(rand.NewSource(1))

	for range 10_000 {
		a := math.Float64frombits(rng.Uint64())
		b := math.Float64frombits(rng.Uint64())
		if math.IsNaN(a) || math.IsNaN(b) || a == b {
			continue
		}

		ca, err := enc.Encode(a)
		require.NoError(t, err)
		cb, err := enc.Encode(b)
		require.NoError(t, err)
		require.Equal(t, a < b, ca < cb, "%v vs %v", a, b)
	}
}

func TestFloatEncoder_RejectsNaN(t *testing.T) {
	enc := FloatEncoder{}
	for _, nan := range []float64{math.NaN(), math.Float64frombits(0xfff8000000000001)} {
		_, err := enc.Encode(nan)
		require.ErrorIs(t, err, errs.ErrNaN)
		require.ErrorIs(t, err, errs.ErrDomain)
	}
}

func TestCheckFloatLayout(t *testing.T) {
	require.NoError(t, CheckFloatLayout())

	err := checkFloatLayout(128, -125)
	require.ErrorIs(t, err, errs.ErrFloatLayout)
	require.ErrorIs(t, err, errs.ErrPlatform)

	require.ErrorIs(t, checkFloatLayout(1024, -1022), errs.ErrFloatLayout)
}

// === BoolEncoder Tests ===

func TestBoolEncoder(t *testing.T) {
	enc := BoolEncoder{}

	f, err := enc.Encode(false)
	require.NoError(t, err)
	tr, err := enc.Encode(true)
	require.NoError(t, err)

	require.Equal(t, uint64(0), f)
	require.Equal(t, uint64(1), tr)
	require.False(t, enc.Decode(f))
	require.True(t, enc.Decode(tr))
}

// === StringEncoder Tests ===

func TestStringEncoder_Equality(t *testing.T) {
	enc := NewStringEncoder(nil)

	a, err := enc.Encode(plaintext.Str("Hello world!"))
	require.NoError(t, err)
	b, err := enc.Encode(plaintext.Text([]byte("Hello world!"), format.CharsetASCII))
	require.NoError(t, err)
	c, err := enc.Encode(plaintext.Str("Hello world?"))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestStringEncoder_Rejects(t *testing.T) {
	enc := NewStringEncoder(nil)

	_, err := enc.Encode(plaintext.Text([]byte{0xff, 0xfe}, format.CharsetUTF8))
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)

	_, err = enc.Encode(plaintext.Text([]byte("abc"), format.CharsetLatin1))
	require.ErrorIs(t, err, errs.ErrUnsupportedCharset)
	require.ErrorIs(t, err, errs.ErrDomain)
}

func TestStringEncoder_Charsets(t *testing.T) {
	require.Equal(t, DefaultCharsets, NewStringEncoder(nil).Charsets())
	require.Equal(t, DefaultCharsets, StringEncoder{}.Charsets())

	custom := []format.Charset{format.CharsetLatin1}
	enc := NewStringEncoder(custom)
	custom[0] = format.CharsetUTF16
	require.Equal(t, []format.Charset{format.CharsetLatin1}, enc.Charsets())

	_, err := enc.Encode(plaintext.Str("x"))
	require.ErrorIs(t, err, errs.ErrUnsupportedCharset)

	_, err = StringEncoder{}.Encode(plaintext.Str("x"))
	require.NoError(t, err)
}

// === TimeEncoder Tests ===

func TestTimeEncoder_Epoch(t *testing.T) {
	enc := TimeEncoder{}

	c, err := enc.Encode(time.Unix(0, 0))
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<63, c)

	c, err = enc.Encode(time.UnixMilli(-1))
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<63-1, c)
}

func TestTimeEncoder_PreservesOrder(t *testing.T) {
	values := []time.Time{
		time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1900, time.March, 1, 12, 0, 0, 0, time.UTC),
		time.Unix(0, 0).Add(-time.Millisecond),
		time.Unix(0, 0),
		time.Unix(0, 0).Add(time.Millisecond),
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.FixedZone("UTC+9", 9*3600)),
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	assertAscending(t, values, TimeEncoder{}.Encode)
}

func TestTimeEncoder_FloorsSubMillisecond(t *testing.T) {
	enc := TimeEncoder{}
	base := time.Unix(1_700_000_000, 0)

	a, err := enc.Encode(base.Add(100 * time.Microsecond))
	require.NoError(t, err)
	b, err := enc.Encode(base.Add(900 * time.Microsecond))
	require.NoError(t, err)
	require.Equal(t, a, b)

	before, err := enc.Encode(base.Add(-100 * time.Microsecond))
	require.NoError(t, err)
	require.Less(t, before, a)
}

func TestTimeEncoder_RoundTrip(t *testing.T) {
	enc := TimeEncoder{}
	values := []time.Time{
		time.UnixMilli(0).UTC(),
		time.UnixMilli(-86_400_000).UTC(),
		time.Date(2024, time.February, 29, 13, 14, 15, 16_000_000, time.UTC),
		time.UnixMilli(math.MaxInt64).UTC(),
		time.UnixMilli(math.MinInt64).UTC(),
	}
	for _, v := range values {
		c, err := enc.Encode(v)
		require.NoError(t, err)
		require.True(t, v.Equal(enc.Decode(c)), "%s vs %s", v, enc.Decode(c))
	}
}

func TestTimeEncoder_Extremes(t *testing.T) {
	enc := TimeEncoder{}

	c, err := enc.Encode(time.UnixMilli(math.MinInt64))
	require.NoError(t, err)
	require.Equal(t, uint64(0), c)

	c, err = enc.Encode(time.UnixMilli(math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, MaxCanonical, c)

	_, err = enc.Encode(time.UnixMilli(math.MaxInt64).Add(time.Millisecond))
	require.ErrorIs(t, err, errs.ErrTimeOutOfRange)
	require.ErrorIs(t, err, errs.ErrDomain)

	_, err = enc.Encode(time.UnixMilli(math.MinInt64).Add(-time.Millisecond))
	require.ErrorIs(t, err, errs.ErrTimeOutOfRange)

	_, err = enc.Encode(time.Unix(math.MaxInt64/2, 0))
	require.ErrorIs(t, err, errs.ErrTimeOutOfRange)
}

// === ScalarEncoder / Bounds Tests ===

func TestScalarEncoder_Dispatch(t *testing.T) {
	enc := NewScalarEncoder(nil)
	now := time.Now()

	tests := []struct {
		name  string
		value plaintext.Scalar
		want  func() (uint64, error)
	}{
		{"integer", plaintext.Uint64(42), func() (uint64, error) { return UintEncoder{}.Encode(plaintext.Uint64(42)) }},
		{"float", plaintext.Float64(4.2), func() (uint64, error) { return FloatEncoder{}.Encode(4.2) }},
		{"bool", plaintext.Boolean(true), func() (uint64, error) { return BoolEncoder{}.Encode(true) }},
		{"string", plaintext.Str("x"), func() (uint64, error) { return NewStringEncoder(nil).Encode(plaintext.Str("x")) }},
		{"time", plaintext.Instant(now), func() (uint64, error) { return TimeEncoder{}.Encode(now) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Encode(tt.value)
			require.NoError(t, err)
			want, err := tt.want()
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}

	_, err := enc.Encode(nil)
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

func TestBounds(t *testing.T) {
	lo, hi, err := Bounds(format.FamilyInteger)
	require.NoError(t, err)
	require.Equal(t, uint64(0), lo)
	require.Equal(t, MaxCanonical, hi)

	lo, hi, err = Bounds(format.FamilyFloat)
	require.NoError(t, err)
	negInf, _ := FloatEncoder{}.Encode(math.Inf(-1))
	posInf, _ := FloatEncoder{}.Encode(math.Inf(1))
	require.Equal(t, negInf, lo)
	require.Equal(t, posInf, hi)

	lo, hi, err = Bounds(format.FamilyTime)
	require.NoError(t, err)
	require.Equal(t, uint64(0), lo)
	require.Equal(t, MaxCanonical, hi)

	for _, f := range []format.Family{format.FamilyString, format.FamilyBool, format.FamilyInvalid} {
		_, _, err = Bounds(f)
		require.ErrorIs(t, err, errs.ErrUnsupportedRange)
		require.ErrorIs(t, err, errs.ErrRange)
	}
}

func TestBoundsEncloseFamily(t *testing.T) {
	lo, hi, err := Bounds(format.FamilyFloat)
	require.NoError(t, err)

	for _, v := range []float64{-math.MaxFloat64, 0, math.MaxFloat64} {
		c, err := FloatEncoder{}.Encode(v)
		require.NoError(t, err)
		require.Less(t, lo, c)
		require.Greater(t, hi, c)
	}
}

func assertAscending[T any](t *testing.T, values []T, encode func(T) (uint64, error)) {
	t.Helper()

	encoded := make([]uint64, 0, len(values))
	for _, v := range values {
		c, err := encode(v)
		require.NoError(t, err, "value %v", v)
		encoded = append(encoded, c)
	}

	require.True(t, slices.IsSorted(encoded), "encodings not ascending: %v", encoded)
	for i := 1; i < len(encoded); i++ {
		require.NotEqual(t, encoded[i-1], encoded[i], "values %v and %v collide", values[i-1], values[i])
	}
}

// === Benchmarks ===

func BenchmarkFloatEncoder_Encode(b *testing.B) {
	enc := FloatEncoder{}
	for b.Loop() {
		_, _ = enc.Encode(42.5)
	}
}

func BenchmarkStringEncoder_Encode(b *testing.B) {
	enc := NewStringEncoder(nil)
	s := plaintext.Str("the quick brown fox jumps over the lazy dog")
	for b.Loop() {
		_, _ = enc.Encode(s)
	}
}

func BenchmarkTimeEncoder_Encode(b *testing.B) {
	enc := TimeEncoder{}
	now := time.Now()
	for b.Loop() {
		_, _ = enc.Encode(now)
	}
}
