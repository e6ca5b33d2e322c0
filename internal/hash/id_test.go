package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"empty string", "", ""},
		{"short string", "test", "test"},
		{"unicode string", "héllo wörld ✓", "héllo wörld ✓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, String([]byte(tt.a)), String([]byte(tt.b)))
		})
	}
}

func TestStringDistinguishesInputs(t *testing.T) {
	seen := make(map[uint64]string)
	for _, s := range []string{"", "a", "b", "ab", "ba", "Hello world!", "hello world!"} {
		h := String([]byte(s))
		prev, exists := seen[h]
		require.False(t, exists, "%q and %q hash equal", s, prev)
		seen[h] = s
	}
}

func TestStringIsNotXXHash(t *testing.T) {
	data := []byte("this is a longer test string to hash")
	require.NotEqual(t, Sum64(data), String(data))
}

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64([]byte(tt.data)))
		})
	}
}

func randBytes(n int) []byte {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return b
}

func BenchmarkString(b *testing.B) {
	data := randBytes(20)
	b.ResetTimer()
	for b.Loop() {
		String(data)
	}
}

func BenchmarkSum64(b *testing.B) {
	data := randBytes(136)
	b.ResetTimer()
	for b.Loop() {
		Sum64(data)
	}
}
