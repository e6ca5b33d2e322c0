// Package aes128 is a block order-revealing encryption engine built on
// AES-128, following the Lewi-Wu left/right construction with one octet
// per block.
//
// The PRF key k1 keys the pseudorandom function that produces the left
// blocks and the random-oracle inputs; the PRP key k2 derives one octet
// permutation per plaintext prefix. Left ciphertexts are deterministic,
// right ciphertexts carry a fresh random nonce. Comparing the left half of
// one ciphertext with the right half of another reveals only the order of
// the two plaintexts and the index of the first differing octet.
//
// With the default parameters (64-bit plaintexts, 8 blocks) a serialized
// ciphertext is 408 bytes.
package aes128

import (
	"crypto/aes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/internal/options"
	"github.com/arloliu/oreenc/primitive"
)

// SchemeName identifies ciphertexts produced by this engine.
const SchemeName = "ore-aes128-bit8"

// Engine is the AES-128 block ORE engine. The zero value is not usable;
// create engines with NewEngine.
type Engine struct {
	random io.Reader
}

// Option configures an Engine.
type Option = options.Option[*Engine]

// WithRandom sets the source of right-ciphertext nonces.
// The default is crypto/rand.Reader.
func WithRandom(r io.Reader) Option {
	return options.New(func(e *Engine) error {
		if r == nil {
			return fmt.Errorf("%w: nil random source", errs.ErrConfiguration)
		}
		e.random = r

		return nil
	})
}

var _ primitive.Engine = (*Engine)(nil)

// Default is the engine used when none is configured.
var Default = &Engine{random: rand.Reader}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{random: rand.Reader}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Scheme returns SchemeName.
func (e *Engine) Scheme() string { return SchemeName }

// Size returns the serialized ciphertext length for the given block count.
func (e *Engine) Size(blocks int) int { return Size(blocks) }

// New creates a Handle keyed with the PRF key k1 and PRP key k2.
//
// Each block covers one octet, so p.Bits must be 8*p.Blocks and p.Blocks
// must lie in 1..MaxBlocks.
func (e *Engine) New(k1, k2 []byte, p format.Params) (primitive.Handle, error) {
	if p.Blocks < 1 || p.Blocks > MaxBlocks || p.Bits != 8*p.Blocks {
		return nil, fmt.Errorf("%w: unsupported parameters %s", errs.ErrInitialization, p)
	}

	prf, err := aes.NewCipher(k1)
	if err != nil {
		return nil, fmt.Errorf("%w: k1: %w", errs.ErrInitialization, err)
	}

	prpKeys, err := aes.NewCipher(k2)
	if err != nil {
		return nil, fmt.Errorf("%w: k2: %w", errs.ErrInitialization, err)
	}

	random := e.random
	if random == nil {
		random = rand.Reader
	}

	return &handle{
		prf:    prf,
		prp:    prpKeys,
		params: p,
		random: random,
	}, nil
}

// Parse deserializes a ciphertext produced by this engine.
func (e *Engine) Parse(data []byte, blocks int) (primitive.Ciphertext, error) {
	return parseCiphertext(data, blocks)
}

// Compare orders two ciphertexts using the left half of a and the right
// half of b. It returns -1, 0 or +1.
func (e *Engine) Compare(a, b primitive.Ciphertext) (int, error) {
	ca, ok := a.(*Ciphertext)
	if !ok || ca == nil {
		return 0, fmt.Errorf("%w: left operand is %T", errs.ErrComparisonType, a)
	}

	cb, ok := b.(*Ciphertext)
	if !ok || cb == nil {
		return 0, fmt.Errorf("%w: right operand is %T", errs.ErrComparisonType, b)
	}

	if ca.blocks != cb.blocks {
		return 0, fmt.Errorf("%w: block counts %d and %d differ",
			errs.ErrComparisonType, ca.blocks, cb.blocks)
	}

	return compare(ca, cb)
}

func compare(a, b *Ciphertext) (int, error) {
	axt, bxt := a.xt(), b.xt()

	l := -1
	for i := range axt {
		if axt[i] != bxt[i] {
			l = i
			break
		}
	}
	if l < 0 {
		return 0, nil
	}

	ro, err := aes.NewCipher(b.nonce())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrComparisonType, err)
	}

	var h [blockSize]byte
	ro.Encrypt(h[:], a.f(l))

	if getBit(b.right(l), axt[l])^(h[0]&1) == 1 {
		return 1, nil
	}

	return -1, nil
}
