package aes128

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/arloliu/oreenc/endian"
	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/format"
	"github.com/arloliu/oreenc/internal/pool"
	"github.com/arloliu/oreenc/primitive"
)

// handle holds the keyed AES instances. cipher.Block values from
// crypto/aes are read-only after construction, so a handle can encrypt
// from many goroutines at once.
type handle struct {
	prf    cipher.Block // keyed with k1
	prp    cipher.Block // keyed with k2, derives per-prefix permutations
	params format.Params
	random io.Reader
}

var _ primitive.Handle = (*handle)(nil)

// Encrypt produces a full (left and right) ciphertext of canonical.
func (h *handle) Encrypt(canonical uint64) (primitive.Ciphertext, error) {
	n := h.params.Blocks
	if h.params.Bits < 64 && canonical>>uint(h.params.Bits) != 0 {
		return nil, fmt.Errorf("%w: plaintext exceeds %d bits", errs.ErrEncryption, h.params.Bits)
	}

	var raw [8]byte
	x := endian.AppendBlocks(raw[:0], endian.GetPlaintextEngine(), canonical)[8-n:]

	ct := newCiphertext(n)
	if _, err := io.ReadFull(h.random, ct.nonce()); err != nil {
		return nil, fmt.Errorf("%w: nonce: %w", errs.ErrEncryption, err)
	}

	ro, err := aes.NewCipher(ct.nonce())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrEncryption, err)
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)
	roKeys := scratch.Resize(domainSize * blockSize)

	xt := ct.xt()
	var in [blockSize]byte
	for i := range n {
		// PRP for the prefix x[0:i].
		prefixInput(&in, x, i, 0, n)
		var prpKey [blockSize]byte
		h.prp.Encrypt(prpKey[:], in[:])
		perm, err := newPRP(prpKey[:])
		clear(prpKey[:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrEncryption, err)
		}

		xt[i] = perm.permute(x[i])

		// Left block: PRF of the prefix and the permuted octet.
		prefixInput(&in, x, i, xt[i], n)
		h.prf.Encrypt(ct.f(i), in[:])

		// Right block: one masked comparison bit per permuted value j.
		for j := range domainSize {
			key := roKeys[j*blockSize : (j+1)*blockSize]
			prefixInput(&in, x, i, byte(j), n)
			h.prf.Encrypt(key, in[:])
			ro.Encrypt(key, key)
		}

		right := ct.right(i)
		for j := range domainSize {
			mask := roKeys[j*blockSize] & 1
			jstar := perm.invert(byte(j))
			setBit(right, byte(j), cmpGreater(jstar, x[i])^mask)
		}
	}
	clear(in[:])

	return ct, nil
}

// prefixInput writes the PRF input for block i: the plaintext prefix
// x[0:i], the octet v at position i and the block index at position n.
func prefixInput(in *[blockSize]byte, x []byte, i int, v byte, n int) {
	clear(in[:])
	copy(in[:i], x[:i])
	in[i] = v
	in[n] = byte(i)
}

func cmpGreater(a, b byte) byte {
	if a > b {
		return 1
	}

	return 0
}
