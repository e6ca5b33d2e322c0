package aes128

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// prp is a keyed pseudorandom permutation of the octets.
type prp struct {
	forward [domainSize]byte
	inverse [domainSize]byte
}

// newPRP derives a permutation from a 16-byte key with a Fisher-Yates
// shuffle driven by an AES-CTR keystream.
func newPRP(key []byte) (*prp, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("prp key: %w", err)
	}

	var iv [blockSize]byte
	ks := &keystream{stream: cipher.NewCTR(block, iv[:])}

	p := &prp{}
	for i := range p.forward {
		p.forward[i] = byte(i)
	}

	for i := domainSize - 1; i > 0; i-- {
		j := ks.uniform(byte(i))
		p.forward[i], p.forward[j] = p.forward[j], p.forward[i]
	}

	for i, v := range p.forward {
		p.inverse[v] = byte(i)
	}

	return p, nil
}

func (p *prp) permute(x byte) byte { return p.forward[x] }

func (p *prp) invert(y byte) byte { return p.inverse[y] }

// keystream hands out pseudorandom octets from a CTR stream.
type keystream struct {
	stream cipher.Stream
	buf    [domainSize]byte
	pos    int
	filled bool
}

func (k *keystream) next() byte {
	if !k.filled || k.pos == len(k.buf) {
		clear(k.buf[:])
		k.stream.XORKeyStream(k.buf[:], k.buf[:])
		k.pos = 0
		k.filled = true
	}
	b := k.buf[k.pos]
	k.pos++

	return b
}

// uniform returns a uniformly distributed value in [0, hi] by rejection
// sampling under the smallest covering bit mask.
func (k *keystream) uniform(hi byte) byte {
	mask := hi
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4

	for {
		if v := k.next() & mask; v <= hi {
			return v
		}
	}
}
