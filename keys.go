package oreenc

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/arloliu/oreenc/errs"
	"github.com/arloliu/oreenc/validate"
)

// MinMasterKeySize is the shortest master key DeriveKeys accepts.
const MinMasterKeySize = 16

// HKDF info prefixes. Changing either invalidates every ciphertext
// produced from derived keys.
var (
	hkdfInfoPRF = []byte("oreenc.key.prf.v1")
	hkdfInfoPRP = []byte("oreenc.key.prp.v1")
)

// DeriveKeys derives an independent PRF key k1 and PRP key k2 from a
// single master key with HKDF-SHA256. context separates key sets derived
// from the same master key, for example one per indexed column.
func DeriveKeys(master []byte, context string) (k1, k2 []byte, err error) {
	if len(master) < MinMasterKeySize {
		return nil, nil, fmt.Errorf("%w: master key must be at least %d octets, got %d",
			errs.ErrInvalidKey, MinMasterKeySize, len(master))
	}

	if k1, err = deriveKey(master, hkdfInfoPRF, context); err != nil {
		return nil, nil, err
	}

	if k2, err = deriveKey(master, hkdfInfoPRP, context); err != nil {
		clear(k1)
		return nil, nil, err
	}

	return k1, k2, nil
}

// NewFromMasterKey is New with keys from DeriveKeys. The derived keys are
// wiped once the engine handle holds them.
func NewFromMasterKey(master []byte, context string, bits, blocks int, opts ...Option) (*Cipher, error) {
	k1, k2, err := DeriveKeys(master, context)
	if err != nil {
		return nil, err
	}
	defer clear(k1)
	defer clear(k2)

	return New(k1, k2, bits, blocks, opts...)
}

func deriveKey(master, prefix []byte, context string) ([]byte, error) {
	info := make([]byte, 0, len(prefix)+1+len(context))
	info = append(info, prefix...)
	info = append(info, 0)
	info = append(info, context...)

	reader := hkdf.New(sha256.New, master, nil, info)
	derived := make([]byte, validate.KeySize)
	if _, err := io.ReadFull(reader, derived); err != nil {
		clear(derived)
		return nil, fmt.Errorf("%w: key derivation: %w", errs.ErrInitialization, err)
	}

	return derived, nil
}
