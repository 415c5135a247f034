// Package chacha implements a random number generator based on the
// ChaCha20 stream cipher: the output is the keystream the cipher produces
// for an all-zero nonce, one 64-byte block at a time.
package chacha

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"

	"github.com/nixpulvis/rand/pkg/rng"
)

const (
	// KeySize is the seed length in bytes.
	KeySize = chacha.KeySize

	rounds    = 20
	blockSize = 64
)

var (
	_ rng.CryptoSource            = (*ChaChaRng)(nil)
	_ rng.Seedable[[KeySize]byte] = (*ChaChaRng)(nil)
)

// ChaChaRng is a cryptographically strong generator keyed by a 32-byte
// seed. All state is held by value, so a structural copy of the generator
// continues the exact output stream of the original.
type ChaChaRng struct {
	key     [KeySize]byte
	counter uint64
	buf     [blockSize]byte
	used    int
}

// NewChaCha creates a ChaCha generator using the all-zero default key.
// The output is the well-known zero-key keystream; prefer
// NewChaChaFromSeed or NewChaChaFromSource.
func NewChaCha() *ChaChaRng {
	return NewChaChaFromSeed([KeySize]byte{})
}

// NewChaChaFromSeed creates a ChaCha generator keyed with the given seed.
// A generator constructed with a given seed generates the same sequence of
// values as all other generators constructed with that seed, on every
// platform.
func NewChaChaFromSeed(seed [KeySize]byte) *ChaChaRng {
	r := &ChaChaRng{}
	r.Reseed(seed)
	return r
}

// NewChaChaFromSource creates a ChaCha generator keyed with entropy drawn
// from src. It propagates the source's error unchanged if the draw fails.
func NewChaChaFromSource(src rng.Source) (*ChaChaRng, error) {
	var seed [KeySize]byte
	if err := src.TryFill(seed[:]); err != nil {
		return nil, err
	}
	return NewChaChaFromSeed(seed), nil
}

// Reseed rekeys the generator and rewinds the keystream to its beginning.
func (r *ChaChaRng) Reseed(seed [KeySize]byte) {
	r.key = seed
	r.counter = 0
	r.used = blockSize
}

// refill generates the next keystream block. The cipher instance is
// rebuilt from key and block counter each time, keeping the whole
// generator state in plain value fields.
func (r *ChaChaRng) refill() {
	var nonce [chacha.NonceSize]byte
	c, err := chacha.NewCipher(nonce[:], r.key[:], rounds)
	if err != nil {
		panic("chacha: " + err.Error())
	}
	c.SetCounter(r.counter)
	r.buf = [blockSize]byte{}
	c.XORKeyStream(r.buf[:], r.buf[:])
	r.counter++
	r.used = 0
}

// Uint32 returns the next random 32-bit word: the next four keystream
// bytes, decoded little-endian.
func (r *ChaChaRng) Uint32() uint32 {
	if r.used == blockSize {
		r.refill()
	}
	v := binary.LittleEndian.Uint32(r.buf[r.used:])
	r.used += 4
	return v
}

// Uint64 returns the next random 64-bit word, derived from two Uint32
// draws, low word first.
func (r *ChaChaRng) Uint64() uint64 {
	return rng.Uint64From32(r)
}

// FillBytes fills dest entirely with random data, derived from Uint32
// draws in little-endian byte order.
func (r *ChaChaRng) FillBytes(dest []byte) {
	rng.FillBytesVia32(r, dest)
}

// TryFill fills dest entirely with random data. It never fails.
func (r *ChaChaRng) TryFill(dest []byte) error {
	r.FillBytes(dest)
	return nil
}

// Clone returns an independent copy of the generator. The copy produces
// exactly the same future output as the original.
func (r *ChaChaRng) Clone() *ChaChaRng {
	c := *r
	return &c
}

// CryptoSource marks the generator as usable where a rng.CryptoSource is
// required.
func (r *ChaChaRng) CryptoSource() {}

// String returns a type tag. The internal state is deliberately opaque.
func (r *ChaChaRng) String() string {
	return "chacha.ChaChaRng"
}
