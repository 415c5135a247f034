// Package xorshift implements the Xorshift random number generator, a
// simple shift-register generator due to Marsaglia.
//
// Xorshift is fast but fails several statistical tests and is trivially
// predictable; it must not be considered for cryptography.
package xorshift

import (
	"encoding/binary"

	"github.com/nixpulvis/rand/pkg/rng"
)

var (
	_ rng.Source              = (*XorShiftRng)(nil)
	_ rng.Seedable[[4]uint32] = (*XorShiftRng)(nil)
)

// XorShiftRng holds 128 bits of shift-register state. The state must never
// be all zero, otherwise every future output is zero.
type XorShiftRng struct {
	x, y, z, w uint32
}

// NewXorShift creates an Xorshift generator using a fixed default seed.
func NewXorShift() *XorShiftRng {
	return &XorShiftRng{
		x: 0x193a6754,
		y: 0xa8a7d469,
		z: 0x97830e05,
		w: 0x113ba7bb,
	}
}

// NewXorShiftFromSeed creates an Xorshift generator from four seed words.
// Panics if the seed is all zero.
func NewXorShiftFromSeed(seed [4]uint32) *XorShiftRng {
	r := &XorShiftRng{}
	r.Reseed(seed)
	return r
}

// NewXorShiftFromSource creates an Xorshift generator seeded with entropy
// drawn from src, redrawing in the pathological all-zero case.
//
// Seeding an Xorshift generator from another Xorshift instance can
// degenerate into an effective clone of it; prefer seeding from a
// cryptographically strong source.
func NewXorShiftFromSource(src rng.Source) (*XorShiftRng, error) {
	var buf [16]byte
	for {
		if err := src.TryFill(buf[:]); err != nil {
			return nil, err
		}
		r := &XorShiftRng{
			x: binary.LittleEndian.Uint32(buf[0:]),
			y: binary.LittleEndian.Uint32(buf[4:]),
			z: binary.LittleEndian.Uint32(buf[8:]),
			w: binary.LittleEndian.Uint32(buf[12:]),
		}
		if r.x|r.y|r.z|r.w != 0 {
			return r, nil
		}
	}
}

// Reseed resets the generator from the given seed words.
// Panics if the seed is all zero.
func (r *XorShiftRng) Reseed(seed [4]uint32) {
	if seed[0]|seed[1]|seed[2]|seed[3] == 0 {
		panic("xorshift: Reseed called with an all zero seed")
	}
	r.x, r.y, r.z, r.w = seed[0], seed[1], seed[2], seed[3]
}

// Uint32 returns the next random 32-bit word.
func (r *XorShiftRng) Uint32() uint32 {
	x := r.x
	t := x ^ x<<11
	r.x = r.y
	r.y = r.z
	r.z = r.w
	w := r.w
	r.w = w ^ w>>19 ^ t ^ t>>8
	return r.w
}

// Uint64 returns the next random 64-bit word, derived from two Uint32
// draws, low word first.
func (r *XorShiftRng) Uint64() uint64 {
	return rng.Uint64From32(r)
}

// FillBytes fills dest entirely with random data, derived from Uint32
// draws in little-endian byte order.
func (r *XorShiftRng) FillBytes(dest []byte) {
	rng.FillBytesVia32(r, dest)
}

// TryFill fills dest entirely with random data. It never fails.
func (r *XorShiftRng) TryFill(dest []byte) error {
	r.FillBytes(dest)
	return nil
}

// Clone returns an independent copy of the generator. The copy produces
// exactly the same future output as the original.
func (r *XorShiftRng) Clone() *XorShiftRng {
	c := *r
	return &c
}

// String returns a type tag. The internal state is deliberately opaque.
func (r *XorShiftRng) String() string {
	return "xorshift.XorShiftRng"
}
