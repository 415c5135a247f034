// Package isaac implements the ISAAC family of random number generators
// designed by Bob Jenkins.
//
// ISAAC is generally accepted as suitable for cryptographic purposes, but
// this implementation has not been verified as such. Prefer a generator
// deferring to the operating system, like osrand, for cases that need high
// security.
package isaac

import (
	"encoding/binary"

	"github.com/nixpulvis/rand/pkg/rng"
)

const (
	randSizeLen = 8
	randSize    = 1 << randSizeLen
	midpoint    = randSize / 2
)

var (
	_ rng.Source             = (*IsaacRng)(nil)
	_ rng.Seedable[[]uint32] = (*IsaacRng)(nil)
)

// IsaacRng is the 32-bit variant of the ISAAC random number generator.
//
// The state consists of a 256-word entropy pool which every refill round
// mixes into itself, a 256-word buffer of already-computed results, and
// three accumulators. cnt counts the unconsumed entries left in the result
// buffer; when it hits zero a full refill round runs before any further
// output.
type IsaacRng struct {
	cnt     uint32
	rsl     [randSize]uint32
	mem     [randSize]uint32
	a, b, c uint32
}

// NewIsaac creates an ISAAC random number generator using the default
// fixed seed. The output is not reproducible in any useful sense, but it
// is also not random; prefer NewIsaacFromSeed or NewIsaacFromSource.
func NewIsaac() *IsaacRng {
	r := &IsaacRng{}
	r.init(false)
	return r
}

// NewIsaacFromSeed creates an ISAAC random number generator with a seed.
// The seed can be any length: at most 256 words are used and any more are
// silently ignored, shorter seeds are zero-padded. A generator constructed
// with a given seed generates the same sequence of values as all other
// generators constructed with that seed, on every platform.
func NewIsaacFromSeed(seed []uint32) *IsaacRng {
	r := &IsaacRng{}
	r.Reseed(seed)
	return r
}

// NewIsaacFromSource creates an ISAAC random number generator seeded with
// entropy drawn from src. It draws exactly one pool worth of bytes and
// propagates the source's error unchanged if the draw fails.
func NewIsaacFromSource(src rng.Source) (*IsaacRng, error) {
	buf := make([]byte, randSize*4)
	if err := src.TryFill(buf); err != nil {
		return nil, err
	}
	r := &IsaacRng{}
	for i := range r.rsl {
		r.rsl[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	r.init(true)
	return r, nil
}

// Reseed resets the generator from the given seed, zero-padded or
// truncated to the pool size. Reseeding is all-or-nothing: all
// accumulators and the consumed count are cleared before initialisation
// reruns, so the generator afterwards is indistinguishable from a fresh
// one built with NewIsaacFromSeed.
func (r *IsaacRng) Reseed(seed []uint32) {
	for i := range r.rsl {
		if i < len(seed) {
			r.rsl[i] = seed[i]
		} else {
			r.rsl[i] = 0
		}
	}
	r.cnt = 0
	r.a, r.b, r.c = 0, 0, 0
	r.init(true)
}

// init scrambles the pool and produces the first batch of output. If
// useSeed is true the current content of rsl is mixed in as the seed,
// otherwise the pool is constructed from the scrambled constant alone.
func (r *IsaacRng) init(useSeed bool) {
	// the golden ratio
	a := uint32(0x9e3779b9)
	b, c, d := a, a, a
	e, f, g, h := a, a, a, a

	mix := func() {
		a ^= b << 11
		d += a
		b += c
		b ^= c >> 2
		e += b
		c += d
		c ^= d << 8
		f += c
		d += e
		d ^= e >> 16
		g += d
		e += f
		e ^= f << 10
		h += e
		f += g
		f ^= g >> 4
		a += f
		g += h
		g ^= h << 8
		b += g
		h += a
		h ^= a >> 9
		c += h
		a += b
	}

	for i := 0; i < 4; i++ {
		mix()
	}

	fill := func(i int) {
		r.mem[i] = a
		r.mem[i+1] = b
		r.mem[i+2] = c
		r.mem[i+3] = d
		r.mem[i+4] = e
		r.mem[i+5] = f
		r.mem[i+6] = g
		r.mem[i+7] = h
	}

	if useSeed {
		memloop := func(arr *[randSize]uint32) {
			for i := 0; i < randSize; i += 8 {
				a += arr[i]
				b += arr[i+1]
				c += arr[i+2]
				d += arr[i+3]
				e += arr[i+4]
				f += arr[i+5]
				g += arr[i+6]
				h += arr[i+7]
				mix()
				fill(i)
			}
		}
		// first pass folds in the seed, second folds the pool into itself
		memloop(&r.rsl)
		memloop(&r.mem)
	} else {
		for i := 0; i < randSize; i += 8 {
			mix()
			fill(i)
		}
	}

	r.isaac()
}

// isaac runs one permutation round, refilling the result buffer.
func (r *IsaacRng) isaac() {
	r.c++
	a := r.a
	b := r.b + r.c

	ind := func(x uint32) uint32 {
		return r.mem[(x>>2)&(randSize-1)]
	}

	step := func(i, m2 int, mix uint32) {
		x := r.mem[i]
		a = (a ^ mix) + r.mem[m2]
		y := ind(x) + a + b
		r.mem[i] = y
		b = ind(y>>randSizeLen) + x
		r.rsl[i] = b
	}

	// every entry's mixing partner lives exactly midpoint entries away,
	// alternating direction between the two passes
	for _, off := range [2][2]int{{0, midpoint}, {midpoint, 0}} {
		mr, m2 := off[0], off[1]
		for base := 0; base < midpoint; base += 4 {
			step(base+mr, base+m2, a<<13)
			step(base+1+mr, base+1+m2, a>>6)
			step(base+2+mr, base+2+m2, a<<2)
			step(base+3+mr, base+3+m2, a>>16)
		}
	}

	r.a = a
	r.b = b
	r.cnt = randSize
}

// Uint32 returns the next random 32-bit word.
func (r *IsaacRng) Uint32() uint32 {
	if r.cnt == 0 {
		// make some more numbers
		r.isaac()
	}
	r.cnt--

	// cnt is already bounded by the refill above; the mask only reassures
	// the bounds check and must not change which entry is selected.
	return r.rsl[r.cnt%randSize]
}

// Uint64 returns the next random 64-bit word, derived from two Uint32
// draws, low word first.
func (r *IsaacRng) Uint64() uint64 {
	return rng.Uint64From32(r)
}

// FillBytes fills dest entirely with random data, derived from Uint32
// draws in little-endian byte order.
func (r *IsaacRng) FillBytes(dest []byte) {
	rng.FillBytesVia32(r, dest)
}

// TryFill fills dest entirely with random data. It never fails.
func (r *IsaacRng) TryFill(dest []byte) error {
	r.FillBytes(dest)
	return nil
}

// Clone returns an independent copy of the generator. The copy produces
// exactly the same future output as the original.
func (r *IsaacRng) Clone() *IsaacRng {
	c := *r
	return &c
}

// String returns a type tag. The internal state is deliberately opaque.
func (r *IsaacRng) String() string {
	return "isaac.IsaacRng"
}
