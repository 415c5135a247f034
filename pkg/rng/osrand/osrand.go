// Package osrand exposes the operating system's entropy facilities as a
// rng.Source.
package osrand

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"

	"github.com/nixpulvis/rand/pkg/rng"
)

var _ rng.CryptoSource = (*OsRng)(nil)

// OsRng draws every byte from the operating system (crypto/rand). It holds
// no state of its own, is not reproducible, and is the preferred seeding
// source for the algorithmic generators.
type OsRng struct{}

// New returns an OS entropy source.
func New() *OsRng {
	return &OsRng{}
}

// TryFill fills dest from the operating system. This is the only fallible
// primitive; a short or failed read is reported as an Unavailable error
// wrapping the system error.
func (*OsRng) TryFill(dest []byte) error {
	if _, err := io.ReadFull(crand.Reader, dest); err != nil {
		return rng.WrapError(rng.Unavailable, err)
	}
	return nil
}

// FillBytes fills dest from the operating system, panicking if the system
// source fails.
func (r *OsRng) FillBytes(dest []byte) {
	if err := r.TryFill(dest); err != nil {
		panic(err)
	}
}

// Uint32 returns a random 32-bit word from the operating system.
func (r *OsRng) Uint32() uint32 {
	var buf [4]byte
	r.FillBytes(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Uint64 returns a random 64-bit word from the operating system.
func (r *OsRng) Uint64() uint64 {
	var buf [8]byte
	r.FillBytes(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// CryptoSource marks the generator as usable where a rng.CryptoSource is
// required.
func (*OsRng) CryptoSource() {}

// String returns a type tag.
func (*OsRng) String() string {
	return "osrand.OsRng"
}
