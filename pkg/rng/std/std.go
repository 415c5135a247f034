// Package std provides convenience constructors for callers who just want
// a good generator without naming an algorithm.
package std

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/nixpulvis/rand/pkg/rng"
	"github.com/nixpulvis/rand/pkg/rng/isaac"
	"github.com/nixpulvis/rand/pkg/rng/osrand"
)

// New returns the default generator: a native-width ISAAC generator seeded
// from the operating system. Fails only if the OS entropy source fails.
//
// The chosen algorithm and the native-width selection may change between
// releases; callers needing a reproducible stream should construct a named
// generator from a seed instead.
func New() (rng.Source, error) {
	return isaac.NewIsaacWordFromSource(osrand.New())
}

// NewFromPhrase returns a generator deterministically derived from an
// arbitrary string: the phrase is expanded with SHAKE-256 into a full
// 256-word seed for the 32-bit ISAAC generator. The same phrase yields the
// same stream on every platform. Note that a phrase seed is not
// interchangeable with raw word seeding of isaac.NewIsaacFromSeed.
func NewFromPhrase(phrase string) rng.Source {
	buf := make([]byte, 4*256)
	sha3.ShakeSum256(buf, []byte(phrase))
	seed := make([]uint32, 256)
	for i := range seed {
		seed[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return isaac.NewIsaacFromSeed(seed)
}
