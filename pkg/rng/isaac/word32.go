//go:build 386 || arm || mips || mipsle

package isaac

import "github.com/nixpulvis/rand/pkg/rng"

// IsaacWordRng is the ISAAC variant matching the platform's native word
// size, resolved at build time. Its output therefore differs between 32-
// and 64-bit platforms; code that needs reproducible output should name a
// variant explicitly.
type IsaacWordRng = IsaacRng

// NewIsaacWord creates a native-width ISAAC generator with the default
// fixed seed.
func NewIsaacWord() *IsaacWordRng {
	return NewIsaac()
}

// NewIsaacWordFromSource creates a native-width ISAAC generator seeded
// with entropy drawn from src.
func NewIsaacWordFromSource(src rng.Source) (*IsaacWordRng, error) {
	return NewIsaacFromSource(src)
}
