// Package rngtest provides trivial rng.Source implementations for tests:
// a deterministic counting source and a source that always fails.
package rngtest

import "github.com/nixpulvis/rand/pkg/rng"

// CountingSource returns consecutive 32-bit integers starting from a given
// value. Useful wherever a test needs a fully predictable Source.
type CountingSource struct {
	next uint32
}

// NewCounting returns a CountingSource starting at start.
func NewCounting(start uint32) *CountingSource {
	return &CountingSource{next: start}
}

// Uint32 returns the next integer in sequence.
func (s *CountingSource) Uint32() uint32 {
	v := s.next
	s.next++
	return v
}

// Uint64 derives a 64-bit word from two Uint32 draws, low word first.
func (s *CountingSource) Uint64() uint64 {
	return rng.Uint64From32(s)
}

// FillBytes fills dest from Uint32 draws in little-endian byte order.
func (s *CountingSource) FillBytes(dest []byte) {
	rng.FillBytesVia32(s, dest)
}

// TryFill fills dest entirely. It never fails.
func (s *CountingSource) TryFill(dest []byte) error {
	s.FillBytes(dest)
	return nil
}

// ErrSource fails every TryFill with an error of the configured kind, for
// testing error propagation through seeding paths. The infallible methods
// panic, as external sources do when the error cannot be handled.
type ErrSource struct {
	Kind rng.ErrorKind
}

// TryFill always fails.
func (s *ErrSource) TryFill(dest []byte) error {
	return rng.NewErrorMsg(s.Kind, "test source always fails")
}

// FillBytes always panics.
func (s *ErrSource) FillBytes(dest []byte) {
	panic(s.TryFill(dest))
}

// Uint32 always panics.
func (s *ErrSource) Uint32() uint32 {
	panic(s.TryFill(nil))
}

// Uint64 always panics.
func (s *ErrSource) Uint64() uint64 {
	panic(s.TryFill(nil))
}
