package rng

import "encoding/binary"

// Helper functions for implementing the wider Source methods on top of a
// generator's narrowest primitive. A generator that picks one of these
// helpers has fixed its derivation: swapping e.g. FillBytesVia32 for
// FillBytesVia64 changes the output stream and is a breaking change.

// Uint64From32 builds a 64-bit word from two consecutive Uint32 draws,
// low word first.
func Uint64From32(src Source) uint64 {
	lo := uint64(src.Uint32())
	hi := uint64(src.Uint32())
	return lo | hi<<32
}

// FillBytesVia32 fills dest from consecutive Uint32 draws, each written in
// little-endian byte order. A trailing chunk shorter than 4 bytes takes the
// low-order bytes of one extra word; the rest of that word is discarded.
func FillBytesVia32(src Source, dest []byte) {
	for len(dest) >= 4 {
		binary.LittleEndian.PutUint32(dest, src.Uint32())
		dest = dest[4:]
	}
	if len(dest) > 0 {
		var chunk [4]byte
		binary.LittleEndian.PutUint32(chunk[:], src.Uint32())
		copy(dest, chunk[:len(dest)])
	}
}

// FillBytesVia64 fills dest from consecutive Uint64 draws, each written in
// little-endian byte order. A trailing chunk shorter than 8 bytes takes the
// low-order bytes of one extra word; the rest of that word is discarded.
func FillBytesVia64(src Source, dest []byte) {
	for len(dest) >= 8 {
		binary.LittleEndian.PutUint64(dest, src.Uint64())
		dest = dest[8:]
	}
	if len(dest) > 0 {
		var chunk [8]byte
		binary.LittleEndian.PutUint64(chunk[:], src.Uint64())
		copy(dest, chunk[:len(dest)])
	}
}
