package rng

// Source represents a source of random numbers, either an algorithmic
// generator or an external provider of entropy.
//
// Algorithmic generators are deterministic: two generators using the same
// algorithm initialised with the same seed produce the same output on every
// platform. To keep that reproducibility, any conversion between output
// widths inside an implementation has to fix its byte order; we use
// little-endian everywhere (see Uint64From32 and the FillBytesVia helpers).
// Once a generator has chosen which primitive its wider outputs and byte
// fills derive from, changing that choice changes the output stream and is
// a breaking change.
//
// A Source interface value holds a reference to the underlying generator,
// so generic code can accept any Source and every call is forwarded to the
// same mutable state without copying it.
//
// Algorithmic generators never fail on the generation path, so most methods
// report no error. External sources can fail; TryFill is the only method
// permitted to report that, the rest either handle the error or panic.
type Source interface {
	// Uint32 returns the next random 32-bit word.
	Uint32() uint32
	// Uint64 returns the next random 64-bit word.
	Uint64() uint64
	// FillBytes fills dest entirely with random data.
	// There is no requirement on how much of the underlying stream is
	// consumed; a whole trailing word may be generated for a partial chunk.
	FillBytes(dest []byte)
	// TryFill fills dest entirely with random data, or reports an Error.
	TryFill(dest []byte) error
}

// CryptoSource is a marker for sources which may be considered for use in
// cryptography. The marker adds no behaviour and guarantees nothing by
// itself; it should only be implemented by well-reviewed implementations of
// well-regarded algorithms, and lets generic code restrict itself to such
// sources.
type CryptoSource interface {
	Source
	// CryptoSource does nothing. Implementing it is a statement of intent.
	CryptoSource()
}

// Seedable is a Source that can be deterministically reset from an explicit
// seed. Reseeding is all-or-nothing: after Reseed the generator produces
// exactly the sequence of a fresh generator built from the same seed.
//
// Only reproducible generators should implement this, i.e. generators with
// a fixed algorithm giving the same results across platforms. Wrappers that
// pick an implementation per platform should not.
type Seedable[Seed any] interface {
	Source
	// Reseed resets the generator state from the given seed.
	Reseed(seed Seed)
}
