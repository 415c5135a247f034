package xorshift_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/nixpulvis/rand/pkg/rng/xorshift"
	"github.com/nixpulvis/rand/pkg/rng"
	"github.com/nixpulvis/rand/pkg/rng/rngtest"
)

var _ = Describe("XorShiftRng", func() {
	seed := [4]uint32{1, 23, 456, 7890}

	Describe("Seeded construction", func() {
		It("Should generate identical streams for identical seeds", func() {
			ra := NewXorShiftFromSeed(seed)
			rb := NewXorShiftFromSeed(seed)
			for i := 0; i < 10000; i++ {
				Expect(ra.Uint32()).To(Equal(rb.Uint32()))
			}
		})
		It("Should reject an all-zero seed", func() {
			Expect(func() { NewXorShiftFromSeed([4]uint32{}) }).To(Panic())
		})
	})

	Describe("Reseed", func() {
		It("Should restart the stream of a fresh generator with that seed", func() {
			r := NewXorShiftFromSeed(seed)
			first := make([]uint32, 100)
			for i := range first {
				first[i] = r.Uint32()
			}
			r.Reseed(seed)
			for i := range first {
				Expect(r.Uint32()).To(Equal(first[i]))
			}
		})
	})

	Describe("Clone", func() {
		It("Should continue the stream identically from any state", func() {
			r := NewXorShiftFromSeed(seed)
			for i := 0; i < 99; i++ {
				r.Uint32()
			}
			clone := r.Clone()
			for i := 0; i < 100; i++ {
				Expect(clone.Uint32()).To(Equal(r.Uint32()))
			}
		})
	})

	Describe("Derived output", func() {
		It("Should fill bytes consistently with Uint32 draws", func() {
			for _, length := range []int{0, 3, 4, 9, 64} {
				ra := NewXorShiftFromSeed(seed)
				rb := NewXorShiftFromSeed(seed)

				buf := make([]byte, length)
				ra.FillBytes(buf)

				want := make([]byte, 0, length+4)
				for len(want) < length {
					want = binary.LittleEndian.AppendUint32(want, rb.Uint32())
				}
				Expect(buf).To(Equal(want[:length]))
			}
		})
	})

	Describe("Seeding from another source", func() {
		It("Should be deterministic for a deterministic source", func() {
			ra, err := NewXorShiftFromSource(rngtest.NewCounting(1))
			Expect(err).NotTo(HaveOccurred())
			rb, err := NewXorShiftFromSource(rngtest.NewCounting(1))
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 100; i++ {
				Expect(ra.Uint32()).To(Equal(rb.Uint32()))
			}
		})
		It("Should propagate the source's error unchanged", func() {
			_, err := NewXorShiftFromSource(&rngtest.ErrSource{Kind: rng.Unavailable})
			Expect(err).To(HaveOccurred())
			rerr, ok := err.(*rng.Error)
			Expect(ok).To(BeTrue())
			Expect(rerr.Kind).To(Equal(rng.Unavailable))
		})
	})

	Describe("Unseeded construction", func() {
		It("Should produce the fixed default stream", func() {
			ra := NewXorShift()
			rb := NewXorShift()
			for i := 0; i < 100; i++ {
				Expect(ra.Uint32()).To(Equal(rb.Uint32()))
			}
		})
	})
})
