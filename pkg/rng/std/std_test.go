package std_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/nixpulvis/rand/pkg/rng/std"
)

var _ = Describe("Std", func() {
	Describe("New", func() {
		It("Should return a working OS-seeded generator", func() {
			src, err := New()
			Expect(err).NotTo(HaveOccurred())
			buf := make([]byte, 64)
			Expect(src.TryFill(buf)).To(Succeed())
		})
		It("Should return independently seeded generators", func() {
			ra, err := New()
			Expect(err).NotTo(HaveOccurred())
			rb, err := New()
			Expect(err).NotTo(HaveOccurred())
			// 8 equal words from independent seeds is effectively impossible
			equal := true
			for i := 0; i < 8; i++ {
				if ra.Uint64() != rb.Uint64() {
					equal = false
				}
			}
			Expect(equal).To(BeFalse())
		})
	})

	Describe("NewFromPhrase", func() {
		It("Should be deterministic in the phrase", func() {
			ra := NewFromPhrase("alea iacta est")
			rb := NewFromPhrase("alea iacta est")
			for i := 0; i < 1000; i++ {
				Expect(ra.Uint32()).To(Equal(rb.Uint32()))
			}
		})
		It("Should give distinct streams for distinct phrases", func() {
			ra := NewFromPhrase("alea iacta est")
			rb := NewFromPhrase("alea iacta est.")
			Expect(ra.Uint32()).NotTo(Equal(rb.Uint32()))
		})
	})
})
