package rngtest_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/nixpulvis/rand/pkg/rng/rngtest"
	"github.com/nixpulvis/rand/pkg/rng"
)

var _ = Describe("CountingSource", func() {
	It("Should count from its starting value", func() {
		s := NewCounting(10)
		Expect(s.Uint32()).To(Equal(uint32(10)))
		Expect(s.Uint32()).To(Equal(uint32(11)))
	})
	It("Should never fail TryFill", func() {
		Expect(NewCounting(0).TryFill(make([]byte, 9))).To(Succeed())
	})
})

var _ = Describe("ErrSource", func() {
	It("Should fail every TryFill with its configured kind", func() {
		s := &ErrSource{Kind: rng.Transient}
		err := s.TryFill(make([]byte, 1))
		Expect(err).To(HaveOccurred())
		rerr, ok := err.(*rng.Error)
		Expect(ok).To(BeTrue())
		Expect(rerr.Kind).To(Equal(rng.Transient))
		Expect(rerr.Details()).NotTo(BeEmpty())
	})
	It("Should panic on the infallible methods", func() {
		s := &ErrSource{Kind: rng.Other}
		Expect(func() { s.FillBytes(make([]byte, 1)) }).To(Panic())
		Expect(func() { s.Uint32() }).To(Panic())
		Expect(func() { s.Uint64() }).To(Panic())
	})
})
