package rng_test

import (
	"errors"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/nixpulvis/rand/pkg/rng"
)

var _ = Describe("Errors", func() {
	kinds := []ErrorKind{Unavailable, Transient, NotReady, Other}

	Describe("ErrorKind", func() {
		It("Should recommend retrying exactly for transient and not-ready failures", func() {
			Expect(Unavailable.ShouldRetry()).To(BeFalse())
			Expect(Transient.ShouldRetry()).To(BeTrue())
			Expect(NotReady.ShouldRetry()).To(BeTrue())
			Expect(Other.ShouldRetry()).To(BeFalse())
		})
		It("Should recommend waiting exactly for not-ready failures", func() {
			Expect(Unavailable.ShouldWait()).To(BeFalse())
			Expect(Transient.ShouldWait()).To(BeFalse())
			Expect(NotReady.ShouldWait()).To(BeTrue())
			Expect(Other.ShouldWait()).To(BeFalse())
		})
		It("Should describe every kind with a fixed nonempty string", func() {
			seen := map[string]bool{}
			for _, kind := range kinds {
				desc := kind.Description()
				Expect(desc).NotTo(BeEmpty())
				Expect(desc).To(Equal(kind.Description()))
				seen[desc] = true
			}
			Expect(seen).To(HaveLen(len(kinds)))
		})
		It("Should panic when describing an unknown kind", func() {
			Expect(func() { _ = ErrorKind(42).Description() }).To(Panic())
		})
	})

	Describe("Error", func() {
		It("Should render as an RNG error with the kind description", func() {
			err := NewError(NotReady)
			Expect(err.Error()).To(Equal("RNG error: not ready yet"))
			Expect(err.Kind).To(Equal(NotReady))
		})
		It("Should have no details when constructed with a kind only", func() {
			Expect(NewError(Transient).Details()).To(BeEmpty())
			Expect(NewError(Transient).Unwrap()).To(BeNil())
		})
		It("Should expose an attached message through Details", func() {
			err := NewErrorMsg(Unavailable, "entropy pool missing")
			Expect(err.Details()).To(Equal("entropy pool missing"))
			Expect(err.Error()).To(Equal("RNG error: permanent failure or unavailable"))
		})
		It("Should expose a wrapped cause through Details and Unwrap", func() {
			err := WrapError(Transient, io.ErrUnexpectedEOF)
			Expect(err.Details()).To(Equal(io.ErrUnexpectedEOF.Error()))
			Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
		})
		It("Should keep retry semantics independent of details", func() {
			plain := NewError(NotReady)
			detailed := WrapError(NotReady, io.ErrUnexpectedEOF)
			Expect(plain.Kind.ShouldRetry()).To(Equal(detailed.Kind.ShouldRetry()))
			Expect(plain.Kind.ShouldWait()).To(Equal(detailed.Kind.ShouldWait()))
		})
	})
})
