package reserve

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Allocators", func() {
	It("should allocate from the heap", func() {
		buf, err := HeapAllocator{}.Allocate(4096)

		Expect(err).To(BeNil())
		Expect(buf).To(HaveLen(4096))
	})

	It("should reject non-positive sizes on the heap", func() {
		_, err := HeapAllocator{}.Allocate(0)

		Expect(err).To(MatchError(ErrInvalidChunkSize))
	})

	It("should allocate writable memory with the platform allocator", func() {
		a := NewAllocator()

		buf, err := a.Allocate(ChunkSize)

		Expect(err).To(BeNil())
		Expect(buf).To(HaveLen(ChunkSize))

		buf[0] = 1
		buf[ChunkSize-1] = 2
		Expect(buf[0]).To(Equal(byte(1)))
		Expect(buf[ChunkSize-1]).To(Equal(byte(2)))
	})

	It("should reject non-positive sizes with the platform allocator", func() {
		_, err := NewAllocator().Allocate(-1)

		Expect(err).To(MatchError(ErrInvalidChunkSize))
	})
})
