/*
 * MIT License
 *
 * Copyright (c) 2026 Mathieu Juhel
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package codec_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mjuhel/blockzip/internal/codec"
)

var _ = Describe("Streaming round trips", func() {
	var reg *codec.Registry

	BeforeEach(func() {
		reg = codec.NewRegistry()
	})

	roundTrip := func(name string, data []byte, bufferSize int) []byte {
		c, ok := reg.Lookup(name)
		Expect(ok).To(BeTrue())

		src := newMemSource(data)
		snk := newMemSink()
		Expect(c.CompressStream(src, snk, bufferSize, codec.Balanced)).To(BeNil())

		dsrc := newMemSource(snk.Bytes())
		dsnk := newMemSink()
		Expect(c.DecompressStream(dsrc, dsnk, bufferSize, codec.Balanced)).To(BeNil())

		return dsnk.Bytes()
	}

	DescribeTable("recovers the original bytes for every non-cgo algorithm",
		func(name string) {
			data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 500)
			Expect(roundTrip(name, data, 4096)).To(Equal(data))
		},
		Entry("zlib", "zlib"),
		Entry("lz4", "lz4"),
		Entry("lzma", "lzma"),
	)

	It("round-trips empty input", func() {
		Expect(roundTrip("zlib", nil, 4096)).To(BeEmpty())
	})

	It("round-trips input smaller than one buffer", func() {
		Expect(roundTrip("zlib", []byte("short"), 64*1024)).To(Equal([]byte("short")))
	})

	It("round-trips input that saturates the destination buffer repeatedly", func() {
		data := bytes.Repeat([]byte{0xAB, 0xCD, 0xEF, 0x01}, 20000)
		Expect(roundTrip("lz4", data, 128)).To(Equal(data))
	})

	It("round-trips highly compressible input across many small buffers", func() {
		// Mirrors spec.md §8 scenario S2: a long run of identical bytes
		// drives lz4 into match lengths whose continuation bytes can span
		// more than one feed chunk before the decoder produces any output.
		data := bytes.Repeat([]byte{0x00}, 2*1024*1024)
		Expect(roundTrip("lz4", data, 256)).To(Equal(data))
	})

	It("fails decompression of truncated compressed input", func() {
		c, ok := reg.Lookup("zlib")
		Expect(ok).To(BeTrue())

		src := newMemSource([]byte("a reasonably long line to compress for truncation testing"))
		snk := newMemSink()
		Expect(c.CompressStream(src, snk, 4096, codec.Balanced)).To(BeNil())

		truncated := snk.Bytes()[:len(snk.Bytes())/2]
		dsrc := newMemSource(truncated)
		dsnk := newMemSink()
		err := c.DecompressStream(dsrc, dsnk, 4096, codec.Balanced)
		Expect(err).ToNot(BeNil())
	})

	It("fails decompression of garbage input", func() {
		c, ok := reg.Lookup("zlib")
		Expect(ok).To(BeTrue())

		dsrc := newMemSource([]byte("not a zlib stream at all"))
		dsnk := newMemSink()
		err := c.DecompressStream(dsrc, dsnk, 4096, codec.Balanced)
		Expect(err).ToNot(BeNil())
	})
})
