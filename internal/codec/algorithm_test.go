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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mjuhel/blockzip/internal/codec"
)

var _ = Describe("Algorithm", func() {
	Context("List operations", func() {
		It("returns all four built-in algorithms", func() {
			lst := codec.List()
			Expect(lst).To(HaveLen(4))
			Expect(lst).To(ContainElements(codec.LZFSE, codec.LZ4, codec.Zlib, codec.LZMA))
		})

		It("never includes None in the supported list", func() {
			Expect(codec.List()).ToNot(ContainElement(codec.None))
		})
	})

	Context("Parse", func() {
		It("is case-insensitive", func() {
			Expect(codec.Parse("LZ4")).To(Equal(codec.LZ4))
			Expect(codec.Parse("lz4")).To(Equal(codec.LZ4))
			Expect(codec.Parse("Lz4")).To(Equal(codec.LZ4))
		})

		It("maps an unrecognized name to None", func() {
			Expect(codec.Parse("snappy")).To(Equal(codec.None))
		})
	})

	Context("Extension", func() {
		It("matches the canonical lowercase name", func() {
			Expect(codec.LZMA.Extension()).To(Equal("lzma"))
		})
	})

	Context("JSON round trip", func() {
		It("marshals None as null and back", func() {
			b, err := codec.None.MarshalJSON()
			Expect(err).ToNot(HaveOccurred())
			Expect(string(b)).To(Equal("null"))

			var a codec.Algorithm
			Expect(a.UnmarshalJSON(b)).To(Succeed())
			Expect(a).To(Equal(codec.None))
		})

		It("marshals a concrete algorithm as its quoted name", func() {
			b, err := codec.Zlib.MarshalJSON()
			Expect(err).ToNot(HaveOccurred())
			Expect(string(b)).To(Equal(`"zlib"`))
		})
	})
})

var _ = Describe("Level", func() {
	It("recommends lz4 for fast, lzma for best, zlib otherwise", func() {
		Expect(codec.Fast.RecommendedAlgorithm()).To(Equal(codec.LZ4))
		Expect(codec.Best.RecommendedAlgorithm()).To(Equal(codec.LZMA))
		Expect(codec.Balanced.RecommendedAlgorithm()).To(Equal(codec.Zlib))
	})

	It("defaults an unrecognized level name to balanced", func() {
		Expect(codec.ParseLevel("turbo")).To(Equal(codec.Balanced))
	})

	It("orders buffer sizes fast > balanced", func() {
		Expect(codec.Fast.BufferSize()).To(BeNumerically(">", codec.Balanced.BufferSize()))
	})
})
