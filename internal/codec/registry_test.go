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

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/codec"
)

var _ = Describe("Registry", func() {
	var r *codec.Registry

	BeforeEach(func() {
		r = codec.NewRegistry()
	})

	It("wires all four built-in algorithms, including lzfse", func() {
		Expect(r.Supported()).To(ConsistOf("lz4", "lzfse", "lzma", "zlib"))
	})

	It("looks codecs up case-insensitively", func() {
		c, ok := r.Lookup("ZLIB")
		Expect(ok).To(BeTrue())
		Expect(c.Name()).To(Equal("zlib"))
	})

	It("reports not-found for an unknown name without panicking", func() {
		_, ok := r.Lookup("brotli")
		Expect(ok).To(BeFalse())
	})

	It("reports not-found for an empty name", func() {
		_, ok := r.Lookup("")
		Expect(ok).To(BeFalse())
	})

	Describe("UnknownAlgorithmError", func() {
		It("names the rejected value and the supported set", func() {
			err := r.UnknownAlgorithmError("brotli")
			Expect(err.Error()).To(ContainSubstring("brotli"))
			Expect(err.Error()).To(ContainSubstring("zlib"))
			Expect(err.Layer).To(Equal(cerr.LayerDomain))
		})
	})
})
