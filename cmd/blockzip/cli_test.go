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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("blockzip CLI", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("lists the registered algorithms", func() {
		var out, errOut bytes.Buffer
		code := run([]string{"algorithms"}, strings.NewReader(""), &out, &errOut)

		Expect(code).To(Equal(0))
		Expect(out.String()).To(ContainSubstring("lz4"))
		Expect(out.String()).To(ContainSubstring("zlib"))
		Expect(out.String()).To(ContainSubstring("lzma"))
		Expect(out.String()).To(ContainSubstring("lzfse"))
	})

	It("compresses then decompresses a file round trip", func() {
		input := filepath.Join(dir, "notes.txt")
		Expect(os.WriteFile(input, []byte("a modestly sized payload for the command line test"), 0o644)).To(Succeed())

		var out, errOut bytes.Buffer
		compressed := filepath.Join(dir, "notes.txt.zlib")
		code := run([]string{"compress", input, "-m", "zlib", "-o", compressed}, strings.NewReader(""), &out, &errOut)
		Expect(code).To(Equal(0))
		Expect(compressed).To(BeAnExistingFile())

		decompressed := filepath.Join(dir, "notes.txt.out")
		code = run([]string{"decompress", compressed, "-o", decompressed}, strings.NewReader(""), &out, &errOut)
		Expect(code).To(Equal(0))

		got, err := os.ReadFile(decompressed)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(got)).To(ContainSubstring("modestly sized payload"))
	})

	It("exits 2 and reports an unknown algorithm", func() {
		input := filepath.Join(dir, "a.txt")
		Expect(os.WriteFile(input, []byte("hi"), 0o644)).To(Succeed())

		var out, errOut bytes.Buffer
		code := run([]string{"compress", input, "-m", "bogus", "-o", filepath.Join(dir, "a.out")}, strings.NewReader(""), &out, &errOut)

		Expect(code).To(Equal(2))
		Expect(errOut.String()).To(ContainSubstring("unknown algorithm"))
	})

	It("refuses to overwrite an existing output without --force", func() {
		input := filepath.Join(dir, "b.txt")
		Expect(os.WriteFile(input, []byte("hi"), 0o644)).To(Succeed())
		output := filepath.Join(dir, "b.out")
		Expect(os.WriteFile(output, []byte("already there"), 0o644)).To(Succeed())

		var out, errOut bytes.Buffer
		code := run([]string{"compress", input, "-m", "zlib", "-o", output}, strings.NewReader(""), &out, &errOut)

		Expect(code).To(Equal(2))
	})
})
