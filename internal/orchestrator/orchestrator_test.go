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

package orchestrator_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mjuhel/blockzip/internal/applog"
	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/codec"
	"github.com/mjuhel/blockzip/internal/orchestrator"
)

var _ = Describe("Orchestrator", func() {
	var (
		dir string
		o   *orchestrator.Orchestrator
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		o = orchestrator.New(codec.NewRegistry(), applog.New(io.Discard, 0))
	})

	baseRequest := func(dir string) orchestrator.Request {
		return orchestrator.Request{
			Stdin:  bytes.NewReader(nil),
			Stdout: io.Discard,
			Stderr: io.Discard,
		}
	}

	Describe("a full compress/decompress round trip", func() {
		It("produces a file that decompresses back to the original bytes", func() {
			input := filepath.Join(dir, "report.csv")
			Expect(os.WriteFile(input, []byte("the quick brown fox jumps over the lazy dog, repeatedly, "+
				"many many times, to give the codec something worth compressing"), 0o644)).To(Succeed())

			compressed := filepath.Join(dir, "report.csv.zlib")
			req := baseRequest(dir)
			req.Direction = orchestrator.Compress
			req.InputPath = input
			req.OutputPath = compressed
			req.Algorithm = codec.Zlib
			req.Level = codec.Balanced

			Expect(o.Run(req)).To(BeNil())
			Expect(compressed).To(BeAnExistingFile())

			decompressed := filepath.Join(dir, "report.csv.out")
			dreq := baseRequest(dir)
			dreq.Direction = orchestrator.Decompress
			dreq.InputPath = compressed
			dreq.OutputPath = decompressed
			dreq.Algorithm = codec.Zlib
			dreq.Level = codec.Balanced

			Expect(o.Run(dreq)).To(BeNil())

			got, err := os.ReadFile(decompressed)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(got)).To(ContainSubstring("the quick brown fox"))
		})
	})

	Describe("algorithm resolution", func() {
		It("rejects an unknown explicit algorithm name", func() {
			input := filepath.Join(dir, "a.txt")
			Expect(os.WriteFile(input, []byte("hi"), 0o644)).To(Succeed())

			req := baseRequest(dir)
			req.Direction = orchestrator.Compress
			req.InputPath = input
			req.OutputPath = filepath.Join(dir, "a.out")
			req.Algorithm = codec.Algorithm(99)

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(err.Code).To(Equal(cerr.CodeUnknownAlgorithm))
		})

		It("requires an explicit algorithm when decompressing standard input", func() {
			req := baseRequest(dir)
			req.Direction = orchestrator.Decompress
			req.OutputPath = filepath.Join(dir, "out")

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(err.Code).To(Equal(cerr.CodeMissingAlgorithm))
		})

		It("requires an explicit algorithm when compressing standard input", func() {
			req := baseRequest(dir)
			req.Direction = orchestrator.Compress
			req.OutputPath = filepath.Join(dir, "out")
			req.Level = codec.Balanced

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(err.Code).To(Equal(cerr.CodeMissingAlgorithm))
		})

		It("infers the algorithm from the input extension on decompress", func() {
			input := filepath.Join(dir, "notes.txt")
			Expect(os.WriteFile(input, []byte("hello there, this is a sentence long enough to compress"), 0o644)).To(Succeed())

			compressed := filepath.Join(dir, "notes.txt.lz4")
			creq := baseRequest(dir)
			creq.Direction = orchestrator.Compress
			creq.InputPath = input
			creq.OutputPath = compressed
			creq.Algorithm = codec.LZ4

			Expect(o.Run(creq)).To(BeNil())

			dreq := baseRequest(dir)
			dreq.Direction = orchestrator.Decompress
			dreq.InputPath = compressed
			dreq.OutputPath = filepath.Join(dir, "notes.txt.out")

			Expect(o.Run(dreq)).To(BeNil())
			Expect(dreq.OutputPath).To(BeAnExistingFile())
		})
	})

	Describe("output resolution", func() {
		It("rejects an undefined output when stdin is the source, stdout is a terminal, and no output was given", func() {
			req := baseRequest(dir)
			req.Direction = orchestrator.Compress
			req.Algorithm = codec.Zlib
			req.StdoutIsTerminal = true

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(err.Code).To(Equal(cerr.CodeUndefinedOutput))
		})

		It("falls back to stdout when stdout is not a terminal", func() {
			input := filepath.Join(dir, "a.txt")
			Expect(os.WriteFile(input, []byte("some content to compress for the stdout fallback case"), 0o644)).To(Succeed())

			var out bytes.Buffer
			req := baseRequest(dir)
			req.Direction = orchestrator.Compress
			req.InputPath = input
			req.Algorithm = codec.Zlib
			req.StdoutIsTerminal = false
			req.Stdout = &out

			Expect(o.Run(req)).To(BeNil())
			Expect(out.Len()).To(BeNumerically(">", 0))
		})
	})

	Describe("path safety", func() {
		It("rejects input and output paths that resolve to the same file", func() {
			input := filepath.Join(dir, "same.txt")
			Expect(os.WriteFile(input, []byte("data"), 0o644)).To(Succeed())

			req := baseRequest(dir)
			req.Direction = orchestrator.Compress
			req.InputPath = input
			req.OutputPath = input
			req.Algorithm = codec.Zlib

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(err.Code).To(Equal(cerr.CodeSamePath))
		})

		It("refuses to overwrite an existing output file without Force", func() {
			input := filepath.Join(dir, "in.txt")
			Expect(os.WriteFile(input, []byte("data"), 0o644)).To(Succeed())
			output := filepath.Join(dir, "out.zlib")
			Expect(os.WriteFile(output, []byte("already here"), 0o644)).To(Succeed())

			req := baseRequest(dir)
			req.Direction = orchestrator.Compress
			req.InputPath = input
			req.OutputPath = output
			req.Algorithm = codec.Zlib

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(err.Code).To(Equal(cerr.CodeOutputExists))
		})
	})

	Describe("cleanup on failure", func() {
		It("removes the partially-written output file when decompression fails", func() {
			corrupt := filepath.Join(dir, "corrupt.zlib")
			Expect(os.WriteFile(corrupt, []byte("not actually zlib data at all"), 0o644)).To(Succeed())

			output := filepath.Join(dir, "corrupt.out")
			req := baseRequest(dir)
			req.Direction = orchestrator.Decompress
			req.InputPath = corrupt
			req.OutputPath = output
			req.Algorithm = codec.Zlib

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(err.Code).To(Equal(cerr.CodeDecompressFailed))
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("never attempts to remove anything when the destination is standard output", func() {
			corrupt := filepath.Join(dir, "corrupt2.zlib")
			Expect(os.WriteFile(corrupt, []byte("still not zlib data"), 0o644)).To(Succeed())

			var out bytes.Buffer
			req := baseRequest(dir)
			req.Direction = orchestrator.Decompress
			req.InputPath = corrupt
			req.Algorithm = codec.Zlib
			req.StdoutIsTerminal = false
			req.Stdout = &out

			err := o.Run(req)
			Expect(err).NotTo(BeNil())
			Expect(corrupt).To(BeAnExistingFile())
		})
	})
})
