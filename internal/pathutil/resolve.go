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

// Package pathutil implements spec.md §4.F: pure string/path logic for
// deriving default output paths and inferring an algorithm from a file
// extension. Nothing here touches the filesystem — DecompressOutput takes
// its exists-predicate as a parameter rather than calling os.Stat itself.
package pathutil

import (
	"strings"

	"github.com/mjuhel/blockzip/internal/codec"
)

// CompressOutput returns the default output path for compressing input,
// appending algo's canonical extension as the final path segment.
func CompressOutput(input string, algo codec.Algorithm) string {
	return input + "." + algo.Extension()
}

// InferAlgorithm reads input's last extension and maps it to a built-in
// Algorithm. It returns (None, false) when the extension doesn't match
// any of lzfse/lz4/zlib/lzma.
func InferAlgorithm(input string) (codec.Algorithm, bool) {
	ext := lastExtension(input)
	a := codec.Parse(ext)
	if a.IsNone() {
		return codec.None, false
	}
	return a, true
}

// DecompressOutput derives the default output path for decompressing
// input, given the algorithm already resolved for it (explicitly or via
// InferAlgorithm). It strips input's last extension if it matches algo's
// name; if the resulting path already exists according to exists, it
// appends the literal ".out" suffix to avoid clobbering an unrelated file.
// exists is the caller's injected predicate (typically backed by os.Stat)
// so this function stays pure string/path logic, per spec.md §4.F.
func DecompressOutput(input string, algo codec.Algorithm, exists func(string) bool) string {
	out := input
	if lastExtension(input) == algo.Extension() {
		out = strings.TrimSuffix(input, "."+algo.Extension())
	}

	if exists(out) {
		out += ".out"
	}
	return out
}

// lastExtension returns input's final path extension, lowercased and
// without the leading dot, or "" if input has none.
func lastExtension(input string) string {
	i := strings.LastIndexByte(input, '.')
	if i < 0 || i == len(input)-1 {
		return ""
	}
	// Reject a bare leading dot ("/.hidden") as an extension: that is a
	// hidden-file name, not a compression suffix.
	if i == 0 || input[i-1] == '/' {
		return ""
	}
	return strings.ToLower(input[i+1:])
}
