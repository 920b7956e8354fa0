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

package pathutil_test

import (
	"path/filepath"
	"testing"

	"github.com/mjuhel/blockzip/internal/codec"
	"github.com/mjuhel/blockzip/internal/pathutil"
)

func noneExist(string) bool { return false }

func TestCompressOutput(t *testing.T) {
	got := pathutil.CompressOutput("/tmp/report.csv", codec.Zlib)
	if got != "/tmp/report.csv.zlib" {
		t.Fatalf("got %q", got)
	}
}

func TestInferAlgorithmRecognisesAllFour(t *testing.T) {
	cases := map[string]codec.Algorithm{
		"a.lzfse": codec.LZFSE,
		"a.lz4":   codec.LZ4,
		"a.zlib":  codec.Zlib,
		"a.lzma":  codec.LZMA,
		"a.LZ4":   codec.LZ4,
	}
	for name, want := range cases {
		got, ok := pathutil.InferAlgorithm(name)
		if !ok || got != want {
			t.Errorf("InferAlgorithm(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
}

func TestInferAlgorithmFailsOnUnknownExtension(t *testing.T) {
	if _, ok := pathutil.InferAlgorithm("report.gz"); ok {
		t.Fatal("expected inference to fail for an unrecognised extension")
	}
	if _, ok := pathutil.InferAlgorithm("report"); ok {
		t.Fatal("expected inference to fail with no extension at all")
	}
	if _, ok := pathutil.InferAlgorithm(".hidden"); ok {
		t.Fatal("a leading dot is a hidden-file marker, not an extension")
	}
}

func TestDecompressOutputStripsKnownExtension(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.csv.zlib")

	got := pathutil.DecompressOutput(input, codec.Zlib, noneExist)
	want := filepath.Join(dir, "report.csv")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecompressOutputDisambiguatesExistingFile(t *testing.T) {
	dir := t.TempDir()
	stripped := filepath.Join(dir, "report.csv")

	exists := func(p string) bool { return p == stripped }

	input := filepath.Join(dir, "report.csv.zlib")
	got := pathutil.DecompressOutput(input, codec.Zlib, exists)
	want := stripped + ".out"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDecompressOutputLeavesPathUnchangedWhenExtensionMismatched(t *testing.T) {
	input := "archive.tar"
	got := pathutil.DecompressOutput(input, codec.LZMA, noneExist)
	if got != input {
		t.Fatalf("got %q, want unchanged %q", got, input)
	}
}
