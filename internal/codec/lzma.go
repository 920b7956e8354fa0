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

package codec

import (
	"io"

	"github.com/ulikunitz/xz/lzma"

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/stream"
)

// lzmaCodec wraps ulikunitz/xz's raw LZMA framing (not the .xz
// container) — the slowest, tightest ratio of the four algorithms
// (spec.md §3's best→lzma recommendation).
type lzmaCodec struct{}

func newLZMACodec() Codec { return lzmaCodec{} }

func (lzmaCodec) Name() string { return LZMA.String() }

func (lzmaCodec) CompressStream(src stream.Source, snk stream.Sink, bufferSize int, level Level) *cerr.Error {
	cfg := lzma.WriterConfig{DictCap: lzmaDictCap(level)}
	ps, err := newCompressPipeStream(func(w io.Writer) (io.WriteCloser, error) {
		lw, werr := cfg.NewWriter(w)
		if werr != nil {
			return nil, werr
		}
		return lw, nil
	})
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecInit, cerr.LayerInfrastructure, "lzma writer init failed", err).
			WithAlgorithm(LZMA.String()).WithPhase("init")
	}
	return drive(src, snk, ps, bufferSize).WithAlgorithm(LZMA.String())
}

func (lzmaCodec) DecompressStream(src stream.Source, snk stream.Sink, bufferSize int, _ Level) *cerr.Error {
	ps, err := newDecompressPipeStream(func(r io.Reader) (io.ReadCloser, error) {
		lr, rerr := lzma.NewReader(r)
		if rerr != nil {
			return nil, rerr
		}
		return io.NopCloser(lr), nil
	})
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecInit, cerr.LayerInfrastructure, "lzma reader init failed", err).
			WithAlgorithm(LZMA.String()).WithPhase("init")
	}
	return drive(src, snk, ps, bufferSize).WithAlgorithm(LZMA.String())
}

func lzmaDictCap(l Level) int {
	switch l {
	case Fast:
		return 1 << 20 // 1 MiB
	case Best:
		return 64 << 20 // 64 MiB
	default:
		return 8 << 20 // 8 MiB
	}
}
