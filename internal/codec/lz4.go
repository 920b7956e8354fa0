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

	"github.com/pierrec/lz4/v4"

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/stream"
)

// lz4Codec wraps pierrec/lz4's frame format, the fast end of the four
// algorithms (spec.md §3's fast→lz4 recommendation).
type lz4Codec struct{}

func newLZ4Codec() Codec { return lz4Codec{} }

func (lz4Codec) Name() string { return LZ4.String() }

func (lz4Codec) CompressStream(src stream.Source, snk stream.Sink, bufferSize int, level Level) *cerr.Error {
	ps, err := newCompressPipeStream(func(w io.Writer) (io.WriteCloser, error) {
		lw := lz4.NewWriter(w)
		if aerr := lw.Apply(lz4.CompressionLevelOption(lz4Level(level))); aerr != nil {
			return nil, aerr
		}
		return lw, nil
	})
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecInit, cerr.LayerInfrastructure, "lz4 writer init failed", err).
			WithAlgorithm(LZ4.String()).WithPhase("init")
	}
	return drive(src, snk, ps, bufferSize).WithAlgorithm(LZ4.String())
}

func (lz4Codec) DecompressStream(src stream.Source, snk stream.Sink, bufferSize int, _ Level) *cerr.Error {
	ps, err := newDecompressPipeStream(func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	})
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecInit, cerr.LayerInfrastructure, "lz4 reader init failed", err).
			WithAlgorithm(LZ4.String()).WithPhase("init")
	}
	return drive(src, snk, ps, bufferSize).WithAlgorithm(LZ4.String())
}

func lz4Level(l Level) lz4.CompressionLevel {
	switch l {
	case Fast:
		return lz4.Fast
	case Best:
		return lz4.Level9
	default:
		return lz4.Level5
	}
}
