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
	"compress/zlib"
	"io"

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/stream"
)

// zlibCodec wraps the standard library's DEFLATE/zlib implementation.
// zlib is the one format in this package deliberately left on the
// standard library: it is itself the "reach for the stdlib" format, and
// no example repo in the corpus replaces compress/zlib with a
// third-party equivalent for plain zlib framing.
type zlibCodec struct{}

func newZlibCodec() Codec { return zlibCodec{} }

func (zlibCodec) Name() string { return Zlib.String() }

func (zlibCodec) CompressStream(src stream.Source, snk stream.Sink, bufferSize int, level Level) *cerr.Error {
	ps, err := newCompressPipeStream(func(w io.Writer) (io.WriteCloser, error) {
		return zlib.NewWriterLevel(w, zlibLevel(level))
	})
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecInit, cerr.LayerInfrastructure, "zlib writer init failed", err).
			WithAlgorithm(Zlib.String()).WithPhase("init")
	}
	return drive(src, snk, ps, bufferSize).WithAlgorithm(Zlib.String())
}

func (zlibCodec) DecompressStream(src stream.Source, snk stream.Sink, bufferSize int, _ Level) *cerr.Error {
	ps, err := newDecompressPipeStream(func(r io.Reader) (io.ReadCloser, error) {
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	})
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecInit, cerr.LayerInfrastructure, "zlib reader init failed", err).
			WithAlgorithm(Zlib.String()).WithPhase("init")
	}
	return drive(src, snk, ps, bufferSize).WithAlgorithm(Zlib.String())
}

func zlibLevel(l Level) int {
	switch l {
	case Fast:
		return zlib.BestSpeed
	case Best:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}
