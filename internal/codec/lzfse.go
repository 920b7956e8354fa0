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

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/stream"
)

// lzfseCodec is the one capability in this package that does not go
// through drive(): no pure-Go LZFSE implementation exists anywhere in
// the ecosystem this module was built against, so this wraps Apple's own
// liblzfse via cgo instead (lzfse_cgo.go). liblzfse's public API is
// whole-buffer (lzfse_encode_buffer/lzfse_decode_buffer take a single
// source and destination buffer, no incremental push/pull variant ships
// with the library), so this capability buffers its entire source in
// memory rather than streaming it in bufferSize chunks — a deliberate,
// documented exception to the bounded-memory invariant every other
// codec honors.
type lzfseCodec struct{}

func newLZFSECodec() Codec { return lzfseCodec{} }

func (lzfseCodec) Name() string { return LZFSE.String() }

func (lzfseCodec) CompressStream(src stream.Source, snk stream.Sink, _ int, _ Level) *cerr.Error {
	in, err := io.ReadAll(src)
	if err != nil {
		return cerr.Wrap(cerr.CodeSourceRead, cerr.LayerInfrastructure, "source read failed", err).
			WithAlgorithm(LZFSE.String())
	}

	out, err := lzfseEncode(in)
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecCompress, cerr.LayerInfrastructure, "lzfse encode failed", err).
			WithAlgorithm(LZFSE.String()).WithPhase("process")
	}

	if err := writeFull(snk, out); err != nil {
		return cerr.Wrap(cerr.CodeSinkWrite, cerr.LayerInfrastructure, "sink write failed", err).
			WithAlgorithm(LZFSE.String())
	}
	return nil
}

func (lzfseCodec) DecompressStream(src stream.Source, snk stream.Sink, _ int, _ Level) *cerr.Error {
	in, err := io.ReadAll(src)
	if err != nil {
		return cerr.Wrap(cerr.CodeSourceRead, cerr.LayerInfrastructure, "source read failed", err).
			WithAlgorithm(LZFSE.String())
	}

	out, err := lzfseDecode(in)
	if err != nil {
		return cerr.Wrap(cerr.CodeCodecProcess, cerr.LayerInfrastructure, "lzfse decode failed", err).
			WithAlgorithm(LZFSE.String()).WithPhase("process")
	}

	if err := writeFull(snk, out); err != nil {
		return cerr.Wrap(cerr.CodeSinkWrite, cerr.LayerInfrastructure, "sink write failed", err).
			WithAlgorithm(LZFSE.String())
	}
	return nil
}
