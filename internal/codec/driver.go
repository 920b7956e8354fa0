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
	"sync/atomic"

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/stream"
)

// status mirrors the three positions a codec's process step can report
// (spec.md §4.D.2): ok (keep going), end (flushed everything, done), or
// error.
type status int

const (
	statusOK status = iota
	statusEnd
	statusError
)

// codecStream is the minimal push/pull contract the shared drive loop
// needs from any wrapped algorithm. feed presents new source bytes (or,
// with finalize set, signals that none will follow); pull drains
// produced bytes a chunk at a time. The zlib, lz4 and lzma capabilities
// each construct a codecStream and hand it to drive — the shared
// streaming driver. The lzfse capability does not: it calls liblzfse's
// whole-buffer functions directly (see lzfseCodec).
type codecStream interface {
	feed(p []byte, finalize bool) error
	pull(p []byte) (n int, st status, err error)
}

// maxZeroProgressSteps bounds the inner loop against a codec that reports
// statusOK forever without producing bytes once finalize has been sent —
// spec.md §4.D.4's truncated/corrupted-input edge case.
const maxZeroProgressSteps = 4096

// drive runs the two-level loop from spec.md §4.D.3 over src/snk using cs,
// with buffers of bufferSize. It is shared, verbatim, by the zlib, lz4 and
// lzma CompressStream/DecompressStream — only the codecStream construction
// differs per algorithm. The lzfse capability does not use it.
//
// Feeding and pulling run concurrently rather than in lockstep: a codec
// built on pipeStream (zlib/lz4/lzma all are) can need more than one fed
// chunk before it produces its first output byte — a long LZ4 match on
// highly compressible input is a normal way to hit that. A driver that
// feeds one chunk, drains it to completion, then feeds the next would
// deadlock in that case: the drain has nothing to read until more input
// arrives, and no more input is fed until the drain returns. Running the
// feed side on its own goroutine removes that ordering dependency; pull
// keeps draining on the caller's goroutine exactly as before.
func drive(src stream.Source, snk stream.Sink, cs codecStream, bufferSize int) *cerr.Error {
	var finalizeSent atomic.Bool

	feedErrCh := make(chan *cerr.Error, 1)
	go func() {
		feedErrCh <- feedLoop(src, cs, bufferSize, &finalizeSent)
	}()

	dstBuf := make([]byte, bufferSize)
	zeroProgress := 0

	for {
		n, st, err := cs.pull(dstBuf)
		if err != nil {
			return cerr.Wrap(cerr.CodeCodecProcess, cerr.LayerInfrastructure, "codec process error", err).WithPhase("process")
		}

		if n > 0 {
			zeroProgress = 0
			if werr := writeFull(snk, dstBuf[:n]); werr != nil {
				return cerr.Wrap(cerr.CodeSinkWrite, cerr.LayerInfrastructure, "sink write failed", werr)
			}
		}

		if st == statusEnd {
			// feedLoop always sends its final chunk before the codec can
			// report statusEnd, so this receive never waits on more feeding.
			if ferr := <-feedErrCh; ferr != nil {
				return ferr
			}
			return nil
		}

		if n == len(dstBuf) {
			// Destination buffer saturated: the codec still has
			// output pending for the currently presented input.
			continue
		}

		if n == 0 && finalizeSent.Load() {
			zeroProgress++
			if zeroProgress > maxZeroProgressSteps {
				return cerr.New(cerr.CodeCodecProcess, cerr.LayerInfrastructure,
					"truncated or corrupted input: codec made no progress after finalize").
					WithPhase("finalize")
			}
		}
	}
}

// feedLoop reads src in bufferSize chunks and hands each to cs.feed until
// src is exhausted, then records that the final chunk went through. It runs
// on its own goroutine so a pipeStream-backed cs can block on an in-flight
// feed without stalling drive's pull loop.
func feedLoop(src stream.Source, cs codecStream, bufferSize int, finalizeSent *atomic.Bool) *cerr.Error {
	srcBuf := make([]byte, bufferSize)

	for {
		n, rerr := src.Read(srcBuf)
		if rerr != nil && rerr != io.EOF {
			return cerr.Wrap(cerr.CodeSourceRead, cerr.LayerInfrastructure, "source read failed", rerr)
		}

		finalize := rerr == io.EOF
		if err := cs.feed(srcBuf[:n], finalize); err != nil {
			return cerr.Wrap(cerr.CodeCodecProcess, cerr.LayerInfrastructure, "codec process error", err).WithPhase("process")
		}

		if finalize {
			finalizeSent.Store(true)
			return nil
		}
	}
}

// writeFull writes all of p to snk, failing if the sink accepts fewer
// bytes than requested without itself returning an error (spec.md
// §4.D.3 step 6).
func writeFull(snk stream.Sink, p []byte) error {
	for len(p) > 0 {
		n, err := snk.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}
