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

import "io"

// pipeStream bridges a Go-native streaming library (one that only speaks
// io.Writer/io.Reader) into the codecStream feed/pull contract, using an
// io.Pipe as the backpressure point. Every non-cgo codec in this package
// is built on top of a pipeStream: the compressor/decompressor runs on
// its own goroutine against one pipe, while feed/pull drive the other.
type pipeStream struct {
	fw   *io.PipeWriter
	pr   *io.PipeReader
	done chan error
}

// newCompressPipeStream starts wrap(pw) on a background goroutine and
// copies whatever feed() supplies into it. wrap is expected to return a
// WriteCloser whose Close flushes any trailer (gzip/zlib footer, LZ4
// frame end mark, LZMA end-of-stream marker) into pw.
func newCompressPipeStream(wrap func(io.Writer) (io.WriteCloser, error)) (*pipeStream, error) {
	pr, pw := io.Pipe()
	fr, fw := io.Pipe()

	w, err := wrap(pw)
	if err != nil {
		_ = pr.Close()
		_ = fr.Close()
		_ = fw.Close()
		return nil, err
	}

	done := make(chan error, 1)
	go func() {
		_, cerr := io.Copy(w, fr)
		if cerr == nil {
			cerr = w.Close()
		}
		_ = pw.CloseWithError(terminalErr(cerr))
		done <- cerr
	}()

	return &pipeStream{fw: fw, pr: pr, done: done}, nil
}

// newDecompressPipeStream mirrors newCompressPipeStream for the read
// side: wrap(fr) is expected to return a ReadCloser that decodes
// whatever feed() supplies, which is then copied into pw for pull() to
// drain. wrap itself runs on the background goroutine: decoders such as
// zlib and lzma read their header as soon as they are built, which would
// block before feed() has supplied a byte. A wrap error therefore reaches
// the driver through pull() (and fails any pending feed()); the returned
// error is always nil.
func newDecompressPipeStream(wrap func(io.Reader) (io.ReadCloser, error)) (*pipeStream, error) {
	pr, pw := io.Pipe()
	fr, fw := io.Pipe()

	done := make(chan error, 1)
	go func() {
		r, err := wrap(fr)
		if err != nil {
			_ = fr.CloseWithError(err)
			_ = pw.CloseWithError(err)
			done <- err
			return
		}
		_, cerr := io.Copy(pw, r)
		if rerr := r.Close(); cerr == nil {
			cerr = rerr
		}
		_ = pw.CloseWithError(terminalErr(cerr))
		done <- cerr
	}()

	return &pipeStream{fw: fw, pr: pr, done: done}, nil
}

// terminalErr maps a nil background-goroutine result to io.EOF, the
// sentinel pull() recognizes as statusEnd.
func terminalErr(err error) error {
	if err == nil {
		return io.EOF
	}
	return err
}

func (s *pipeStream) feed(p []byte, finalize bool) error {
	if len(p) > 0 {
		if _, err := s.fw.Write(p); err != nil {
			return err
		}
	}
	if finalize {
		return s.fw.Close()
	}
	return nil
}

func (s *pipeStream) pull(p []byte) (int, status, error) {
	n, err := s.pr.Read(p)
	switch {
	case err == io.EOF:
		return n, statusEnd, nil
	case err != nil:
		return n, statusError, err
	default:
		return n, statusOK, nil
	}
}
