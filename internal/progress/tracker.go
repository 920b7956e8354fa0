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

package progress

import (
	"errors"
	"io"

	"github.com/mjuhel/blockzip/internal/stream"
)

// trackingSource decorates a stream.Source, reporting every Read to a
// Reporter — the same transparent-wrapper shape as the teacher's
// ioprogress.rdr, generalized from a bare io.ReadCloser to the
// engine's Source contract (Open/Close/Size still delegate untouched).
type trackingSource struct {
	stream.Source
	r Reporter
}

// Wrap decorates src so every byte the streaming engine reads is also
// reported to r. Start must be called (via WrapAndStart, or by the
// caller directly) before the engine begins reading.
func Wrap(src stream.Source, r Reporter) stream.Source {
	return &trackingSource{Source: src, r: r}
}

// WrapAndStart wraps src and immediately calls r.Start with src's known
// size (or an unknown-size spinner when Size reports false).
func WrapAndStart(src stream.Source, r Reporter) stream.Source {
	total, ok := src.Size()
	if !ok {
		total = 0
	}
	r.Start(total)
	return Wrap(src, r)
}

func (t *trackingSource) Read(p []byte) (int, error) {
	n, err := t.Source.Read(p)
	if n > 0 {
		t.r.Increment(int64(n))
	}
	if errors.Is(err, io.EOF) {
		t.r.Done()
	}
	return n, err
}
