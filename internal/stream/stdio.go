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

package stream

import "io"

// stdioSource/stdioSink wrap a process-inherited channel. Close is a
// no-op: closing os.Stdin/os.Stdout is the process's business, not a
// single operation's — this mirrors the teacher's nopwritecloser pattern
// (ioutils/nopwritecloser) for streams that must survive past one use.
type stdioSource struct {
	r io.Reader
}

// NewStdinSource wraps r (os.Stdin in production, any io.Reader in tests)
// as a Source with unknown size.
func NewStdinSource(r io.Reader) Source {
	return &stdioSource{r: r}
}

func (s *stdioSource) Open() error               { return nil }
func (s *stdioSource) Close() error               { return nil }
func (s *stdioSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *stdioSource) Size() (int64, bool)        { return 0, false }

type stdioSink struct {
	w io.Writer
}

// NewStdoutSink wraps w (os.Stdout in production) as a Sink.
func NewStdoutSink(w io.Writer) Sink {
	return &stdioSink{w: w}
}

func (s *stdioSink) Open() error                { return nil }
func (s *stdioSink) Close() error                { return nil }
func (s *stdioSink) Write(p []byte) (int, error) { return s.w.Write(p) }
