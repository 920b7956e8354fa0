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

// Package stream implements spec.md §4.C: a uniform byte-source /
// byte-sink abstraction over {file(path), standard-stream}. Neither side
// is ever seeked; both sides are opened exactly once and closed exactly
// once on every exit path.
package stream

import "io"

// Source is the input side of a pipeline. Open is idempotent (repeated
// calls after the first are no-ops); Close likewise. Read follows the
// normal io.Reader contract: a non-negative count on success, and
// end-of-stream signalled by (0, io.EOF) or (n>0, io.EOF) on the final
// read, never by a negative count.
type Source interface {
	io.Reader
	Open() error
	Close() error
	// Size reports the source's known total length, or (0, false) when
	// unknown (standard-in) — used only to size the progress tracker's
	// total, per spec.md §4.E's rendering contract.
	Size() (int64, bool)
}

// Sink is the output side of a pipeline.
type Sink interface {
	io.Writer
	Open() error
	Close() error
}
