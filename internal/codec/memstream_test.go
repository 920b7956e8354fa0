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

package codec_test

import (
	"bytes"

	"github.com/mjuhel/blockzip/internal/stream"
)

// memSource/memSink are minimal in-memory stream.Source/stream.Sink test
// doubles, standing in for the file/stdio implementations so the codec
// tests exercise only the streaming contract.
type memSource struct {
	r *bytes.Reader
}

func newMemSource(data []byte) *memSource {
	return &memSource{r: bytes.NewReader(data)}
}

func (m *memSource) Open() error              { return nil }
func (m *memSource) Close() error             { return nil }
func (m *memSource) Read(p []byte) (int, error) { return m.r.Read(p) }
func (m *memSource) Size() (int64, bool)      { return int64(m.r.Len()), true }

type memSink struct {
	buf bytes.Buffer
}

func newMemSink() *memSink { return &memSink{} }

func (m *memSink) Open() error                { return nil }
func (m *memSink) Close() error                { return nil }
func (m *memSink) Write(p []byte) (int, error) { return m.buf.Write(p) }
func (m *memSink) Bytes() []byte               { return m.buf.Bytes() }

var _ stream.Source = (*memSource)(nil)
var _ stream.Sink = (*memSink)(nil)
