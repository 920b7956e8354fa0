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

import (
	"errors"
	"os"
	"sync"
)

// fileSource opens path as provided — no working-directory fabrication,
// per spec.md §4.C.
type fileSource struct {
	path string
	once sync.Once
	f    *os.File
	err  error
}

// NewFileSource returns a Source reading path. Open must be called before
// Read; it resolves the file exactly once even if Open is called again.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Open() error {
	s.once.Do(func() {
		s.f, s.err = os.Open(s.path)
	})
	return s.err
}

func (s *fileSource) Read(p []byte) (int, error) {
	return s.f.Read(p)
}

func (s *fileSource) Close() error {
	if s.f == nil {
		return nil
	}
	if err := s.f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

func (s *fileSource) Size() (int64, bool) {
	if s.f == nil {
		return 0, false
	}
	fi, err := s.f.Stat()
	if err != nil {
		return 0, false
	}
	return fi.Size(), true
}

// fileSink creates/truncates path. Overwrite policy is enforced by the
// validation layer before Open is ever called (spec.md §4.C, §4.G).
type fileSink struct {
	path string
	once sync.Once
	f    *os.File
	err  error
}

// NewFileSink returns a Sink writing path, truncating any existing file.
func NewFileSink(path string) Sink {
	return &fileSink{path: path}
}

func (s *fileSink) Open() error {
	s.once.Do(func() {
		s.f, s.err = os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	})
	return s.err
}

func (s *fileSink) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *fileSink) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
