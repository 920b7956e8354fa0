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

// Package validate implements spec.md §4.G: pure, side-effect-free
// policy checks invoked early in orchestration, plus the handful of
// filesystem stats (exists, is-regular, is-symlink) those checks need.
package validate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mjuhel/blockzip/internal/cerr"
)

// Path rejects an empty path, an embedded NUL byte, and any ".."
// traversal segment once the path has been cleaned (spec.md §4.G).
func Path(path string, code cerr.Code) *cerr.Error {
	if path == "" {
		return cerr.New(code, cerr.LayerDomain, "path must not be empty")
	}
	if strings.ContainsRune(path, 0) {
		return cerr.New(code, cerr.LayerDomain, "path contains an embedded null byte").WithPath(path)
	}

	clean := filepath.Clean(path)
	for _, seg := range strings.Split(clean, string(filepath.Separator)) {
		if seg == ".." {
			return cerr.New(code, cerr.LayerDomain, "path must not contain a parent-directory traversal segment").WithPath(path)
		}
	}
	return nil
}

// SamePath reports whether input and output resolve to the same file,
// after canonicalising both (absolute path plus symlink resolution).
// Paths that don't yet exist canonicalise via filepath.Abs alone.
func SamePath(input, output string) bool {
	return canonical(input) == canonical(output)
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// InputExists checks that path exists, is a regular file (not a
// directory), and is not a symbolic link unless allowSymlink is set
// (spec.md §4.G's "recommended extension").
func InputExists(path string, allowSymlink bool) *cerr.Error {
	fi, err := os.Lstat(path)
	if err != nil {
		return cerr.Wrap(cerr.CodeInputMissing, cerr.LayerDomain, "input file does not exist", err).WithPath(path)
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		if !allowSymlink {
			return cerr.New(cerr.CodeSymlinkRejected, cerr.LayerDomain, "input is a symbolic link; rerun with the symlink policy relaxed").WithPath(path)
		}
		fi, err = os.Stat(path)
		if err != nil {
			return cerr.Wrap(cerr.CodeInputMissing, cerr.LayerDomain, "input symlink target does not exist", err).WithPath(path)
		}
	}

	if fi.IsDir() {
		return cerr.New(cerr.CodeInputMissing, cerr.LayerDomain, "input path is a directory, not a file").WithPath(path)
	}

	if f, err := os.Open(path); err != nil {
		return cerr.Wrap(cerr.CodeInputUnreadable, cerr.LayerDomain, "input file is not readable", err).WithPath(path)
	} else {
		_ = f.Close()
	}
	return nil
}

// Overwrite enforces spec.md §4.G's force-overwrite rule: a file-path
// output that already exists is a policy error unless force is set.
func Overwrite(path string, force bool) *cerr.Error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return cerr.New(cerr.CodeOutputExists, cerr.LayerDomain, "output file already exists; rerun with --force to overwrite").WithPath(path)
	}
	return nil
}
