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

// Package orchestrator implements spec.md §4.H: the single entry point
// that resolves a request's algorithm and paths, validates them,
// drives the streaming engine, and guarantees that a failure after the
// output is opened never leaves a partial file behind.
package orchestrator

import (
	"io"

	"github.com/mjuhel/blockzip/internal/codec"
)

// Direction selects which half of a Codec the orchestrator drives.
type Direction uint8

const (
	Compress Direction = iota
	Decompress
)

func (d Direction) String() string {
	if d == Decompress {
		return "decompress"
	}
	return "compress"
}

// Request is the external interface's request object (spec.md §6): the
// CLI layer's sole job is to build one of these from flags and argv.
type Request struct {
	Direction Direction

	// InputPath is the source file path, or "" to read Stdin.
	InputPath string
	// OutputPath is the explicit destination file path, or "" to derive
	// one (or fall back to Stdout) per §4.F/§4.H step 3.
	OutputPath string

	// Algorithm is the user-supplied selection, or None to infer it
	// (from Level on compress, from InputPath's extension on decompress).
	Algorithm codec.Algorithm
	Level     codec.Level

	Force           bool
	ProgressEnabled bool
	AllowSymlink    bool

	// StdoutIsTerminal/StderrIsTerminal let the orchestrator apply
	// §4.E's reporter-selection rule and §4.H step 3's "stdout is a
	// pipe" test without importing an isatty check itself — the cmd
	// layer computes these once per invocation.
	StdoutIsTerminal bool
	StderrIsTerminal bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
