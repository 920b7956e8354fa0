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

// Package cerr provides the structured, tagged-union error values used
// throughout the core instead of exception-as-control-flow or bare strings.
package cerr

import "strconv"

// Code is a small numeric identifier for an error, grouped into ranges the
// way the teacher's errors package groups whole packages under a MinPkgXxx
// range — here there are three ranges, one per error Layer, instead of one
// per package.
type Code uint16

const (
	Unknown Code = 0

	// Infrastructure: 100-199.
	CodeSourceOpen    Code = 100
	CodeSourceRead    Code = 101
	CodeSinkOpen      Code = 102
	CodeSinkWrite     Code = 103
	CodeCodecInit     Code = 110
	CodeCodecProcess  Code = 111
	CodeCodecCompress Code = 112

	// Domain: 200-299.
	CodeUnknownAlgorithm   Code = 200
	CodeMissingAlgorithm   Code = 201
	CodeInvalidInputPath   Code = 210
	CodeInvalidOutputPath  Code = 211
	CodeSamePath           Code = 212
	CodeOutputExists       Code = 213
	CodeSymlinkRejected    Code = 214
	CodeInputMissing       Code = 215
	CodeInputUnreadable    Code = 216
	CodeUndefinedOutput    Code = 217
	CodeInvalidCompression Code = 218

	// Orchestration: 300-399.
	CodeCompressFailed   Code = 300
	CodeDecompressFailed Code = 301
)

// String renders the numeric code the way HTTP statuses are conventionally
// rendered: just the digits, stable for log lines and tests.
func (c Code) String() string {
	return strconv.Itoa(int(c))
}
