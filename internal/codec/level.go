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

import "strings"

// Level is the fast/balanced/best hint from spec.md §3. It selects an
// engine buffer size and, on compress with no explicit algorithm, a
// recommended algorithm (SPEC_FULL.md §3).
type Level uint8

const (
	Balanced Level = iota
	Fast
	Best
)

const (
	fastBufferSize     = 256 * 1024
	balancedBufferSize = 64 * 1024
)

// BufferSize returns the chunk size the streaming engine allocates for an
// operation at this level (spec.md §3, §4.D.1).
func (l Level) BufferSize() int {
	if l == Fast {
		return fastBufferSize
	}
	return balancedBufferSize
}

// RecommendedAlgorithm returns the algorithm this level suggests for a
// compress request with no explicit -m flag (SPEC_FULL.md §3).
func (l Level) RecommendedAlgorithm() Algorithm {
	switch l {
	case Fast:
		return LZ4
	case Best:
		return LZMA
	default:
		return Zlib
	}
}

func (l Level) String() string {
	switch l {
	case Fast:
		return "fast"
	case Best:
		return "best"
	default:
		return "balanced"
	}
}

// ParseLevel parses a level name, defaulting to Balanced on anything
// unrecognised (spec.md §3: "default balanced").
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast":
		return Fast
	case "best":
		return Best
	default:
		return Balanced
	}
}
