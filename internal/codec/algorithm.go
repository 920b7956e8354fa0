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

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Algorithm is the canonical, lowercased identifier for one of the four
// registered block-coding algorithms. The zero value, None, is never a
// valid selection for a request — it only appears as the sentinel
// returned by Parse on an unrecognised string.
type Algorithm uint8

const (
	None Algorithm = iota
	LZFSE
	LZ4
	Zlib
	LZMA
)

// List returns every registered algorithm, as lzfse, lz4, lzma, zlib. The
// unknown-algorithm error and the "algorithms" CLI surface do not use this
// order: they list names through Registry.Supported, which sorts them.
func List() []Algorithm {
	return []Algorithm{LZFSE, LZ4, LZMA, Zlib}
}

// ListString returns List()'s names, sorted, matching Registry.Supported.
func ListString() []string {
	names := make([]string, 0, len(List()))
	for _, a := range List() {
		names = append(names, a.String())
	}
	sort.Strings(names)
	return names
}

func (a Algorithm) IsNone() bool {
	return a == None
}

func (a Algorithm) String() string {
	switch a {
	case LZFSE:
		return "lzfse"
	case LZ4:
		return "lz4"
	case Zlib:
		return "zlib"
	case LZMA:
		return "lzma"
	default:
		return "none"
	}
}

// Extension is the final path extension (without leading dot logic — the
// dot is added by the path resolver) used both to build a compress
// default output path and to infer the algorithm on decompress.
func (a Algorithm) Extension() string {
	return a.String()
}

// Parse is a convenience wrapper around UnmarshalText for callers that
// just want an Algorithm (or None on failure) without an error value —
// the CLI layer is expected to reject None itself with the supported-set
// payload, per spec.md §4.A's failure contract.
func Parse(s string) Algorithm {
	var a Algorithm
	_ = a.UnmarshalText([]byte(s))
	return a
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parsing is
// case-insensitive, per spec.md §3's AlgorithmName entity; unrecognised
// input yields None rather than an error, since callers of Parse generally
// want to distinguish "not found" from "malformed" themselves.
func (a *Algorithm) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"'`)

	switch {
	case strings.EqualFold(s, LZFSE.String()):
		*a = LZFSE
	case strings.EqualFold(s, LZ4.String()):
		*a = LZ4
	case strings.EqualFold(s, Zlib.String()):
		*a = Zlib
	case strings.EqualFold(s, LZMA.String()):
		*a = LZMA
	default:
		*a = None
	}
	return nil
}

// MarshalJSON implements json.Marshaler; None marshals as null.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	if a.IsNone() {
		return []byte("null"), nil
	}
	return append(append([]byte{'"'}, []byte(a.String())...), '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Algorithm) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*a = None
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}
