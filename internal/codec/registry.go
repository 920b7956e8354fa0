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
	"sort"
	"strings"

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/stream"
)

// Codec is the capability set every algorithm exposes (spec.md §4.B): a
// canonical name plus the two streaming operations. Implementations own
// no long-lived state across invocations — Compress/Decompress each
// construct a fresh stream for the call.
type Codec interface {
	Name() string
	CompressStream(src stream.Source, snk stream.Sink, bufferSize int, level Level) *cerr.Error
	DecompressStream(src stream.Source, snk stream.Sink, bufferSize int, level Level) *cerr.Error
}

// Registry is an immutable-after-construction, case-insensitive map from
// canonical Algorithm to Codec. Populate it once at startup via
// NewRegistry; Lookup is safe for concurrent use because nothing mutates
// the underlying map afterward (spec.md §4.A, §5 "Shared resources").
type Registry struct {
	byAlgo map[Algorithm]Codec
}

// NewRegistry builds the standard registry wired with the four built-in
// capabilities. Construction never fails — LZFSE's cgo dependency is only
// consulted lazily, at stream time, so that running on a non-cgo build
// still lets `algorithms` list the full supported set and only fails the
// moment LZFSE is actually selected.
func NewRegistry() *Registry {
	r := &Registry{byAlgo: make(map[Algorithm]Codec, len(List()))}
	r.register(newZlibCodec())
	r.register(newLZ4Codec())
	r.register(newLZMACodec())
	r.register(newLZFSECodec())
	return r
}

func (r *Registry) register(c Codec) {
	r.byAlgo[Parse(c.Name())] = c
}

// Lookup resolves name (case-insensitive) to a Codec. The bool mirrors a
// map's comma-ok idiom rather than returning an error — spec.md §4.A
// leaves converting "not found" into a domain error to the caller, since
// only the caller knows whether the name came from a flag, an extension,
// or a level recommendation.
func (r *Registry) Lookup(name string) (Codec, bool) {
	a := Parse(name)
	if a.IsNone() {
		return nil, false
	}
	c, ok := r.byAlgo[a]
	return c, ok
}

// Supported returns the sorted set of canonical names, used both by the
// `algorithms` CLI surface and by the unknown-algorithm error payload
// (spec.md S6).
func (r *Registry) Supported() []string {
	names := make([]string, 0, len(r.byAlgo))
	for a := range r.byAlgo {
		names = append(names, a.String())
	}
	sort.Strings(names)
	return names
}

// UnknownAlgorithmError builds the domain error spec.md §4.A mandates:
// the unknown name plus the full supported set.
func (r *Registry) UnknownAlgorithmError(name string) *cerr.Error {
	return cerr.New(cerr.CodeUnknownAlgorithm, cerr.LayerDomain,
		"unknown algorithm \""+name+"\"; supported: "+strings.Join(r.Supported(), ", "))
}
