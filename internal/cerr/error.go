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

package cerr

import "fmt"

// Layer identifies which of spec.md's three error layers produced an
// Error: infrastructure (I/O, codec library), domain (policy/validation),
// or orchestration (the compress/decompress wrapper).
type Layer uint8

const (
	LayerInfrastructure Layer = iota
	LayerDomain
	LayerOrchestration
)

func (l Layer) String() string {
	switch l {
	case LayerInfrastructure:
		return "infrastructure"
	case LayerDomain:
		return "domain"
	case LayerOrchestration:
		return "orchestration"
	default:
		return "unknown"
	}
}

// Error is the structured failure value returned by the core's codec,
// validation and orchestration entry points (the stream package keeps the
// plain error results of io.Reader/io.Writer). It is never used for
// control flow via panic/recover; those functions return (*Error) explicitly.
type Error struct {
	Code    Code
	Layer   Layer
	Message string
	Cause   error

	// Algorithm, Phase and Path are optional context fields the caller can
	// set so that a CLI-layer renderer never needs to re-inspect the
	// failure beyond this struct (spec.md §7's "actionable message
	// without further inspection" guarantee).
	Algorithm string
	Phase     string
	Path      string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Algorithm != "" {
		msg = fmt.Sprintf("%s [algorithm=%s]", msg, e.Algorithm)
	}
	if e.Phase != "" {
		msg = fmt.Sprintf("%s [phase=%s]", msg, e.Phase)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s [path=%s]", msg, e.Path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a bare Error with no cause, for domain failures that
// originate locally rather than wrapping an underlying error.
func New(code Code, layer Layer, message string) *Error {
	return &Error{Code: code, Layer: layer, Message: message}
}

// Wrap attaches cause to a newly constructed Error. A nil cause yields a
// nil *Error so callers can write `if e := cerr.Wrap(...); e != nil`
// uniformly even when wrapping the result of a function that may itself
// return nil.
func Wrap(code Code, layer Layer, message string, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Code: code, Layer: layer, Message: message, Cause: cause}
}

// WithAlgorithm returns e with Algorithm set, for chaining at the call
// site. e may be nil, in which case WithAlgorithm is a no-op that returns
// nil — this lets call sites write `return cerr.Wrap(...).WithAlgorithm(a)`
// without an intermediate nil check.
func (e *Error) WithAlgorithm(name string) *Error {
	if e == nil {
		return nil
	}
	e.Algorithm = name
	return e
}

// WithPhase returns e with Phase set (see WithAlgorithm for the nil-safety
// contract).
func (e *Error) WithPhase(phase string) *Error {
	if e == nil {
		return nil
	}
	e.Phase = phase
	return e
}

// WithPath returns e with Path set (see WithAlgorithm for the nil-safety
// contract).
func (e *Error) WithPath(path string) *Error {
	if e == nil {
		return nil
	}
	e.Path = path
	return e
}
