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

package main

import (
	"fmt"

	"github.com/mjuhel/blockzip/internal/cerr"
)

// renderError turns a structured core failure into the user-facing prose
// spec.md §7 leaves to this layer: a stable "blockzip: " prefix plus
// whatever actionable context cerr.Error already carries.
func renderError(e *cerr.Error) string {
	return fmt.Sprintf("blockzip: %s (code %s, %s)", e.Error(), e.Code, e.Layer)
}

// exitCode maps a failure's layer to a process exit status: validation and
// policy failures are the user's to fix (2), infrastructure failures are
// environmental (3), and an orchestration-level wrapper failure that isn't
// more specifically one of those falls back to a generic failure code (1).
func exitCode(e *cerr.Error) int {
	switch e.Layer {
	case cerr.LayerDomain:
		return 2
	case cerr.LayerInfrastructure:
		return 3
	default:
		return 1
	}
}
