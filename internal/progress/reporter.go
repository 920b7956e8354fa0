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

// Package progress implements spec.md §4.E: an optional progress
// reporter decorating a stream.Source so the orchestrator can observe
// bytes-read without the codec or driver knowing progress exists at
// all. Active and silent reporters share one Reporter interface, the
// same active/silent split the teacher draws between semaphore/bar and
// semaphore/nobar.
package progress

import "time"

// Reporter receives byte counts as an operation advances. Increment is
// called after every source read that returned at least one byte; Done
// marks the bar/counter complete. Implementations must be safe to call
// from a single goroutine only — progress tracking runs inline with the
// streaming engine, never concurrently with itself.
type Reporter interface {
	// Start begins reporting against total bytes, or an unknown total
	// (total<=0, e.g. stdin) rendered as a spinner instead of a bar.
	Start(total int64)
	Increment(n int64)
	Done()
}

// minRenderInterval throttles the active reporter's redraws; the
// terminal is refreshed at most this often regardless of how small the
// engine's chunk size is (spec.md §4.E.2).
const minRenderInterval = 100 * time.Millisecond
