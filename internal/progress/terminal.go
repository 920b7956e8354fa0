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

package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// terminal is the active Reporter: one mpb progress container rendering
// a single bar (known total) or spinner (unknown total, e.g. stdin) to
// out. Every codec operation gets its own terminal instance — this
// package has no notion of multi-file aggregation.
type terminal struct {
	label string
	out   io.Writer
	p     *mpb.Progress
	bar   *mpb.Bar
}

// NewTerminal returns an active Reporter labelled label (typically the
// algorithm name) that renders to out (os.Stderr in production).
func NewTerminal(label string, out io.Writer) Reporter {
	return &terminal{label: label, out: out}
}

func (t *terminal) Start(total int64) {
	t.p = mpb.New(mpb.WithOutput(t.out), mpb.WithRefreshRate(minRenderInterval))

	if total > 0 {
		t.bar = t.p.AddBar(total,
			mpb.PrependDecorators(decor.Name(t.label)),
			mpb.AppendDecorators(decor.CountersKibiByte("% .2f / % .2f"), decor.Percentage(), decor.AverageETA(decor.ET_STYLE_GO)),
		)
		return
	}

	// Unknown total (standard-in source): render a spinner instead of a
	// bar that can never reach 100%.
	t.bar = t.p.AddSpinner(0,
		mpb.SpinnerOnMiddle,
		mpb.PrependDecorators(decor.Name(t.label)),
		mpb.AppendDecorators(decor.CurrentKibiByte("% .2f")),
	)
}

func (t *terminal) Increment(n int64) {
	if t.bar == nil {
		return
	}
	t.bar.IncrInt64(n)
}

func (t *terminal) Done() {
	if t.bar == nil {
		return
	}
	if !t.bar.Completed() {
		t.bar.SetTotal(-1, true)
	}
	t.p.Wait()
}
