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

package orchestrator

import (
	"os"

	"github.com/mjuhel/blockzip/internal/applog"
	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/codec"
	"github.com/mjuhel/blockzip/internal/progress"
	"github.com/mjuhel/blockzip/internal/stream"
)

// Orchestrator wires the registry and logger every Request needs;
// construct one at startup and reuse it for every operation (the
// registry is read-only after construction, per spec.md §5 "Shared
// resources").
type Orchestrator struct {
	Registry *codec.Registry
	Log      *applog.Logger
}

// New returns an Orchestrator over reg, logging through log.
func New(reg *codec.Registry, log *applog.Logger) *Orchestrator {
	return &Orchestrator{Registry: reg, Log: log}
}

// resolved captures the outcome of steps 1-3: the algorithm, the
// plan for opening the source and sink, and whether the destination is
// a file path that should be cleaned up on failure.
type resolved struct {
	algo       codec.Algorithm
	src        stream.Source
	snk        stream.Sink
	outputPath string // "" when the destination is Stdout
}

// Run executes req start-to-finish: resolve, validate, drive, cleanup
// on failure. It is the sole entry point spec.md §4.H describes.
func (o *Orchestrator) Run(req Request) *cerr.Error {
	fields := applog.NewFields().Add("direction", req.Direction.String())
	o.Log.WithFields(fields).Debugf("operation starting")

	r, verr := o.resolve(req)
	if verr != nil {
		o.Log.WithFields(fields).Errorf("validation failed: %v", verr)
		return verr
	}
	fields = fields.Add("algorithm", r.algo.String())

	cd, ok := o.Registry.Lookup(r.algo.String())
	if !ok {
		return o.Registry.UnknownAlgorithmError(r.algo.String())
	}

	if err := r.src.Open(); err != nil {
		return cerr.Wrap(cerr.CodeSourceOpen, cerr.LayerInfrastructure, "failed to open source", err).
			WithAlgorithm(r.algo.String())
	}
	defer r.src.Close()

	if err := r.snk.Open(); err != nil {
		return cerr.Wrap(cerr.CodeSinkOpen, cerr.LayerInfrastructure, "failed to open sink", err).
			WithAlgorithm(r.algo.String())
	}

	reporter := o.selectReporter(req, r.outputPath == "")
	src := progress.WrapAndStart(r.src, reporter)

	bufferSize := req.Level.BufferSize()

	var runErr *cerr.Error
	if req.Direction == Compress {
		runErr = cd.CompressStream(src, r.snk, bufferSize, req.Level)
	} else {
		runErr = cd.DecompressStream(src, r.snk, bufferSize, req.Level)
	}

	closeErr := r.snk.Close()

	if runErr != nil {
		o.cleanup(r.outputPath)
		o.Log.WithFields(fields).Errorf("operation failed: %v", runErr)
		return o.wrapOutcome(req.Direction, runErr)
	}
	if closeErr != nil {
		o.cleanup(r.outputPath)
		werr := cerr.Wrap(cerr.CodeSinkWrite, cerr.LayerInfrastructure, "failed to finalize sink", closeErr).
			WithAlgorithm(r.algo.String())
		o.Log.WithFields(fields).Errorf("operation failed: %v", werr)
		return o.wrapOutcome(req.Direction, werr)
	}

	o.Log.WithFields(fields).Infof("operation completed")
	return nil
}

// wrapOutcome folds an infrastructure/domain failure into the
// orchestration-layer code spec.md §4.H's step 9 reports to the caller.
func (o *Orchestrator) wrapOutcome(dir Direction, cause *cerr.Error) *cerr.Error {
	code := cerr.CodeCompressFailed
	if dir == Decompress {
		code = cerr.CodeDecompressFailed
	}
	return cerr.Wrap(code, cerr.LayerOrchestration, dir.String()+" failed", cause)
}

// cleanup removes a partially-written output file. Only ever called
// after the sink has been opened; a "" path means the destination was
// Stdout, which is never removed (spec.md §4.H step 9).
func (o *Orchestrator) cleanup(outputPath string) {
	if outputPath == "" {
		return
	}
	_ = os.Remove(outputPath)
}

// selectReporter implements spec.md §4.E's selection rule: silent
// unless progress was requested, the destination isn't Stdout, and
// Stderr is a terminal.
func (o *Orchestrator) selectReporter(req Request, destIsStdout bool) progress.Reporter {
	if !req.ProgressEnabled || destIsStdout || !req.StderrIsTerminal {
		return progress.NewSilent()
	}
	return progress.NewTerminal(req.Algorithm.String(), req.Stderr)
}
