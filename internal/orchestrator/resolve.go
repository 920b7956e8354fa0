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

	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/codec"
	"github.com/mjuhel/blockzip/internal/pathutil"
	"github.com/mjuhel/blockzip/internal/stream"
	"github.com/mjuhel/blockzip/internal/validate"
)

// resolve runs spec.md §4.H steps 1-4: algorithm resolution, input/output
// validation, output-destination resolution, and the overwrite check.
func (o *Orchestrator) resolve(req Request) (resolved, *cerr.Error) {
	algo, aerr := o.resolveAlgorithm(req)
	if aerr != nil {
		return resolved{}, aerr
	}

	if req.InputPath != "" {
		if err := validate.Path(req.InputPath, cerr.CodeInvalidInputPath); err != nil {
			return resolved{}, err
		}
		if err := validate.InputExists(req.InputPath, req.AllowSymlink); err != nil {
			return resolved{}, err
		}
	}

	outputPath, destIsStdout, oerr := o.resolveOutput(req, algo)
	if oerr != nil {
		return resolved{}, oerr
	}

	if !destIsStdout {
		if err := validate.Path(outputPath, cerr.CodeInvalidOutputPath); err != nil {
			return resolved{}, err
		}
		if req.InputPath != "" && validate.SamePath(req.InputPath, outputPath) {
			return resolved{}, cerr.New(cerr.CodeSamePath, cerr.LayerDomain,
				"input and output resolve to the same file").WithPath(outputPath)
		}
		if err := validate.Overwrite(outputPath, req.Force); err != nil {
			return resolved{}, err
		}
	}

	src := o.openableSource(req)
	snk := o.openableSink(req, outputPath, destIsStdout)

	return resolved{algo: algo, src: src, snk: snk, outputPath: nonStdoutPath(outputPath, destIsStdout)}, nil
}

// resolveAlgorithm implements step 1.
func (o *Orchestrator) resolveAlgorithm(req Request) (codec.Algorithm, *cerr.Error) {
	if !req.Algorithm.IsNone() {
		if _, ok := o.Registry.Lookup(req.Algorithm.String()); !ok {
			return codec.None, o.Registry.UnknownAlgorithmError(req.Algorithm.String())
		}
		return req.Algorithm, nil
	}

	if req.Direction == Compress {
		if req.InputPath == "" {
			return codec.None, cerr.New(cerr.CodeMissingAlgorithm, cerr.LayerDomain,
				"an algorithm must be specified when compressing standard input")
		}
		return req.Level.RecommendedAlgorithm(), nil
	}

	if req.InputPath == "" {
		return codec.None, cerr.New(cerr.CodeMissingAlgorithm, cerr.LayerDomain,
			"an algorithm must be specified when decompressing standard input")
	}

	algo, ok := pathutil.InferAlgorithm(req.InputPath)
	if !ok {
		return codec.None, cerr.New(cerr.CodeMissingAlgorithm, cerr.LayerDomain,
			"cannot infer algorithm from input file extension; specify one explicitly").WithPath(req.InputPath)
	}
	return algo, nil
}

// resolveOutput implements step 3.
func (o *Orchestrator) resolveOutput(req Request, algo codec.Algorithm) (path string, destIsStdout bool, err *cerr.Error) {
	if req.OutputPath != "" {
		return req.OutputPath, false, nil
	}

	if !req.StdoutIsTerminal {
		return "", true, nil
	}

	if req.InputPath == "" {
		return "", false, cerr.New(cerr.CodeUndefinedOutput, cerr.LayerDomain,
			"no output path given, standard output is a terminal, and input is standard input")
	}

	if req.Direction == Compress {
		return pathutil.CompressOutput(req.InputPath, algo), false, nil
	}
	exists := func(p string) bool {
		_, err := os.Stat(p)
		return err == nil
	}
	return pathutil.DecompressOutput(req.InputPath, algo, exists), false, nil
}

func (o *Orchestrator) openableSource(req Request) stream.Source {
	if req.InputPath == "" {
		return stream.NewStdinSource(req.Stdin)
	}
	return stream.NewFileSource(req.InputPath)
}

func (o *Orchestrator) openableSink(req Request, outputPath string, destIsStdout bool) stream.Sink {
	if destIsStdout {
		return stream.NewStdoutSink(req.Stdout)
	}
	return stream.NewFileSink(outputPath)
}

func nonStdoutPath(path string, destIsStdout bool) string {
	if destIsStdout {
		return ""
	}
	return path
}
