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
	"github.com/spf13/cobra"

	"github.com/mjuhel/blockzip/internal/codec"
	"github.com/mjuhel/blockzip/internal/config"
	"github.com/mjuhel/blockzip/internal/orchestrator"
)

// opFlags holds the flag surface shared by compress and decompress;
// SPEC_FULL.md §3 names -m/--method and -o/--output explicitly, the rest
// follow the same short/long convention.
type opFlags struct {
	method         string
	output         string
	level          string
	force          bool
	progress       bool
	followSymlinks bool
}

func registerOperationFlags(cmd *cobra.Command, f *opFlags, d config.Defaults) {
	flags := cmd.Flags()
	flags.StringVarP(&f.method, "method", "m", "", "algorithm to use: lzfse, lz4, zlib, or lzma")
	flags.StringVarP(&f.output, "output", "o", "", "output path (default: derived from the input name, or standard output when piped)")
	flags.StringVar(&f.level, "level", d.Level.String(), "compression level: fast, balanced, or best")
	flags.BoolVarP(&f.force, "force", "f", d.Force, "overwrite an existing output file")
	flags.BoolVar(&f.progress, "progress", d.Progress, "show a progress indicator on standard error")
	flags.BoolVar(&f.followSymlinks, "follow-symlinks", false, "allow a symlinked input file instead of rejecting it")
}

// buildRequest assembles an orchestrator.Request from the parsed flags and
// positional argument. args holds at most one element (cobra enforces that
// at the command level); an empty args means the source is standard input.
func (a *app) buildRequest(dir orchestrator.Direction, args []string, f *opFlags) orchestrator.Request {
	var inputPath string
	if len(args) == 1 {
		inputPath = args[0]
	}

	return orchestrator.Request{
		Direction:        dir,
		InputPath:        inputPath,
		OutputPath:       f.output,
		Algorithm:        codec.Parse(f.method),
		Level:            codec.ParseLevel(f.level),
		Force:            f.force,
		ProgressEnabled:  f.progress,
		AllowSymlink:     f.followSymlinks,
		StdoutIsTerminal: isTerminal(a.stdout),
		StderrIsTerminal: isTerminal(a.stderr),
		Stdin:            a.stdin,
		Stdout:           a.stdout,
		Stderr:           a.stderr,
	}
}
