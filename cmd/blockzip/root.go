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
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mjuhel/blockzip/internal/applog"
	"github.com/mjuhel/blockzip/internal/cerr"
	"github.com/mjuhel/blockzip/internal/codec"
	"github.com/mjuhel/blockzip/internal/config"
	"github.com/mjuhel/blockzip/internal/orchestrator"
)

// app bundles the wiring every subcommand's RunE needs: the orchestrator,
// the env-resolved flag defaults, and the process streams, all threaded
// through explicitly rather than read from globals so run is testable.
type app struct {
	orch     *orchestrator.Orchestrator
	defaults config.Defaults
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// run builds the command tree and executes it, returning the process exit
// code. It never calls os.Exit itself, so tests can drive it directly.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	defaults := config.Load()
	log := applog.New(stderr, logrus.WarnLevel)
	a := &app{
		orch:     orchestrator.New(codec.NewRegistry(), log),
		defaults: defaults,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if ce, ok := err.(*cerr.Error); ok {
			fmt.Fprintln(stderr, renderError(ce))
			return exitCode(ce)
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "blockzip",
		Short:         "Compress and decompress files with lzfse, lz4, zlib or lzma",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(a.compressCommand())
	root.AddCommand(a.decompressCommand())
	root.AddCommand(a.algorithmsCommand())
	return root
}

// isTerminal reports whether w is the process's own stdout/stderr attached
// to a terminal. A non-*os.File writer (a test buffer, a pipe wrapper)
// is never a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
