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

package applog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Logger with the WithField(s) idiom the
// orchestrator and cmd layer use to attach request context (algorithm,
// direction, path) to every line.
type Logger struct {
	l *logrus.Logger
}

// New builds a Logger writing to out at level, formatted as text with
// full timestamps — the CLI has one log destination (stderr) and one
// level chosen once at startup, unlike the teacher's hook-routed,
// dynamically reconfigurable logger.
func New(out io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Logger{l: l}
}

// WithFields returns a logrus.Entry pre-populated with f, ready for
// Debug/Info/Warn/Error.
func (lg *Logger) WithFields(f Fields) *logrus.Entry {
	return lg.l.WithFields(f.Logrus())
}

func (lg *Logger) Debugf(format string, args ...interface{}) { lg.l.Debugf(format, args...) }
func (lg *Logger) Infof(format string, args ...interface{})  { lg.l.Infof(format, args...) }
func (lg *Logger) Warnf(format string, args ...interface{})  { lg.l.Warnf(format, args...) }
func (lg *Logger) Errorf(format string, args ...interface{}) { lg.l.Errorf(format, args...) }
