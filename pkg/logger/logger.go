//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package logger writes leveled messages for the user of edm.
// Warnings and errors are colored when the output is a terminal.
// Diagnostic logging for developers goes through the standard log
// package to a file; see StartFile.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-isatty"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
	LevelFatal
)

// Color settings accepted by UseColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Logger struct {
	out   io.Writer
	color bool
}

func New(out io.Writer, color bool) *Logger {
	return &Logger{out: out, color: color}
}

// UseColor decides whether messages written to f should be colored.
func UseColor(f *os.File, setting string) bool {
	switch setting {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

func (l *Logger) Log(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	switch level {
	case LevelWarn:
		message = "\x1b[33;1mW: " + message + "\x1b[0m"
	case LevelError:
		message = "\x1b[31;1mE: " + message + "\x1b[0m"
	case LevelFatal:
		message = "\x1b[91;1mFATAL: " + message + "\x1b[0m"
	}
	if !l.color {
		message = stripansi.Strip(message)
	}
	fmt.Fprintln(l.out, message)
	if level != LevelInfo {
		log.Printf("%s", stripansi.Strip(message))
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.Log(LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LevelError, format, args...)
}

// Fatal reports the message and returns the exit status for it. The caller
// returns the status so that deferred cleanup still runs.
func (l *Logger) Fatal(format string, args ...interface{}) int {
	l.Log(LevelFatal, format, args...)
	return 1
}

// StartFile sends the standard logger to the named file. With an empty path
// diagnostic logging is discarded.
func StartFile(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
