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

package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/timburks/edm/pkg/logger"
	edm "github.com/timburks/edm/pkg/types"
)

// The Editor applies commands to a single buffer and tracks the current line.
// It has two modes: in command mode it accepts commands through Apply, and in
// text-entry mode it collects lines through Enter until the sentinel line.
type Editor struct {
	buffer    *Buffer
	current   int           // last line affected, 0 before the first line
	saved     bool          // false after any change, true after a write
	mode      int           // edm.ModeCommand or a text-entry mode
	pending   []string      // lines collected in text-entry mode
	lo, hi    int           // resolved target of a pending change or append
	out       io.Writer     // destination of p, n and l
	reporter  edm.Reporter  // warnings and write summaries
	persister edm.Persister // destination of w and wq
}

// Sentinel ends text entry. It is never stored in the buffer.
const Sentinel = "."

var (
	ErrTextEntry   = errors.New("text entry in progress")
	ErrNoTextEntry = errors.New("no text entry in progress")
)

func NewEditor(out io.Writer) *Editor {
	e := &Editor{}
	e.buffer = NewBuffer()
	e.saved = true
	e.mode = edm.ModeCommand
	e.out = out
	e.reporter = logger.New(out, false)
	e.persister = DiskPersister{}
	return e
}

func (e *Editor) SetReporter(r edm.Reporter) {
	e.reporter = r
}

func (e *Editor) SetPersister(p edm.Persister) {
	e.persister = p
}

// LoadBytes replaces the buffer contents and moves to the last line.
func (e *Editor) LoadBytes(b []byte) {
	e.buffer.LoadBytes(b)
	e.current = e.buffer.GetRowCount()
	e.saved = true
}

// ReadFile loads path into the buffer and remembers it as the file name.
// A file that does not exist yet gives an empty buffer.
func (e *Editor) ReadFile(path string) error {
	e.buffer.SetFileName(path)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		e.LoadBytes(nil)
		return nil
	}
	if err != nil {
		return err
	}
	e.LoadBytes(b)
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.buffer.Bytes()
}

func (e *Editor) Lines() []string {
	return e.buffer.Lines()
}

func (e *Editor) GetRowCount() int {
	return e.buffer.GetRowCount()
}

func (e *Editor) GetFileName() string {
	return e.buffer.GetFileName()
}

// Line returns line n, counting from one, with its terminator.
func (e *Editor) Line(n int) (string, bool) {
	if n < 1 || n > e.buffer.GetRowCount() {
		return "", false
	}
	return e.buffer.Line(n - 1), true
}

func (e *Editor) CurrentLine() int {
	return e.current
}

func (e *Editor) Saved() bool {
	return e.saved
}

func (e *Editor) GetMode() int {
	return e.mode
}

// Apply performs a command. Commands that need more text return
// RequestMoreLines and leave the editor in text-entry mode.
// A command that fails leaves the buffer unchanged.
func (e *Editor) Apply(cmd edm.Command) (edm.Effect, error) {
	if e.mode != edm.ModeCommand {
		return edm.Continue(), ErrTextEntry
	}
	switch cmd.Kind {
	case edm.CommandQuit:
		if e.saved {
			return edm.Exit(0), nil
		}
		e.reporter.Warn("changes not written")
		e.saved = true
		return edm.Continue(), nil
	case edm.CommandForceQuit:
		return edm.Exit(0), nil
	case edm.CommandWrite:
		return edm.Continue(), e.write(cmd.Filename)
	case edm.CommandWriteQuit:
		if err := e.write(cmd.Filename); err != nil {
			return edm.Continue(), err
		}
		return edm.Exit(0), nil
	case edm.CommandInsert:
		return e.beginTextEntry(edm.ModeInsert, 0, 0), nil
	case edm.CommandAppend:
		_, hi, err := e.resolve(cmd.Range)
		if err != nil {
			return edm.Continue(), err
		}
		return e.beginTextEntry(edm.ModeAppend, hi, hi), nil
	case edm.CommandDelete:
		lo, hi, err := e.resolve(cmd.Range)
		if err != nil {
			return edm.Continue(), err
		}
		e.replace(lo, hi, nil)
		return edm.Continue(), nil
	case edm.CommandChange:
		lo, hi, err := e.resolve(cmd.Range)
		if err != nil {
			return edm.Continue(), err
		}
		if cmd.Text != nil {
			e.replace(lo, hi, []string{*cmd.Text + "\n"})
			return edm.Continue(), nil
		}
		return e.beginTextEntry(edm.ModeChange, lo, hi), nil
	case edm.CommandPrint, edm.CommandNumber:
		// p and n list the whole buffer but still reject a bad address
		if cmd.Range.Kind != edm.RangeNone {
			if _, _, err := e.resolve(cmd.Range); err != nil {
				return edm.Continue(), err
			}
		}
		if cmd.Kind == edm.CommandNumber {
			e.printNumbered()
		} else {
			e.print()
		}
		return edm.Continue(), nil
	case edm.CommandLine:
		fmt.Fprintln(e.out, e.current)
		return edm.Continue(), nil
	default:
		return edm.Continue(), fmt.Errorf("%w %v", edm.ErrUnknownCommand, cmd.Kind)
	}
}

// Enter feeds one line of text, without its terminator, to a pending insert,
// append or change. The sentinel line applies the edit and returns the editor
// to command mode.
func (e *Editor) Enter(line string) (edm.Effect, error) {
	if e.mode == edm.ModeCommand {
		return edm.Continue(), ErrNoTextEntry
	}
	if line != Sentinel {
		e.pending = append(e.pending, line+"\n")
		return edm.RequestMoreLines(e.mode), nil
	}
	lines := e.pending
	switch e.mode {
	case edm.ModeInsert:
		at := e.current - 1
		if at < 0 {
			at = 0
		}
		e.buffer.InsertRows(at, lines)
		e.current += len(lines)
		e.saved = false
	case edm.ModeAppend:
		e.buffer.InsertRows(e.hi, lines)
		e.current = e.hi + len(lines)
		e.saved = false
	case edm.ModeChange:
		e.replace(e.lo, e.hi, lines)
	}
	e.mode = edm.ModeCommand
	e.pending = nil
	return edm.Continue(), nil
}

func (e *Editor) beginTextEntry(mode, lo, hi int) edm.Effect {
	e.mode = mode
	e.lo, e.hi = lo, hi
	e.pending = nil
	return edm.RequestMoreLines(mode)
}

// resolve converts a range to the half-open interval [lo, hi) of buffer
// indices, using the current buffer length.
func (e *Editor) resolve(r edm.Range) (lo, hi int, err error) {
	n := e.buffer.GetRowCount()
	switch r.Kind {
	case edm.RangeSingle:
		lo, hi = r.Start-1, r.Start
	case edm.RangeBounded:
		lo, hi = r.Start-1, r.End
	case edm.RangeStart:
		lo, hi = r.Start-1, n
	case edm.RangeEnd:
		lo, hi = 0, r.End
	case edm.RangeNone:
		if n == 0 {
			return 0, 0, nil
		}
		lo, hi = e.current-1, e.current
	}
	if lo < 0 || hi > n || lo > hi {
		return 0, 0, fmt.Errorf("%w: %s", edm.ErrAddressOutOfRange, describe(r, n))
	}
	return lo, hi, nil
}

func describe(r edm.Range, n int) string {
	if r.Kind == edm.RangeNone {
		return "current line"
	}
	return fmt.Sprintf("%s with %d lines", r, n)
}

// replace swaps [lo, hi) for lines. The cursor moves by the change in line
// count only when the edit starts before it.
func (e *Editor) replace(lo, hi int, lines []string) {
	e.buffer.Splice(lo, hi, lines)
	if lo < e.current {
		e.current = e.current - (hi - lo) + len(lines)
	}
	if e.current > e.buffer.GetRowCount() {
		e.current = e.buffer.GetRowCount()
	}
	if e.current < 0 {
		e.current = 0
	}
	e.saved = false
}

func (e *Editor) write(filename *string) error {
	path := e.buffer.GetFileName()
	if filename != nil {
		path = *filename
	}
	if path == "" {
		return edm.ErrNoFilename
	}
	b := e.buffer.Bytes()
	if err := e.persister.WriteFile(path, b); err != nil {
		return fmt.Errorf("%w: %s: %v", edm.ErrWriteFailed, path, err)
	}
	e.saved = true
	if filename != nil {
		e.buffer.SetFileName(path)
	}
	e.reporter.Info("%dln; %db", e.buffer.GetRowCount(), len(b))
	return nil
}

func (e *Editor) print() {
	text := string(e.buffer.Bytes())
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	io.WriteString(e.out, text)
}

// printNumbered lists the buffer with line numbers in a column wide enough
// for the last line number.
func (e *Editor) printNumbered() {
	width := len(strconv.Itoa(e.buffer.GetRowCount())) + 3
	for i, line := range e.buffer.lines {
		number := strconv.Itoa(i + 1)
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		fmt.Fprintf(e.out, "%s%s%s", number, strings.Repeat(" ", width-len(number)), line)
	}
}
