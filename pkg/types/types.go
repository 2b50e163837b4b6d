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

package types

import "fmt"

// Editor modes
const (
	ModeCommand = 0
	ModeInsert  = 1
	ModeChange  = 2
	ModeAppend  = 3
)

// RangeKind distinguishes the forms of a line address: none (the current
// line), N, N,M, N, (to the end) and ,M (from the start).
type RangeKind int

const (
	RangeNone RangeKind = iota
	RangeSingle
	RangeBounded
	RangeStart
	RangeEnd
)

// A Range is a parsed line address. Start and End are 1-indexed and only
// meaningful for the kinds that carry them.
type Range struct {
	Kind  RangeKind
	Start int
	End   int
}

func NoRange() Range {
	return Range{Kind: RangeNone}
}

func Single(n int) Range {
	return Range{Kind: RangeSingle, Start: n, End: n}
}

func Bounded(start, end int) Range {
	return Range{Kind: RangeBounded, Start: start, End: end}
}

func StartRange(start int) Range {
	return Range{Kind: RangeStart, Start: start}
}

func EndRange(end int) Range {
	return Range{Kind: RangeEnd, End: end}
}

func (r Range) String() string {
	switch r.Kind {
	case RangeSingle:
		return fmt.Sprintf("%d", r.Start)
	case RangeBounded:
		return fmt.Sprintf("%d,%d", r.Start, r.End)
	case RangeStart:
		return fmt.Sprintf("%d,", r.Start)
	case RangeEnd:
		return fmt.Sprintf(",%d", r.End)
	default:
		return ""
	}
}

// CommandKind identifies one editor command.
type CommandKind int

const (
	CommandQuit CommandKind = iota
	CommandForceQuit
	CommandWrite
	CommandWriteQuit
	CommandInsert
	CommandAppend
	CommandDelete
	CommandChange
	CommandPrint
	CommandNumber
	CommandLine
)

var commandNames = map[CommandKind]string{
	CommandQuit:      "q",
	CommandForceQuit: "q!",
	CommandWrite:     "w",
	CommandWriteQuit: "wq",
	CommandInsert:    "i",
	CommandAppend:    "a",
	CommandDelete:    "d",
	CommandChange:    "c",
	CommandPrint:     "p",
	CommandNumber:    "n",
	CommandLine:      "l",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// A Command is created for each input line and consumed immediately.
// Filename is set for Write and WriteQuit, Text for an inline Change.
type Command struct {
	Kind     CommandKind
	Range    Range
	Filename *string
	Text     *string
}

// EffectKind tells the driver what to do after a command is applied.
type EffectKind int

const (
	EffectContinue EffectKind = iota
	EffectRequestMoreLines
	EffectExit
)

// An Effect is the result of applying a command or feeding a text line.
type Effect struct {
	Kind EffectKind
	Mode int // text-entry mode, for EffectRequestMoreLines
	Code int // exit code, for EffectExit
}

func Continue() Effect {
	return Effect{Kind: EffectContinue}
}

func RequestMoreLines(mode int) Effect {
	return Effect{Kind: EffectRequestMoreLines, Mode: mode}
}

func Exit(code int) Effect {
	return Effect{Kind: EffectExit, Code: code}
}

// Persister stores serialized buffer contents.
type Persister interface {
	WriteFile(path string, data []byte) error
}

// Reporter receives user-facing messages from the editor.
type Reporter interface {
	Warn(format string, args ...interface{})
	Info(format string, args ...interface{})
}

// History records command lines as they are entered.
type History interface {
	AddCmd(cmd string) (int, error)
}
