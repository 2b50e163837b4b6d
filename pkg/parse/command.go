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

package parse

import (
	"fmt"
	"strings"

	edm "github.com/timburks/edm/pkg/types"
)

// commands that take no arguments
var simpleCommands = map[string]edm.CommandKind{
	"q":  edm.CommandQuit,
	"q!": edm.CommandForceQuit,
	"i":  edm.CommandInsert,
	"a":  edm.CommandAppend,
	"p":  edm.CommandPrint,
	"n":  edm.CommandNumber,
	"l":  edm.CommandLine,
	"d":  edm.CommandDelete,
}

// ParseCommand builds a command from the text that follows an address.
// Every command carries the address; commands that have no use for it only
// have it checked against the buffer when they are applied.
func ParseCommand(r edm.Range, remainder string) (edm.Command, error) {
	args := strings.Fields(remainder)
	if len(args) == 0 {
		return edm.Command{}, fmt.Errorf("%w: no command given", edm.ErrUnknownCommand)
	}

	// w, wq and c may carry trailing text, so they are matched first
	switch args[0] {
	case "w", "wq":
		kind := edm.CommandWrite
		if args[0] == "wq" {
			kind = edm.CommandWriteQuit
		}
		switch len(args) {
		case 1:
			return edm.Command{Kind: kind, Range: r}, nil
		case 2:
			filename := args[1]
			return edm.Command{Kind: kind, Range: r, Filename: &filename}, nil
		default:
			return edm.Command{}, fmt.Errorf("%w for %s", edm.ErrTooManyArguments, args[0])
		}
	case "c":
		cmd := edm.Command{Kind: edm.CommandChange, Range: r}
		if text := inlineText(remainder, args[0]); text != "" {
			cmd.Text = &text
		}
		return cmd, nil
	}

	kind, ok := simpleCommands[args[0]]
	if !ok {
		return edm.Command{}, fmt.Errorf("%w %q", edm.ErrUnknownCommand, args[0])
	}
	if len(args) > 1 {
		return edm.Command{}, fmt.Errorf("%w for %s", edm.ErrTooManyArguments, args[0])
	}
	return edm.Command{Kind: kind, Range: r}, nil
}

// inlineText returns what follows the command token, trimmed.
func inlineText(remainder, token string) string {
	rest := strings.TrimLeft(remainder, " \t")
	rest = strings.TrimPrefix(rest, token)
	return strings.TrimSpace(rest)
}

// ParseLine parses a complete command line.
func ParseLine(line string) (edm.Command, error) {
	r, rest, err := ParseAddress(line)
	if err != nil {
		return edm.Command{}, err
	}
	return ParseCommand(r, rest)
}
