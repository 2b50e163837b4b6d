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
	"strconv"
	"strings"
	"unicode"

	edm "github.com/timburks/edm/pkg/types"
)

// ParseAddress splits a command line into its address and the remaining text.
// The address is everything before the first letter, and may be surrounded
// by blanks; anything but digits and one comma in it is an invalid range.
// The remainder starts at the first letter and is returned unmodified.
func ParseAddress(line string) (edm.Range, string, error) {
	end := strings.IndexFunc(line, unicode.IsLetter)
	if end < 0 {
		end = len(line)
	}
	address, rest := strings.TrimSpace(line[:end]), line[end:]
	if address == "" {
		return edm.NoRange(), rest, nil
	}

	start, stop, found := strings.Cut(address, ",")
	if !found {
		n, err := parseLineNumber(start)
		if err != nil {
			return edm.NoRange(), "", err
		}
		return edm.Single(n), rest, nil
	}

	switch {
	case start == "" && stop == "":
		return edm.NoRange(), "", fmt.Errorf("%w %q", edm.ErrInvalidRange, address)
	case start == "":
		n, err := parseLineNumber(stop)
		if err != nil {
			return edm.NoRange(), "", err
		}
		return edm.EndRange(n), rest, nil
	case stop == "":
		n, err := parseLineNumber(start)
		if err != nil {
			return edm.NoRange(), "", err
		}
		return edm.StartRange(n), rest, nil
	default:
		a, err := parseLineNumber(start)
		if err != nil {
			return edm.NoRange(), "", err
		}
		b, err := parseLineNumber(stop)
		if err != nil {
			return edm.NoRange(), "", err
		}
		return edm.Bounded(a, b), rest, nil
	}
}

// parseLineNumber accepts only unsigned decimal numbers that fit in an int.
// Zero parses; the editor rejects it when the address is resolved.
func parseLineNumber(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil || n > uint64(maxInt) {
		return 0, fmt.Errorf("%w %q", edm.ErrInvalidRange, s)
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)
