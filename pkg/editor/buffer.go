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
	"strings"
)

// A Buffer holds the lines of one file. Each line keeps the terminator it was
// read with, so the bytes of a buffer are the concatenation of its lines.
type Buffer struct {
	lines    []string
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.lines = make([]string, 0)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadBytes replaces the contents of the buffer, splitting after each newline.
func (b *Buffer) LoadBytes(bytes []byte) {
	b.lines = make([]string, 0)
	if len(bytes) == 0 {
		return
	}
	for _, line := range strings.SplitAfter(string(bytes), "\n") {
		if line != "" {
			b.lines = append(b.lines, line)
		}
	}
}

func (b *Buffer) Bytes() []byte {
	return []byte(strings.Join(b.lines, ""))
}

func (b *Buffer) GetRowCount() int {
	return len(b.lines)
}

// Line returns line i, counting from zero.
func (b *Buffer) Line(i int) string {
	if i >= 0 && i < len(b.lines) {
		return b.lines[i]
	}
	return ""
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// Splice replaces the lines in [lo, hi) with replacement and returns the
// removed lines. The caller checks the bounds.
func (b *Buffer) Splice(lo, hi int, replacement []string) []string {
	removed := make([]string, hi-lo)
	copy(removed, b.lines[lo:hi])
	tail := append([]string{}, b.lines[hi:]...)
	b.lines = append(append(b.lines[:lo], replacement...), tail...)
	return removed
}

func (b *Buffer) InsertRows(at int, rows []string) {
	b.Splice(at, at, rows)
}
