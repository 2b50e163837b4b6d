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

package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndQuery(t *testing.T) {
	s := openTemp(t)

	next, err := s.NextCmdSeq()
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	for i, line := range []string{"1,2d", "p", "w notes.txt"} {
		seq, err := s.AddCmd(line)
		require.NoError(t, err)
		assert.Equal(t, i+1, seq)
	}

	cmds, err := s.Cmds(9, 12)
	require.NoError(t, err)
	assert.Empty(t, cmds)

	cmds, err = s.Cmds(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []Cmd{{Text: "p", Seq: 2}, {Text: "w notes.txt", Seq: 3}}, cmds)
}

func TestLast(t *testing.T) {
	s := openTemp(t)
	cmds, err := s.Last(5)
	require.NoError(t, err)
	assert.Empty(t, cmds)

	for _, line := range []string{"a", "i", "p", "q"} {
		_, err := s.AddCmd(line)
		require.NoError(t, err)
	}
	cmds, err = s.Last(2)
	require.NoError(t, err)
	assert.Equal(t, []Cmd{{Text: "p", Seq: 3}, {Text: "q", Seq: 4}}, cmds)
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.AddCmd("3c hello")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	cmds, err := s.Last(1)
	require.NoError(t, err)
	assert.Equal(t, []Cmd{{Text: "3c hello", Seq: 1}}, cmds)
}
