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

package commander

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/timburks/edm/pkg/editor"
	"github.com/timburks/edm/pkg/logger"
	"github.com/timburks/edm/pkg/parse"
	edm "github.com/timburks/edm/pkg/types"
)

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor   *editor.Editor
	logger   *logger.Logger
	history  edm.History // optional record of command lines
	out      io.Writer   // where prompts are written
	prompt   string      // shown before each command line
	running  bool
	exitCode int
}

func NewCommander(e *editor.Editor, l *logger.Logger, out io.Writer) *Commander {
	return &Commander{editor: e, logger: l, out: out, running: true}
}

// SetPrompt sets the command prompt. An empty prompt is not shown.
func (c *Commander) SetPrompt(prompt string) {
	c.prompt = prompt
}

func (c *Commander) SetHistory(h edm.History) {
	c.history = h
}

// GetMode reports whether the editor expects a command or text.
func (c *Commander) GetMode() int {
	return c.editor.GetMode()
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) ExitCode() int {
	return c.exitCode
}

// ProcessLine handles one input line, given without its terminator.
// The returned error has already been reported.
func (c *Commander) ProcessLine(line string) error {
	if !c.running {
		return nil
	}
	if c.GetMode() != edm.ModeCommand {
		_, err := c.editor.Enter(line)
		return c.report(err)
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}
	c.record(line)
	cmd, err := parse.ParseLine(line)
	if err != nil {
		return c.report(err)
	}
	effect, err := c.editor.Apply(cmd)
	if err != nil {
		return c.report(err)
	}
	if effect.Kind == edm.EffectExit {
		c.running = false
		c.exitCode = effect.Code
	}
	return nil
}

func (c *Commander) record(line string) {
	if c.history == nil {
		return
	}
	if _, err := c.history.AddCmd(line); err != nil {
		log.Printf("history: %v", err)
	}
}

func (c *Commander) report(err error) error {
	if err != nil {
		c.logger.Error("%v", err)
	}
	return err
}

// Run reads lines from r until a command exits or the input ends, and
// returns the exit code. End of input exits with 0.
func (c *Commander) Run(r io.Reader) int {
	reader := bufio.NewReader(r)
	for c.running {
		if c.prompt != "" && c.GetMode() == edm.ModeCommand {
			fmt.Fprint(c.out, c.prompt)
		}
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			c.ProcessLine(line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			c.logger.Error("%v", err)
			return 1
		}
	}
	return c.exitCode
}
