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

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/timburks/edm/pkg/commander"
	"github.com/timburks/edm/pkg/config"
	"github.com/timburks/edm/pkg/editor"
	"github.com/timburks/edm/pkg/history"
	"github.com/timburks/edm/pkg/logger"
)

const version = "0.1.0"

const help = `edm - (ED iMproved) a line-oriented text editor, inspired by ed.

Usage: edm [OPTIONS] [FILE]

Options:
    -h, --help       Print this help message and exit.
    -V, --version    Print version information and exit.
    --eval SCRIPT    Run a Lisp script against FILE and exit.
    --history        Print recent command lines and exit.

Commands are read from standard input. Settings are read from $EDM_CONF
or config.yaml in the edm config directory.`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin *os.File, stdout *os.File) int {
	var filename, script string
	var showHistory bool

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			fmt.Fprintln(stdout, help)
			return 0
		case "-V", "--version":
			fmt.Fprintln(stdout, version)
			return 0
		case "--eval":
			i++
			if i >= len(args) {
				fmt.Fprintln(stdout, "No file specified for --eval option")
				return 1
			}
			script = args[i]
		case "--history":
			showHistory = true
		default:
			filename = args[i]
		}
	}

	cfg, cfgErr := config.Load(config.Path())
	l := logger.New(stdout, logger.UseColor(stdout, cfg.Color))
	if cfgErr != nil {
		l.Warn("config: %v", cfgErr)
	}

	logFile, err := logger.StartFile(cfg.Log)
	if err != nil {
		l.Warn("log: %v", err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
	}

	var store *history.Store
	if cfg.History != "" {
		store, err = history.Open(cfg.History)
		if err != nil {
			l.Warn("history: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	if showHistory {
		return printHistory(store, cfg.HistoryLimit, stdout, l)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor(stdout)
	e.SetReporter(l)
	if filename != "" {
		if err := e.ReadFile(filename); err != nil {
			return l.Fatal("%s: %v", filename, err)
		}
	}

	// The commander converts user input into commands for the editor.
	c := commander.NewCommander(e, l, stdout)
	if store != nil {
		c.SetHistory(store)
	}

	if script != "" {
		if err := c.ParseEvalFile(script); err != nil {
			return l.Fatal("%s: %v", script, err)
		}
		return c.ExitCode()
	}

	if isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
		c.SetPrompt(cfg.Prompt)
	}
	log.Printf("editing %q", filename)
	return c.Run(stdin)
}

func printHistory(store *history.Store, limit int, out io.Writer, l *logger.Logger) int {
	if store == nil {
		l.Error("no command history")
		return 1
	}
	cmds, err := store.Last(limit)
	if err != nil {
		l.Error("history: %v", err)
		return 1
	}
	for _, cmd := range cmds {
		fmt.Fprintf(out, "%5d  %s\n", cmd.Seq, cmd.Text)
	}
	return 0
}
