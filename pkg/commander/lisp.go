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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"
)

// the commander that Lisp primitives act on
var scripted *Commander

func init() {
	golisp.MakePrimitiveFunction("ed", "1", EdImpl)
	golisp.MakePrimitiveFunction("ed-text", "1", EdTextImpl)
	golisp.MakePrimitiveFunction("ed-current-line", "0", EdCurrentLineImpl)
	golisp.MakePrimitiveFunction("ed-line-count", "0", EdLineCountImpl)
	golisp.MakePrimitiveFunction("ed-line", "1", EdLineImpl)
	golisp.MakePrimitiveFunction("ed-buffer", "0", EdBufferImpl)
}

var errNoCommander = errors.New("no editor is attached to the interpreter")

// EdImpl processes one line as if it were typed: a command in command mode,
// text in text-entry mode. It returns the current line.
func EdImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errNoCommander
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("ed requires a string argument")
	}
	if err := scripted.ProcessLine(golisp.StringValue(val)); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(scripted.editor.CurrentLine())), nil
}

// EdTextImpl feeds one line to a pending insert, append or change. Unlike ed,
// it fails when no text entry is in progress, and an empty string is kept as
// an empty line.
func EdTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errNoCommander
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("ed-text requires a string argument")
	}
	if _, err := scripted.editor.Enter(golisp.StringValue(val)); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(scripted.editor.CurrentLine())), nil
}

func EdCurrentLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(scripted.editor.CurrentLine())), nil
}

func EdLineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(scripted.editor.GetRowCount())), nil
}

// EdLineImpl returns line n, counting from one, with its terminator.
func EdLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errNoCommander
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("ed-line requires an integer argument")
	}
	n := int(golisp.IntegerValue(val))
	line, ok := scripted.editor.Line(n)
	if !ok {
		return nil, fmt.Errorf("ed-line: no line %d", n)
	}
	return golisp.StringWithValue(line), nil
}

func EdBufferImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if scripted == nil {
		return nil, errNoCommander
	}
	return golisp.StringWithValue(string(scripted.editor.Bytes())), nil
}

// BindLisp makes c the target of the ed primitives.
func (c *Commander) BindLisp() {
	scripted = c
}

// ParseEval evaluates a Lisp expression against the commander and returns
// the printed result.
func (c *Commander) ParseEval(command string) (string, error) {
	c.BindLisp()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	log.Printf("SEXPR %+v", value)
	return golisp.String(value), nil
}

// ParseEvalFile runs the expressions in a script file in order.
func (c *Commander) ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = c.ParseEval("(begin " + string(b) + "\n)")
	return err
}
