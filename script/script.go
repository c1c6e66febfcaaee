// Package script runs Starlark scenario scripts against the interpreter.
//
// Scripts see a predeclared "bf" module:
//
//	bf.run(source, input="")          -> output string, fails on any error
//	bf.valid(source)                  -> True if the brackets balance
//	bf.cells(source, input="", n=8)   -> first n tape cells after the run
//	bf.listing(source)                -> instruction listing
//
// A scenario checks its expectations with the builtin fail().
package script

import (
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/ezrec/bfi/channel"
	"github.com/ezrec/bfi/interpreter"
	"github.com/ezrec/bfi/program"
)

// Script executes scenario files.
type Script struct {
	Verbose     bool                     // If set, log each builtin call.
	Interpreter *interpreter.Interpreter // Interpreter the bf module runs on.
	Output      io.Writer                // Destination of print(), discarded if nil.
}

// NewScript creates a script runner on a default interpreter.
func NewScript(output io.Writer) (s *Script) {
	s = &Script{
		Interpreter: interpreter.NewInterpreter(),
		Output:      output,
	}

	return
}

// Module returns the "bf" module.
func (s *Script) Module() *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: "bf",
		Members: starlark.StringDict{
			"run":     starlark.NewBuiltin("run", s.run),
			"valid":   starlark.NewBuiltin("valid", s.valid),
			"cells":   starlark.NewBuiltin("cells", s.cells),
			"listing": starlark.NewBuiltin("listing", s.listing),
		},
	}
}

// Exec runs a script. src may be nil to read filename, or a string,
// []byte or io.Reader holding the script text.
func (s *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if s.Output != nil {
				fmt.Fprintln(s.Output, msg)
			}
		},
	}

	opts := syntax.FileOptions{TopLevelControl: true}
	pred := starlark.StringDict{
		"bf": s.Module(),
	}

	return starlark.ExecFileOptions(&opts, thread, filename, src, pred)
}

func (s *Script) trace(b *starlark.Builtin, source string) {
	if s.Verbose {
		log.Printf("script: bf.%v %q", b.Name(), source)
	}
}

func (s *Script) run(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source, input string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "source", &source, "input?", &input)
	if err != nil {
		return nil, err
	}
	s.trace(b, source)

	output, err := s.Interpreter.Batch(source, input)
	if err != nil {
		return nil, err
	}

	return starlark.String(output), nil
}

func (s *Script) valid(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "source", &source)
	if err != nil {
		return nil, err
	}
	s.trace(b, source)

	_, err = program.Parse(source)

	return starlark.Bool(err == nil), nil
}

func (s *Script) cells(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source, input string
	count := 8
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "source", &source, "input?", &input, "n?", &count)
	if err != nil {
		return nil, err
	}
	s.trace(b, source)

	m, err := s.Interpreter.Machine(source, channel.NewBuffer(input))
	if err != nil {
		return nil, err
	}

	err = m.Run()
	if err != nil {
		return nil, err
	}

	var values []starlark.Value
	for n := range count {
		value, ok := m.Cell(n)
		if !ok {
			break
		}
		values = append(values, starlark.MakeInt(int(value)))
	}

	return starlark.NewList(values), nil
}

func (s *Script) listing(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "source", &source)
	if err != nil {
		return nil, err
	}
	s.trace(b, source)

	prog, err := program.Parse(source)
	if err != nil {
		return nil, err
	}

	return starlark.String(prog.String()), nil
}
