// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interpreter runs programs on the tape machine in one of two
// modes: batch, with a pre-supplied input string and an accumulated output
// string, and streaming, with live input and output.
package interpreter

import (
	"io"
	"log"
	"os"

	"github.com/ezrec/bfi/channel"
	"github.com/ezrec/bfi/machine"
	"github.com/ezrec/bfi/program"
)

// Interpreter holds the machine configuration shared by its runs.
// Every run gets a fresh machine.
type Interpreter struct {
	Verbose bool           // If set, enables verbose logging.
	Config  machine.Config // Configuration for each run's machine.
}

// NewInterpreter creates an interpreter for the classic 30000 cell machine.
func NewInterpreter() (in *Interpreter) {
	in = &Interpreter{
		Config: machine.DefaultConfig(),
	}

	return
}

// Machine validates source and returns a reset machine, ready to tick,
// attached to ch.
func (in *Interpreter) Machine(source string, ch channel.Channel) (m *machine.Machine, err error) {
	prog, err := program.Parse(source)
	if err != nil {
		return
	}

	if in.Verbose {
		log.Printf("interpreter: %d instructions", prog.Len())
	}

	m, err = machine.NewMachine(in.Config)
	if err != nil {
		return
	}

	m.Verbose = in.Verbose
	m.Program = prog
	m.Channel = ch
	m.Reset()

	return
}

// Batch runs source against a pre-supplied input and returns all output.
func (in *Interpreter) Batch(source string, input string) (output string, err error) {
	buf := channel.NewBuffer(input)

	m, err := in.Machine(source, buf)
	if err != nil {
		return
	}

	err = m.Run()
	if err != nil {
		return
	}

	if in.Verbose {
		log.Printf("interpreter: batch done, %d ticks, %d input unread", m.Ticks, buf.Remaining())
	}

	output = buf.String()
	return
}

// Stream runs source, reading input and writing output as the program
// executes. Output is written straight to output. If flush is set and
// output has a Flush method, it is flushed after every byte, otherwise
// output buffers as it sees fit and is flushed once when the run ends.
func (in *Interpreter) Stream(source string, input io.Reader, output io.Writer, flush bool) (err error) {
	tape := &channel.Tape{
		Verbose: in.Verbose,
		Input:   input,
		Output:  output,
		Flush:   flush,
	}

	m, err := in.Machine(source, tape)
	if err != nil {
		return
	}

	err = m.Run()

	drain_err := tape.Drain()
	if err == nil {
		err = drain_err
	}

	if in.Verbose {
		log.Printf("interpreter: stream done, %d ticks", m.Ticks)
	}

	return
}

// RunBatch runs source on a default machine with a pre-supplied input.
func RunBatch(source string, input string) (output string, err error) {
	return NewInterpreter().Batch(source, input)
}

// RunStreaming runs source on a default machine attached to the process's
// standard input and output.
func RunStreaming(source string, flush bool) (err error) {
	return NewInterpreter().Stream(source, os.Stdin, os.Stdout, flush)
}
