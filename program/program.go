package program

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const (
	NO_JUMP = -1 // Jump table entry for non-loop instructions.
)

// Position of an instruction in its source text.
type Position struct {
	Offset int // Byte offset, from 0.
	Line   int // Line number, from 1.
	Column int // Byte column, from 1.
}

// Program is a validated instruction sequence and its jump table.
type Program struct {
	Ops      []Op       // Instruction sequence.
	Jump     []int      // Partner index of each bracket, NO_JUMP otherwise.
	Position []Position // Source position of each instruction.
}

// Debug describes a single instruction of a program.
type Debug struct {
	Position
	Pc int
	Op Op
}

// Parse filters source text down to its instructions and matches brackets.
// An unmatched ']' is reported at its own position, an unmatched '[' at the
// innermost one left open.
func Parse(source string) (prog *Program, err error) {
	prog = &Program{}

	var stack Stack

	line, column := 1, 1
	for offset := 0; offset < len(source); offset++ {
		ch := source[offset]
		pos := Position{Offset: offset, Line: line, Column: column}

		if ch == '\n' {
			line++
			column = 1
		} else {
			column++
		}

		op, ok := OpOf(ch)
		if !ok {
			continue
		}

		pc := len(prog.Ops)
		prog.Ops = append(prog.Ops, op)
		prog.Position = append(prog.Position, pos)
		prog.Jump = append(prog.Jump, NO_JUMP)

		switch op {
		case OP_LOOP:
			stack.Push(pc)
		case OP_END:
			open, ok := stack.Pop()
			if !ok {
				err = &ErrSyntax{Position: pos, Err: ErrUnbalancedBrackets}
				prog = nil
				return
			}
			prog.Jump[open] = pc
			prog.Jump[pc] = open
		}
	}

	if open, ok := stack.Peek(); ok {
		err = &ErrSyntax{Position: prog.Position[open], Err: ErrUnbalancedBrackets}
		prog = nil
		return
	}

	return
}

// Load reads all of input and parses it.
func Load(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return Parse(string(data))
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Ops)
}

// Debug returns the instruction at pc, if any.
func (prog *Program) Debug(pc int) (dbg Debug, ok bool) {
	if pc < 0 || pc >= len(prog.Ops) {
		return
	}

	dbg = Debug{
		Position: prog.Position[pc],
		Pc:       pc,
		Op:       prog.Ops[pc],
	}
	ok = true

	return
}

// All iterates over the instruction sequence.
func (prog *Program) All() iter.Seq2[int, Op] {
	return func(yield func(pc int, op Op) bool) {
		for pc, op := range prog.Ops {
			if !yield(pc, op) {
				return
			}
		}
	}
}

// Text returns the instruction sequence as source text, without commentary.
func (prog *Program) Text() string {
	var sb strings.Builder
	for _, op := range prog.All() {
		sb.WriteString(op.String())
	}
	return sb.String()
}

// String returns a listing of the program, one instruction per line.
func (prog *Program) String() (text string) {
	var sb strings.Builder
	for pc, op := range prog.All() {
		pos := prog.Position[pc]
		fmt.Fprintf(&sb, "%04d %4d:%-3d %v", pc, pos.Line, pos.Column, op)
		if op.Bracket() {
			fmt.Fprintf(&sb, " %04d", prog.Jump[pc])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
