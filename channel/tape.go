package channel

import (
	"io"
	"log"
)

type flusher interface {
	Flush() error
}

// Tape streams bytes from a live io.Reader to a live io.Writer.
// Any failure to read, including a closed reader, is end of input.
type Tape struct {
	Verbose bool      // If set, log end of input.
	Input   io.Reader // Input stream, may be nil.
	Output  io.Writer // Output stream.
	Flush   bool      // If set, flush Output after every byte written.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive blocks until a byte is read from the input stream.
func (tc *Tape) Receive() (value uint8, ok bool) {
	if tc.Input == nil {
		return
	}

	var one [1]byte
	_, err := io.ReadFull(tc.Input, one[:])
	if err != nil {
		if tc.Verbose {
			log.Printf("tape: end of input: %v", err)
		}
		return
	}

	return one[0], true
}

// Send writes a byte to the output stream, flushing it if requested and
// the stream supports it.
func (tc *Tape) Send(value uint8) (err error) {
	_, err = tc.Output.Write([]byte{value})
	if err != nil {
		return
	}

	if tc.Flush {
		err = tc.Drain()
	}

	return
}

// Drain flushes any output still buffered by the output stream.
func (tc *Tape) Drain() (err error) {
	if fl, ok := tc.Output.(flusher); ok {
		err = fl.Flush()
	}

	return
}
