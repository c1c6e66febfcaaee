package channel

import (
	"bytes"
)

// Buffer consumes a pre-supplied input from the front and accumulates
// all output.
type Buffer struct {
	Input  []byte
	Output bytes.Buffer

	readIndex int
}

var _ Channel = (*Buffer)(nil)

// NewBuffer creates a buffer channel reading from input.
func NewBuffer(input string) (buf *Buffer) {
	buf = &Buffer{
		Input: []byte(input),
	}

	return
}

// Rewind restarts the input from the front and discards prior output.
func (buf *Buffer) Rewind() {
	buf.readIndex = 0
	buf.Output.Reset()
}

// Receive returns the next unread input byte.
func (buf *Buffer) Receive() (value uint8, ok bool) {
	if buf.readIndex >= len(buf.Input) {
		return
	}

	value = buf.Input[buf.readIndex]
	buf.readIndex++
	ok = true

	return
}

// Send appends a byte to the output.
func (buf *Buffer) Send(value uint8) error {
	return buf.Output.WriteByte(value)
}

// Remaining returns the number of unread input bytes.
func (buf *Buffer) Remaining() int {
	return len(buf.Input) - buf.readIndex
}

// String returns the output accumulated so far.
func (buf *Buffer) String() string {
	return buf.Output.String()
}
