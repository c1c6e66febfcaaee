// Package channel provides the input and output strategies of the tape
// machine. A channel hands the machine one byte at a time in each direction,
// so the same dispatch loop serves both a pre-supplied input string
// (Buffer) and a live stream (Tape).
package channel

// Channel defines the interface between the machine and its I/O.
type Channel interface {
	// Rewind prepares the channel for a new run, if it can.
	Rewind()
	// Receive returns the next input byte, or ok == false at end of input.
	Receive() (value uint8, ok bool)
	// Send writes a single output byte.
	Send(value uint8) error
}
