// Package machine implements the execution engine of the tape machine.
//
// The machine state is a tape of byte cells, a data pointer into the tape,
// and a program counter into a validated program. Each Tick executes one
// instruction. Loops are resolved through the program's jump table, and
// all I/O goes through a channel.Channel, so batch and streaming runs
// share the same dispatch.
package machine
