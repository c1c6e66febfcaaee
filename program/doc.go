// Package program loads and validates programs for the tape machine.
//
// A program is source text in which only eight characters are significant:
// '>' and '<' move the data pointer, '+' and '-' change the current cell,
// '.' and ',' perform output and input, and '[' and ']' bracket loops.
// Everything else is commentary and is dropped while loading.
//
// Loading matches every '[' with its ']' in a single pass and records the
// pairing in a jump table, so the machine never has to re-scan the program
// to find the other end of a loop.
package program
